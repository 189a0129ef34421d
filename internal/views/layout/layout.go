package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"opina/internal/i18n"
	"opina/internal/views/theme"
)

// Layout wraps the provided content in the full HTML document shell. The
// document root carries the theme classes so toggling the theme restyles
// every component at once.
func Layout(title string, lang i18n.Language, th theme.WidgetTheme, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s" class="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><link rel="stylesheet" href="/assets/widget.css"><script src="https://unpkg.com/htmx.org@1.9.12" defer></script></head><body class="%s"><div class="%s">`,
			templ.EscapeString(string(lang)),
			templ.EscapeString(th.Key),
			templ.EscapeString(title),
			templ.EscapeString(th.BodyClass),
			templ.EscapeString(th.ShellClass),
		)
		if err != nil {
			return err
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err = io.WriteString(w, `</div></body></html>`)
		return err
	})
}
