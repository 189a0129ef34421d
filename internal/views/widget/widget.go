// Package widget renders the testimonial form, star selector, and outcome
// dialogs as templ components.
package widget

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"opina/internal/i18n"
	"opina/internal/testimonial"
	"opina/internal/views/theme"
	"opina/models"
)

// Dialog identifiers queued by the submission flow.
const (
	DialogSuccess = "success"
	DialogError   = "error"
)

// State carries everything one render of the widget needs.
type State struct {
	Draft   models.Testimonial
	Errors  testimonial.Result
	Lang    i18n.Language
	Dict    i18n.Dictionary
	Theme   theme.WidgetTheme
	Dialog  string
	Busy    bool
	Exiting bool
}

// Root renders the swappable widget container: header, form, star selector,
// and any queued dialog. Every mutating route targets this component.
func Root(s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		rootClass := s.Theme.ShellClass + " " + s.Theme.CardClass
		if s.Exiting {
			rootClass += " widget-exit"
		}

		if _, err := fmt.Fprintf(w, `<div id="widget-root" class="%s">`, templ.EscapeString(rootClass)); err != nil {
			return err
		}

		if err := header(s).Render(ctx, w); err != nil {
			return err
		}
		if err := form(s).Render(ctx, w); err != nil {
			return err
		}
		if s.Dialog != "" {
			if err := dialog(s).Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func header(s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<header class="widget-header"><div><h1>%s</h1><p>%s</p></div></header>`,
			templ.EscapeString(s.Dict.Title),
			templ.EscapeString(s.Dict.Subtitle),
		)
		return err
	})
}

func form(s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		submitAttrs := ""
		if s.Busy {
			submitAttrs = " disabled"
		}

		_, err := fmt.Fprintf(w,
			`<form id="widget-form" method="post" action="/widget/submit" hx-post="/widget/submit" hx-target="#widget-root" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]">`)
		if err != nil {
			return err
		}

		// Preference toggles post the whole form so typed values survive
		// the round trip.
		_, err = fmt.Fprintf(w,
			`<div class="widget-toggles"><button type="submit" class="widget-toggle" formaction="/preferences/theme" hx-post="/preferences/theme" hx-target="#widget-root" hx-swap="outerHTML">%s</button><button type="submit" class="widget-toggle" formaction="/preferences/language" hx-post="/preferences/language" hx-target="#widget-root" hx-swap="outerHTML">%s</button></div>`,
			templ.EscapeString(s.Dict.ThemeToggleLabel),
			templ.EscapeString(s.Dict.LanguageToggleLabel),
		)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(w,
			`<label class="%s" for="widget-name">%s</label><input class="%s" id="widget-name" name="name" type="text" placeholder="%s" value="%s">`,
			templ.EscapeString(s.Theme.LabelClass),
			templ.EscapeString(s.Dict.NameLabel),
			templ.EscapeString(s.Theme.InputClass),
			templ.EscapeString(s.Dict.NamePlaceholder),
			templ.EscapeString(s.Draft.Name),
		)
		if err != nil {
			return err
		}
		if err := fieldError(w, s.Theme, s.Errors.Name); err != nil {
			return err
		}

		_, err = fmt.Fprintf(w,
			`<label class="%s" for="widget-opinion">%s</label><textarea class="%s" id="widget-opinion" name="opinion" rows="4" placeholder="%s">%s</textarea>`,
			templ.EscapeString(s.Theme.LabelClass),
			templ.EscapeString(s.Dict.OpinionLabel),
			templ.EscapeString(s.Theme.InputClass),
			templ.EscapeString(s.Dict.OpinionPlaceholder),
			templ.EscapeString(s.Draft.Opinion),
		)
		if err != nil {
			return err
		}
		if err := fieldError(w, s.Theme, s.Errors.Opinion); err != nil {
			return err
		}

		if err := starRow(s).Render(ctx, w); err != nil {
			return err
		}
		if err := fieldError(w, s.Theme, s.Errors.Rating); err != nil {
			return err
		}

		_, err = fmt.Fprintf(w,
			`<div class="widget-actions"><button type="submit" class="%s"%s><span class="widget-submit-label">%s</span><span class="widget-submit-busy htmx-indicator">%s</span></button><button type="submit" class="%s" formaction="/widget/cancel" formnovalidate hx-post="/widget/cancel" hx-target="#widget-root" hx-swap="outerHTML">%s</button></div></form>`,
			templ.EscapeString(s.Theme.SubmitClass),
			submitAttrs,
			templ.EscapeString(s.Dict.SubmitLabel),
			templ.EscapeString(s.Dict.SubmittingLabel),
			templ.EscapeString(s.Theme.CancelClass),
			templ.EscapeString(s.Dict.CancelLabel),
		)
		return err
	})
}

func starRow(s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<fieldset class="widget-stars"><legend class="%s">%s</legend>`,
			templ.EscapeString(s.Theme.LabelClass),
			templ.EscapeString(s.Dict.RatingLabel),
		)
		if err != nil {
			return err
		}

		for star := testimonial.MinRating; star <= testimonial.MaxRating; star++ {
			class := s.Theme.StarIdleClass
			glyph := "☆"
			if star <= s.Draft.Rating {
				class = s.Theme.StarActiveClass
				glyph = "★"
			}
			_, err = fmt.Fprintf(w,
				`<button type="submit" class="%s" name="star" value="%d" formaction="/widget/rate" formnovalidate hx-post="/widget/rate" hx-target="#widget-root" hx-swap="outerHTML" aria-label="%d">%s</button>`,
				templ.EscapeString(class), star, star, glyph,
			)
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintf(w,
			`<input type="hidden" name="rating" value="%d"></fieldset>`,
			s.Draft.Rating,
		)
		return err
	})
}

func dialog(s State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := s.Dict.ErrorTitle
		body := s.Dict.ErrorBody
		kind := DialogError
		if s.Dialog == DialogSuccess {
			title = s.Dict.SuccessTitle
			body = s.Dict.SuccessBody
			kind = DialogSuccess
		}

		_, err := fmt.Fprintf(w,
			`<div class="%s widget-dialog-%s" role="alertdialog" aria-modal="true"><h2>%s</h2><p>%s</p><a class="%s" href="/" hx-get="/" hx-target="#widget-root" hx-swap="outerHTML">%s</a></div>`,
			templ.EscapeString(s.Theme.DialogClass),
			templ.EscapeString(kind),
			templ.EscapeString(title),
			templ.EscapeString(body),
			templ.EscapeString(s.Theme.ConfirmClass),
			templ.EscapeString(s.Dict.DialogConfirm),
		)
		return err
	})
}

func fieldError(w io.Writer, th theme.WidgetTheme, message string) error {
	if strings.TrimSpace(message) == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class="%s">%s</p>`,
		templ.EscapeString(th.ErrorTextClass),
		templ.EscapeString(message),
	)
	return err
}
