package theme

import "strings"

// Option represents a selectable theme exposed to the UI.
type Option struct {
	Value string
	Label string
}

// WidgetTheme contains resolved styling primitives for the widget shell.
type WidgetTheme struct {
	Key             string
	BodyClass       string
	ShellClass      string
	CardClass       string
	InputClass      string
	LabelClass      string
	ErrorTextClass  string
	SubmitClass     string
	CancelClass     string
	StarActiveClass string
	StarIdleClass   string
	DialogClass     string
	ConfirmClass    string
}

const (
	// DefaultKey defines the fallback theme when no preference exists.
	DefaultKey = "light"
)

var catalogue = map[string]WidgetTheme{
	"light": {
		Key:             "light",
		BodyClass:       "min-h-screen bg-stone-50 text-stone-900",
		ShellClass:      "widget-shell light",
		CardClass:       "widget-card",
		InputClass:      "widget-input",
		LabelClass:      "widget-label",
		ErrorTextClass:  "widget-error-text",
		SubmitClass:     "widget-submit",
		CancelClass:     "widget-cancel",
		StarActiveClass: "widget-star active",
		StarIdleClass:   "widget-star",
		DialogClass:     "widget-dialog",
		ConfirmClass:    "widget-dialog-confirm",
	},
	"dark": {
		Key:             "dark",
		BodyClass:       "min-h-screen bg-slate-950 text-slate-100",
		ShellClass:      "widget-shell dark",
		CardClass:       "widget-card",
		InputClass:      "widget-input",
		LabelClass:      "widget-label",
		ErrorTextClass:  "widget-error-text",
		SubmitClass:     "widget-submit",
		CancelClass:     "widget-cancel",
		StarActiveClass: "widget-star active",
		StarIdleClass:   "widget-star",
		DialogClass:     "widget-dialog",
		ConfirmClass:    "widget-dialog-confirm",
	},
}

var options = []Option{
	{Value: "light", Label: "Light"},
	{Value: "dark", Label: "Dark"},
}

// Resolve returns the registered theme configuration for the provided key.
func Resolve(key string) WidgetTheme {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if value, ok := catalogue[normalized]; ok {
		return value
	}
	return catalogue[DefaultKey]
}

// Options exposes the available theme selections for rendering in a form control.
func Options() []Option {
	return options
}
