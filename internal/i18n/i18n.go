package i18n

import "strings"

// Language identifies one of the UI languages the widget can render.
type Language string

// Supported languages.
const (
	Spanish Language = "es"
	English Language = "en"

	// Default applies when no language preference has been stored yet.
	Default = Spanish
)

// Dictionary holds every user-visible string for one language. Views and
// handlers never embed literal UI text; they read it from here.
type Dictionary struct {
	Title              string
	Subtitle           string
	NameLabel          string
	NamePlaceholder    string
	OpinionLabel       string
	OpinionPlaceholder string
	RatingLabel        string
	SubmitLabel        string
	SubmittingLabel    string
	CancelLabel        string

	SuccessTitle  string
	SuccessBody   string
	ErrorTitle    string
	ErrorBody     string
	DialogConfirm string

	NameTooShort      string
	OpinionOutOfRange string
	RatingOutOfRange  string
	SubmissionBusy    string

	ThemeToggleLabel    string
	LanguageToggleLabel string
}

var catalogue = map[Language]Dictionary{
	Spanish: {
		Title:              "Comparte tu experiencia",
		Subtitle:           "Tu opinión nos ayuda a mejorar.",
		NameLabel:          "Nombre",
		NamePlaceholder:    "¿Cómo te llamas?",
		OpinionLabel:       "Opinión",
		OpinionPlaceholder: "Cuéntanos qué te pareció…",
		RatingLabel:        "Calificación",
		SubmitLabel:        "Enviar opinión",
		SubmittingLabel:    "Enviando…",
		CancelLabel:        "Cancelar",

		SuccessTitle:  "¡Gracias!",
		SuccessBody:   "Tu opinión fue enviada correctamente.",
		ErrorTitle:    "Algo salió mal",
		ErrorBody:     "No pudimos enviar tu opinión. Inténtalo de nuevo.",
		DialogConfirm: "Entendido",

		NameTooShort:      "El nombre debe tener al menos 2 caracteres.",
		OpinionOutOfRange: "La opinión debe tener entre 10 y 500 caracteres.",
		RatingOutOfRange:  "Selecciona una calificación de 1 a 5 estrellas.",
		SubmissionBusy:    "Ya hay un envío en curso.",

		ThemeToggleLabel:    "Cambiar tema",
		LanguageToggleLabel: "English",
	},
	English: {
		Title:              "Share your experience",
		Subtitle:           "Your feedback helps us improve.",
		NameLabel:          "Name",
		NamePlaceholder:    "What is your name?",
		OpinionLabel:       "Opinion",
		OpinionPlaceholder: "Tell us what you thought…",
		RatingLabel:        "Rating",
		SubmitLabel:        "Submit opinion",
		SubmittingLabel:    "Submitting…",
		CancelLabel:        "Cancel",

		SuccessTitle:  "Thank you!",
		SuccessBody:   "Your opinion was submitted successfully.",
		ErrorTitle:    "Something went wrong",
		ErrorBody:     "We could not submit your opinion. Please try again.",
		DialogConfirm: "Got it",

		NameTooShort:      "The name must be at least 2 characters long.",
		OpinionOutOfRange: "The opinion must be between 10 and 500 characters.",
		RatingOutOfRange:  "Pick a rating between 1 and 5 stars.",
		SubmissionBusy:    "A submission is already in progress.",

		ThemeToggleLabel:    "Switch theme",
		LanguageToggleLabel: "Español",
	},
}

// Resolve returns the supported language matching the provided code, falling
// back to the default language for unknown or empty values.
func Resolve(code string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English
	case Spanish:
		return Spanish
	default:
		return Default
	}
}

// Toggle flips between the two supported languages.
func Toggle(lang Language) Language {
	if lang == Spanish {
		return English
	}
	return Spanish
}

// Lookup returns the dictionary for the provided language.
func Lookup(lang Language) Dictionary {
	if dict, ok := catalogue[lang]; ok {
		return dict
	}
	return catalogue[Default]
}
