package handlers

import (
	"net/http"

	"opina/internal/i18n"
	applog "opina/internal/log"
	"opina/models"
)

// ToggleTheme flips the persisted light/dark theme and re-renders the
// widget. Submitted field values are saved into the session first so typed
// text survives the toggle.
func ToggleTheme(w http.ResponseWriter, r *http.Request) {
	togglePreference(w, r, func() error {
		next := models.ToggleTheme(preferences.Theme())
		return preferences.SetTheme(r.Context(), next)
	})
}

// ToggleLanguage flips the persisted es/en UI language and re-renders the
// widget with the target language's dictionary.
func ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	togglePreference(w, r, func() error {
		next := i18n.Toggle(preferences.Language())
		return preferences.SetLanguage(r.Context(), string(next))
	})
}

func togglePreference(w http.ResponseWriter, r *http.Request, flip func() error) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "method not allowed for preference toggle", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if preferences == nil {
		applog.Debug(r.Context(), "preference store unavailable")
		http.Error(w, "preferences not available", http.StatusServiceUnavailable)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse toggle form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	// Keep whatever the visitor has typed so far.
	storeDraft(r, draftFromForm(r))

	if err := flip(); err != nil {
		applog.Error(r.Context(), "failed to persist preference", "error", err)
		http.Error(w, "failed to save preferences", http.StatusInternalServerError)
		return
	}

	if isHTMX(r) {
		renderWidget(w, r, currentState(r))
		return
	}
	redirectToWidget(w, r)
}
