package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"

	"opina/internal/i18n"
	applog "opina/internal/log"
	"opina/internal/prefs"
	"opina/internal/testimonial"
	"opina/internal/views/layout"
	"opina/internal/views/theme"
	"opina/internal/views/widget"
	"opina/internal/widgetflow"
	"opina/models"
)

const (
	sessionDraftNameKey    = "widget:draft:name"
	sessionDraftOpinionKey = "widget:draft:opinion"
	sessionDraftRatingKey  = "widget:draft:rating"
	sessionDialogKey       = "widget:dialog"
	sessionBusyKey         = "widget:busy"
)

var (
	sessionManager *scs.SessionManager
	preferences    *prefs.Store
	collector      widgetflow.Submitter
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, store *prefs.Store, submitter widgetflow.Submitter) {
	sessionManager = sm
	preferences = store
	collector = submitter
}

func currentLanguage() i18n.Language {
	if preferences == nil {
		return i18n.Default
	}
	return preferences.Language()
}

func currentTheme() theme.WidgetTheme {
	if preferences == nil {
		return theme.Resolve(theme.DefaultKey)
	}
	return theme.Resolve(preferences.Theme())
}

func loadDraft(r *http.Request) models.Testimonial {
	if sessionManager == nil {
		return models.Testimonial{}
	}
	ctx := r.Context()
	return models.Testimonial{
		Name:    sessionManager.GetString(ctx, sessionDraftNameKey),
		Opinion: sessionManager.GetString(ctx, sessionDraftOpinionKey),
		Rating:  sessionManager.GetInt(ctx, sessionDraftRatingKey),
	}
}

func storeDraft(r *http.Request, draft models.Testimonial) {
	if sessionManager == nil {
		return
	}
	ctx := r.Context()
	sessionManager.Put(ctx, sessionDraftNameKey, draft.Name)
	sessionManager.Put(ctx, sessionDraftOpinionKey, draft.Opinion)
	sessionManager.Put(ctx, sessionDraftRatingKey, draft.Rating)
}

func clearDraft(r *http.Request) {
	if sessionManager == nil {
		return
	}
	ctx := r.Context()
	sessionManager.Remove(ctx, sessionDraftNameKey)
	sessionManager.Remove(ctx, sessionDraftOpinionKey)
	sessionManager.Remove(ctx, sessionDraftRatingKey)
}

// currentState assembles one render of the widget. Queued dialog flashes are
// popped here, which is what makes each dialog show exactly once.
func currentState(r *http.Request) widget.State {
	lang := currentLanguage()

	state := widget.State{
		Draft: loadDraft(r),
		Lang:  lang,
		Dict:  i18n.Lookup(lang),
		Theme: currentTheme(),
	}

	if sessionManager != nil {
		state.Dialog = sessionManager.PopString(r.Context(), sessionDialogKey)
		state.Busy = sessionManager.GetBool(r.Context(), sessionBusyKey)
	}

	return state
}

// draftFromForm reads the submitted field values. The request form must
// already be parsed.
func draftFromForm(r *http.Request) models.Testimonial {
	rating, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("rating")))
	if err != nil {
		rating = 0
	}
	return models.Testimonial{
		Name:    r.PostFormValue("name"),
		Opinion: r.PostFormValue("opinion"),
		Rating:  testimonial.ClampRating(rating),
	}
}

func renderWidget(w http.ResponseWriter, r *http.Request, state widget.State) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	component := widget.Root(state)
	if !isHTMX(r) {
		component = layout.Layout(state.Dict.Title, state.Lang, state.Theme, component)
	}

	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render widget", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func redirectToWidget(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
