package handlers

import (
	"net/http"
	"strconv"
	"strings"

	applog "opina/internal/log"
	"opina/internal/testimonial"
	"opina/internal/views/widget"
	"opina/internal/widgetflow"
)

// Widget renders the testimonial form with the current draft and any queued
// outcome dialog.
func Widget(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		renderWidget(w, r, currentState(r))
	default:
		applog.Debug(r.Context(), "method not allowed for widget", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// SubmitTestimonial validates the draft and forwards it to the collection
// endpoint. Validation failures stay local as inline messages; submission
// outcomes queue a one-shot dialog flash.
func SubmitTestimonial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "method not allowed for submit", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if sessionManager == nil || collector == nil {
		applog.Debug(r.Context(), "submission dependencies unavailable",
			"hasSession", sessionManager != nil,
			"hasCollector", collector != nil,
		)
		http.Error(w, "submission not available", http.StatusServiceUnavailable)
		return
	}

	dict := currentState(r).Dict

	// Advisory in-flight guard, mirroring the disabled submit control.
	if sessionManager.GetBool(r.Context(), sessionBusyKey) {
		applog.Debug(r.Context(), "submission already in flight")
		http.Error(w, dict.SubmissionBusy, http.StatusConflict)
		return
	}
	sessionManager.Put(r.Context(), sessionBusyKey, true)
	defer sessionManager.Put(r.Context(), sessionBusyKey, false)

	if err := r.ParseForm(); err != nil {
		applog.Debug(r.Context(), "failed to parse submission form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	draft := testimonial.Normalize(draftFromForm(r))
	storeDraft(r, draft)

	outcome := widgetflow.Run(r.Context(), collector, draft, dict)

	// The flow is over; release the guard before rendering so the response
	// never shows a disabled submit control.
	sessionManager.Put(r.Context(), sessionBusyKey, false)

	switch outcome.Kind {
	case widgetflow.OutcomeInvalid:
		state := currentState(r)
		state.Draft = draft
		state.Errors = outcome.Errors
		renderWidget(w, r, state)
	case widgetflow.OutcomeRejected:
		// Draft is retained so the visitor can retry.
		sessionManager.Put(r.Context(), sessionDialogKey, widget.DialogError)
		state := currentState(r)
		state.Draft = draft
		renderWidget(w, r, state)
	case widgetflow.OutcomeAccepted:
		clearDraft(r)
		sessionManager.Put(r.Context(), sessionDialogKey, widget.DialogSuccess)
		state := currentState(r)
		state.Exiting = true
		renderWidget(w, r, state)
	}
}

// SelectStar sets the draft's star rating and re-renders the widget.
func SelectStar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	draft := draftFromForm(r)
	if star, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("star"))); err == nil {
		if clamped := testimonial.ClampRating(star); clamped != 0 {
			draft.Rating = clamped
		}
	}
	storeDraft(r, draft)

	applog.Debug(r.Context(), "star selected", "rating", draft.Rating)

	if isHTMX(r) {
		state := currentState(r)
		state.Draft = draft
		renderWidget(w, r, state)
		return
	}
	redirectToWidget(w, r)
}

// CancelTestimonial discards the draft without any network call, reusing the
// exit transition of a successful submission.
func CancelTestimonial(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	clearDraft(r)
	applog.Debug(r.Context(), "draft cancelled")

	if isHTMX(r) {
		state := currentState(r)
		state.Exiting = true
		renderWidget(w, r, state)
		return
	}
	redirectToWidget(w, r)
}
