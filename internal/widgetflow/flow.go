// Package widgetflow runs the submit-time flow of the widget: validate,
// forward, classify. It is transport-agnostic so the flow can be exercised
// without an HTTP server.
package widgetflow

import (
	"context"

	"opina/internal/i18n"
	applog "opina/internal/log"
	"opina/internal/testimonial"
	"opina/models"
)

// OutcomeKind classifies what happened to one submit attempt.
type OutcomeKind int

const (
	// OutcomeInvalid means validation failed; nothing left the process.
	OutcomeInvalid OutcomeKind = iota
	// OutcomeRejected means the collection endpoint refused or was
	// unreachable; the draft must be retained.
	OutcomeRejected
	// OutcomeAccepted means the testimonial was delivered; the draft must
	// be cleared.
	OutcomeAccepted
)

// Outcome carries the classification plus any per-field validation messages.
type Outcome struct {
	Kind   OutcomeKind
	Errors testimonial.Result
}

// Submitter forwards an accepted testimonial to the collection endpoint.
type Submitter interface {
	Submit(ctx context.Context, t models.Testimonial) error
}

// Run validates the normalized draft and, if it passes, forwards it. The
// underlying cause of a rejection is logged but deliberately not carried in
// the outcome; the UI shows one generic error dialog either way.
func Run(ctx context.Context, submitter Submitter, draft models.Testimonial, dict i18n.Dictionary) Outcome {
	result := testimonial.Validate(draft, dict)
	if !result.Valid() {
		applog.Debug(ctx, "draft failed validation",
			"nameOK", result.Name == "",
			"opinionOK", result.Opinion == "",
			"ratingOK", result.Rating == "",
		)
		return Outcome{Kind: OutcomeInvalid, Errors: result}
	}

	if err := submitter.Submit(ctx, draft); err != nil {
		applog.Error(ctx, "testimonial rejected", "error", err)
		return Outcome{Kind: OutcomeRejected}
	}

	return Outcome{Kind: OutcomeAccepted}
}
