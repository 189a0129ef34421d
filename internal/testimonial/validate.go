// Package testimonial implements the submit-time validation rules for a
// testimonial draft.
package testimonial

import (
	"strings"
	"unicode/utf8"

	"opina/internal/i18n"
	"opina/models"
)

// Field bounds. Lengths are counted in runes so accented text is measured
// the way the user perceives it.
const (
	MinNameLength    = 2
	MinOpinionLength = 10
	MaxOpinionLength = 500
	MinRating        = 1
	MaxRating        = 5
)

// Result carries one localized message per failing field. An empty message
// means the field passed.
type Result struct {
	Name    string
	Opinion string
	Rating  string
}

// Valid reports whether every field passed validation.
func (r Result) Valid() bool {
	return r.Name == "" && r.Opinion == "" && r.Rating == ""
}

// Normalize trims the free-text fields of a draft. Handlers call it before
// validation so surrounding whitespace never counts toward field lengths.
func Normalize(draft models.Testimonial) models.Testimonial {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Opinion = strings.TrimSpace(draft.Opinion)
	return draft
}

// Validate checks a normalized draft against the submission rules and
// resolves failure messages through the provided dictionary. It performs no
// I/O; a failing result must keep the draft local.
func Validate(draft models.Testimonial, dict i18n.Dictionary) Result {
	result := Result{}

	if utf8.RuneCountInString(draft.Name) < MinNameLength {
		result.Name = dict.NameTooShort
	}

	if length := utf8.RuneCountInString(draft.Opinion); length < MinOpinionLength || length > MaxOpinionLength {
		result.Opinion = dict.OpinionOutOfRange
	}

	if draft.Rating < MinRating || draft.Rating > MaxRating {
		result.Rating = dict.RatingOutOfRange
	}

	return result
}

// ClampRating snaps an arbitrary star selection into the valid range,
// returning 0 when the value is not a usable selection at all.
func ClampRating(value int) int {
	if value < MinRating || value > MaxRating {
		return 0
	}
	return value
}
