package service

import "fmt"

// ErrorKind classifies the deterministic failures of ingredient resolution
// and aggregation. None of these are retryable.
type ErrorKind string

const (
	ErrUnparsableText        ErrorKind = "unparsable_text"
	ErrFoodNotFound          ErrorKind = "food_not_found"
	ErrNoWeightData          ErrorKind = "no_weight_data"
	ErrNoMatchingWeightEntry ErrorKind = "no_matching_weight_entry"
	ErrUnknownUnit           ErrorKind = "unknown_unit"
	ErrInvalidServings       ErrorKind = "invalid_servings"
)

// ResolutionError is a domain failure tagged with the raw ingredient text it
// arose from. Construction-time failures abort the pipeline; no partially
// resolved ingredient is ever returned alongside one.
type ResolutionError struct {
	Kind   ErrorKind
	Text   string
	Reason string
}

func (e *ResolutionError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("resolve %q: %s", e.Text, e.Reason)
}

func resolutionErr(kind ErrorKind, text, format string, args ...any) *ResolutionError {
	return &ResolutionError{Kind: kind, Text: text, Reason: fmt.Sprintf(format, args...)}
}
