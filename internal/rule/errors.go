package rule

import "errors"

// Domain errors for the rule package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, rule.ErrUnknownActionKind) {
//	    // reject the document, surface to the user
//	}
var (
	// ErrInvalidDocument is returned when document-level validation fails.
	ErrInvalidDocument = errors.New("rule: invalid document")

	// ErrInvalidName is returned when a rule name is empty.
	ErrInvalidName = errors.New("rule: invalid name")

	// ErrMalformedDocument is returned when a wire document is not valid JSON.
	ErrMalformedDocument = errors.New("rule: malformed document")

	// ErrUnknownConditionKind is returned when decoding a condition whose
	// kind tag is not recognised. The whole document is rejected.
	ErrUnknownConditionKind = errors.New("rule: unknown condition kind")

	// ErrUnknownActionKind is returned when decoding an action whose kind
	// tag is not recognised. The whole document is rejected.
	ErrUnknownActionKind = errors.New("rule: unknown action kind")

	// ErrInvalidCombineMode is returned when decoding a combine mode other
	// than "all" or "any".
	ErrInvalidCombineMode = errors.New("rule: invalid combine mode")

	// ErrInvalidSchedule is returned when a decoded schedule has a broken
	// mask or window shape.
	ErrInvalidSchedule = errors.New("rule: invalid schedule")

	// ErrRowNotFound is returned when addressing a condition or action row
	// by an id the document does not contain.
	ErrRowNotFound = errors.New("rule: row not found")
)
