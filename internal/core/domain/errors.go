package domain

import "errors"

// Cross-entity errors. Entity-specific not-found sentinels live next to
// their entity types.
var (
	ErrForbidden  = errors.New("access forbidden")
	ErrValidation = errors.New("validation failed")
)

// ValidationError wraps ErrValidation with a field-level message so the HTTP
// layer can surface it verbatim while errors.Is still matches.
func ValidationError(msg string) error {
	return errors.Join(ErrValidation, errors.New(msg))
}
