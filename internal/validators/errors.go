package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs or
	// pointers to structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidModel is returned when a struct breaks one of its validation
	// rules. The message lists every offending field.
	ErrInvalidModel = errors.New("invalid model")
)
