package column

import "errors"

// Sentinel errors for the column model.
var (
	// ErrDuplicateField is returned when a model is constructed with two
	// columns sharing a field key.
	ErrDuplicateField = errors.New("duplicate column field")

	// ErrNoColumns is returned when a model is constructed empty.
	ErrNoColumns = errors.New("column model requires at least one column")
)
