package ppe

import "fmt"

// DimensionError reports a shape mismatch between an equation's public
// constants and its Γ matrix, or between a proof system's commitments and
// its equation.
type DimensionError struct {
	Field string
	Want  int
	Got   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("gs-ppe: %s has dimension %d, want %d", e.Field, e.Got, e.Want)
}

func newDimensionError(field string, want, got int) error {
	return &DimensionError{Field: field, Want: want, Got: got}
}
