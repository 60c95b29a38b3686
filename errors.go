package qmeasure

import "errors"

var (
	ErrWireOutOfRange = errors.New("wire out of range")
	ErrInvalidShape   = errors.New("invalid state tensor shape")
	ErrInvalidEigvals = errors.New("observable must expose exactly two eigenvalues")
	ErrInvalidGate    = errors.New("gate is not a 2x2 unitary")
	ErrMissingMapping = errors.New("missing register mapping entry")
	ErrNilDevice      = errors.New("device is nil")
)
