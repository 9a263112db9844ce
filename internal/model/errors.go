package model

import "errors"

var (
	// ErrInvalidArgument rejects generation parameters at the
	// configuration boundary: non-positive counts, prices or durations.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO marks output failures: cannot create the output directory,
	// cannot write a file.
	ErrIO = errors.New("io failure")
)
