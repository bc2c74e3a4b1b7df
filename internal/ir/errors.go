package ir

import "errors"

var (
	// ErrFormat is returned when encoded image data is malformed.
	ErrFormat = errors.New("malformed image data")

	// ErrInvalidArgument is returned when a raster or parameter does not
	// satisfy an operation's preconditions.
	ErrInvalidArgument = errors.New("invalid argument")
)
