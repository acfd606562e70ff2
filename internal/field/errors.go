package field

import "errors"

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrOutOfBounds         = errors.New("coordinate out of bounds")
	ErrUnsupportedTopology = errors.New("unsupported field topology")
)
