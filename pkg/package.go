package pkg

import "errors"

var (
	ErrOutOfRange         = errors.New("index out of range")
	ErrEmptyStack         = errors.New("empty stack")
	ErrUnknownOp          = errors.New("unknown op")
	ErrUnsupportedVersion = errors.New("unsupported program version")
)
