package processor

import "errors"

var (
	ErrDecode          = errors.New("image cannot be decoded")
	ErrResource        = errors.New("font resource unavailable")
	ErrInvalidArgument = errors.New("invalid watermark argument")
	ErrTooLarge        = errors.New("image exceeds maximum size")
)
