package booth

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotEdited    = errors.New("photo has no edited image yet")
	ErrUnavailable  = errors.New("image generation is not configured")
)
