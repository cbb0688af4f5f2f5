package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when sequencing parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidStride is returned when blocks would overlap in the buffer
	ErrInvalidStride = errors.New("invalid stride (must be >= packed block size)")
)
