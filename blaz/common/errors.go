package common

import "errors"

// Common errors
var (
	ErrBufferTooSmall   = errors.New("buffer too small for packed block")
	ErrInvalidOffset    = errors.New("invalid buffer offset")
	ErrInvalidBlockSize = errors.New("invalid block size (must be 64 samples)")
	ErrInvalidSample    = errors.New("invalid sample value (NaN or Inf)")
	ErrOutOfRange       = errors.New("block coefficients out of representable range")
)
