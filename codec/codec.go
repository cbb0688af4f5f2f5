package codec

// BlockCodec is the universal interface for fixed-size block codecs.
// A codec reads and writes exactly PackedSize() bytes of a caller-owned
// buffer per block and keeps no state between calls.
type BlockCodec interface {
	// EncodeBlock packs 64 samples into buf starting at offset
	EncodeBlock(samples []float64, buf []byte, offset int) error

	// DecodeBlock reconstructs 64 samples from buf starting at offset
	DecodeBlock(buf []byte, offset int, out []float64) error

	// PackedSize returns the number of bytes one block occupies
	PackedSize() int

	// Name returns a human-readable name
	Name() string
}

// BaseOptions provides common options for sequencing many blocks
type BaseOptions struct {
	// Workers bounds the number of blocks processed concurrently.
	// 0 = one worker per available CPU
	Workers int

	// Stride is the distance in bytes between consecutive packed blocks.
	// 0 = packed contiguously (the codec's PackedSize)
	Stride int
}

// Validate validates base options
func (o *BaseOptions) Validate() error {
	if o.Workers < 0 {
		return ErrInvalidParameter
	}
	if o.Stride < 0 {
		return ErrInvalidStride
	}
	return nil
}

// StrideFor returns the effective stride for c
func (o *BaseOptions) StrideFor(c BlockCodec) (int, error) {
	if o.Stride == 0 {
		return c.PackedSize(), nil
	}
	if o.Stride < c.PackedSize() {
		return 0, ErrInvalidStride
	}
	return o.Stride, nil
}
