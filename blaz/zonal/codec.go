package zonal

import (
	"fmt"

	"github.com/cocosip/go-blaz-codec/blaz/common"
	"github.com/cocosip/go-blaz-codec/codec"
)

var _ codec.BlockCodec = (*Codec)(nil)

// Name is the registry name of the zonal codec
const Name = "blaz-zonal"

// Codec implements the codec.BlockCodec interface for the zonal DCT codec
type Codec struct{}

// NewCodec creates a new zonal codec
func NewCodec() *Codec {
	return &Codec{}
}

// EncodeBlock encodes 64 row-major samples at offset
func (c *Codec) EncodeBlock(samples []float64, buf []byte, offset int) error {
	if len(samples) != common.BlockLen {
		return fmt.Errorf("%w: got %d", common.ErrInvalidBlockSize, len(samples))
	}
	return Encode((*common.Block)(samples), buf, offset)
}

// DecodeBlock decodes the block at offset into 64 row-major samples
func (c *Codec) DecodeBlock(buf []byte, offset int, out []float64) error {
	if len(out) != common.BlockLen {
		return fmt.Errorf("%w: got %d", common.ErrInvalidBlockSize, len(out))
	}
	return Decode(buf, offset, (*common.Block)(out))
}

// PackedSize returns the number of bytes per encoded block
func (c *Codec) PackedSize() int {
	return common.PackedSize
}

// Name returns the human-readable name
func (c *Codec) Name() string {
	return Name
}

// Register registers this codec with the global registry
func init() {
	codec.Register(NewCodec())
}
