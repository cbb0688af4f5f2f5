package zonal

import (
	"github.com/cocosip/go-blaz-codec/blaz/common"
)

// Packed is one encoded block held by value, for callers that place blocks
// themselves instead of sharing a buffer
type Packed [common.PackedSize]byte

// Scale returns the scale byte
func (p *Packed) Scale() int8 {
	return int8(p[0])
}

// Coefficient returns the stored value of the n-th zonal coefficient
func (p *Packed) Coefficient(n int) int8 {
	return int8(p[1+n])
}

// EncodePacked encodes block into a new Packed value
func EncodePacked(block *common.Block) (Packed, error) {
	var p Packed
	if err := Encode(block, p[:], 0); err != nil {
		return Packed{}, err
	}
	return p, nil
}

// DecodePacked reconstructs the block held by p
func DecodePacked(p Packed) (common.Block, error) {
	var out common.Block
	if err := Decode(p[:], 0, &out); err != nil {
		return common.Block{}, err
	}
	return out, nil
}
