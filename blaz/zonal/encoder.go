// Package zonal implements the Blaz block codec: an 8x8 DCT-II followed by
// adaptive per-block quantization to signed bytes, keeping only the
// L-shaped low-frequency zone (first two rows and first two columns).
//
// A packed block is 29 bytes: the scale byte, then 28 quantized
// coefficients in the order given by common.Zone. All other coefficients
// are dropped and reconstruct as zero.
package zonal

import (
	"fmt"

	"github.com/cocosip/go-blaz-codec/blaz/common"
)

// Encode transforms, quantizes and packs block into buf[offset:offset+29].
// No other byte of buf is touched, also when an error is returned.
// Blocks whose largest coefficient exceeds common.MaxCoefficient are
// rejected with common.ErrOutOfRange rather than clipped.
func Encode(block *common.Block, buf []byte, offset int) error {
	if err := checkWindow(buf, offset); err != nil {
		return err
	}
	if i, ok := block.Finite(); !ok {
		return fmt.Errorf("%w: sample %d is %v", common.ErrInvalidSample, i, block[i])
	}

	coef := transform(block)
	if i, ok := coef.Finite(); !ok {
		return fmt.Errorf("%w: coefficient %d overflowed to %v", common.ErrOutOfRange, i, coef[i])
	}
	maxAbs := coef.MaxAbs()
	if maxAbs > common.MaxCoefficient {
		return fmt.Errorf("%w: max coefficient %g exceeds %d", common.ErrOutOfRange, maxAbs, common.MaxCoefficient)
	}
	q := common.ScaleFactor(maxAbs)

	buf[offset] = byte(q)
	for i, idx := range common.Zone {
		buf[offset+1+i] = byte(common.Quantize(coef[idx], q))
	}

	return nil
}

// transform runs the two forward stages: rows with the basis, then columns
// with its transpose
func transform(block *common.Block) common.Block {
	rows := common.Multiply(&common.DCTCoef, block)
	return common.Multiply(&rows, &common.DCTCoefTranspose)
}

// checkWindow verifies that a whole packed block fits in buf at offset
func checkWindow(buf []byte, offset int) error {
	if offset < 0 {
		return fmt.Errorf("%w: %d", common.ErrInvalidOffset, offset)
	}
	if offset > len(buf)-common.PackedSize {
		return fmt.Errorf("%w: offset %d needs %d bytes, buffer has %d",
			common.ErrBufferTooSmall, offset, common.PackedSize, len(buf))
	}
	return nil
}
