package zonal

import (
	"github.com/cocosip/go-blaz-codec/blaz/common"
)

// Decode reconstructs the block packed at buf[offset:offset+29] into out.
// The result is lossy: dropped coefficients come back as zero and the
// retained ones carry the quantization error.
func Decode(buf []byte, offset int, out *common.Block) error {
	if err := checkWindow(buf, offset); err != nil {
		return err
	}

	q := int8(buf[offset])
	if q == 0 {
		*out = common.Block{}
		return nil
	}

	var coef common.Block
	for i, idx := range common.Zone {
		coef[idx] = float64(int8(buf[offset+1+i]))
	}

	// Dequantization is folded into the first stage
	mul, div := common.Dequantizer(q)
	cols := common.MultiplyScaled(&common.DCTCoefTranspose, &coef, mul, div)
	*out = common.Multiply(&cols, &common.DCTCoef)

	return nil
}
