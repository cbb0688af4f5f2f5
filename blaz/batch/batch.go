// Package batch sequences many packed blocks into one buffer. Block i is
// stored at offset i*stride; windows never overlap, so blocks are encoded
// and decoded concurrently without locking.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cocosip/go-blaz-codec/blaz/common"
	"github.com/cocosip/go-blaz-codec/codec"
	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
	"golang.org/x/sync/errgroup"
)

// Encode packs every block with bc into a new buffer of len(blocks)*stride
// bytes. Padding between blocks is left zero.
// parameters may be nil, a *Parameters, or any codec.Parameters carrying
// "workers", "stride", "isVerbose" and "logger" values.
func Encode(ctx context.Context, bc codec.BlockCodec, blocks [][]float64, parameters dicomcodec.Parameters) ([]byte, error) {
	params, err := resolveParameters(parameters)
	if err != nil {
		return nil, err
	}
	stride, err := params.StrideFor(bc)
	if err != nil {
		return nil, fmt.Errorf("%w: stride %d, %s blocks take %d bytes",
			err, params.Stride, bc.Name(), bc.PackedSize())
	}

	buf := make([]byte, len(blocks)*stride)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(params.workers())
	for i, block := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := bc.EncodeBlock(block, buf, i*stride); err != nil {
				return fmt.Errorf("encode block %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if params.IsVerbose {
		params.logger().Info("batch encoded",
			"codec", bc.Name(),
			"blocks", len(blocks),
			"stride", stride,
			"bytes", len(buf),
			"workers", params.workers())
	}

	return buf, nil
}

// Decode reconstructs count blocks stored in buf by Encode
func Decode(ctx context.Context, bc codec.BlockCodec, buf []byte, count int, parameters dicomcodec.Parameters) ([][]float64, error) {
	params, err := resolveParameters(parameters)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: block count %d", codec.ErrInvalidParameter, count)
	}
	stride, err := params.StrideFor(bc)
	if err != nil {
		return nil, fmt.Errorf("%w: stride %d, %s blocks take %d bytes",
			err, params.Stride, bc.Name(), bc.PackedSize())
	}

	if count > 0 && (len(buf) < bc.PackedSize() || count-1 > (len(buf)-bc.PackedSize())/stride) {
		return nil, fmt.Errorf("%w: %d blocks at stride %d, buffer has %d bytes",
			common.ErrBufferTooSmall, count, stride, len(buf))
	}

	blocks := make([][]float64, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(params.workers())
	for i := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := make([]float64, 64)
			if err := bc.DecodeBlock(buf, i*stride, out); err != nil {
				return fmt.Errorf("decode block %d: %w", i, err)
			}
			blocks[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if params.IsVerbose {
		params.logger().Info("batch decoded",
			"codec", bc.Name(),
			"blocks", count,
			"stride", stride,
			"workers", params.workers())
	}

	return blocks, nil
}

// resolveParameters returns typed parameters, building them from the
// generic interface when another implementation is passed
func resolveParameters(parameters dicomcodec.Parameters) (*Parameters, error) {
	var params *Parameters
	switch p := parameters.(type) {
	case nil:
		params = NewParameters()
	case *Parameters:
		params = p
		if params == nil {
			params = NewParameters()
		}
	default:
		params = NewParameters()
		if w := p.GetParameter("workers"); w != nil {
			if wInt, ok := w.(int); ok {
				params.Workers = wInt
			}
		}
		if s := p.GetParameter("stride"); s != nil {
			if sInt, ok := s.(int); ok {
				params.Stride = sInt
			}
		}
		if vb := p.GetParameter("isVerbose"); vb != nil {
			if vbBool, ok := vb.(bool); ok {
				params.IsVerbose = vbBool
			}
		}
		if lg := p.GetParameter("logger"); lg != nil {
			if logger, ok := lg.(*slog.Logger); ok {
				params.Logger = logger
			}
		}
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}
