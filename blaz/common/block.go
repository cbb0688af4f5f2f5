package common

import "math"

const (
	// BlockSize is the edge length of a transform block
	BlockSize = 8

	// BlockLen is the number of samples in a block
	BlockLen = BlockSize * BlockSize
)

// Block is an 8x8 matrix of samples or coefficients stored row-major:
// the element at (row, col) lives at index row*BlockSize+col.
type Block [BlockLen]float64

// At returns the element at (row, col)
func (b *Block) At(row, col int) float64 {
	return b[row*BlockSize+col]
}

// Set stores v at (row, col)
func (b *Block) Set(row, col int, v float64) {
	b[row*BlockSize+col] = v
}

// MaxAbs returns the largest absolute value in the block
func (b *Block) MaxAbs() float64 {
	maxAbs := 0.0
	for _, v := range b {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// Finite reports whether every element is neither NaN nor infinite.
// It returns the index of the first offending element otherwise.
func (b *Block) Finite() (int, bool) {
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, false
		}
	}
	return -1, true
}
