package common

// Multiply returns the matrix product a*b.
// Neither operand is modified.
func Multiply(a, b *Block) Block {
	var r Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			sum := 0.0
			for k := 0; k < BlockSize; k++ {
				sum += a[i*BlockSize+k] * b[k*BlockSize+j]
			}
			r[i*BlockSize+j] = sum
		}
	}
	return r
}

// MultiplyScaled returns a*b with every accumulated sum mapped to sum*mul/div.
// Decoding uses it to undo quantization inside the first inverse stage.
func MultiplyScaled(a, b *Block, mul, div float64) Block {
	var r Block
	for i := 0; i < BlockSize; i++ {
		for j := 0; j < BlockSize; j++ {
			sum := 0.0
			for k := 0; k < BlockSize; k++ {
				sum += a[i*BlockSize+k] * b[k*BlockSize+j]
			}
			r[i*BlockSize+j] = sum * mul / div
		}
	}
	return r
}

// Forward computes the 2D DCT-II of a spatial block: (C*X)*Ct
func Forward(x *Block) Block {
	rows := Multiply(&DCTCoef, x)
	return Multiply(&rows, &DCTCoefTranspose)
}

// Inverse computes the spatial block of a coefficient block: (Ct*Y)*C
func Inverse(y *Block) Block {
	cols := Multiply(&DCTCoefTranspose, y)
	return Multiply(&cols, &DCTCoef)
}
