package codec

// SurfaceBlock samples f on an 8x8 grid with spacing step, row by row:
// sample (row, col) is f(step*row, step*col). Tests and tools use it to
// build smooth blocks.
func SurfaceBlock(f func(x, y float64) float64, step float64) []float64 {
	samples := make([]float64, 64)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			samples[i*8+j] = f(step*float64(i), step*float64(j))
		}
	}
	return samples
}

// CubicDifference is the surface x^3 - y^3
func CubicDifference(x, y float64) float64 {
	return x*x*x - y*y*y
}

// LinearSum is the surface x + y
func LinearSum(x, y float64) float64 {
	return x + y
}

// MaxAbsDiff returns the largest absolute difference between a and b and
// the index where it occurs
func MaxAbsDiff(a, b []float64) (float64, int) {
	worst, at := 0.0, -1
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > worst || at < 0 {
			worst, at = d, i
		}
	}
	return worst, at
}
