package common

import (
	"math"
	"math/rand"
	"testing"
)

func identity() Block {
	var id Block
	for i := 0; i < BlockSize; i++ {
		id.Set(i, i, 1)
	}
	return id
}

func TestMultiplyIdentity(t *testing.T) {
	id := identity()
	rng := rand.New(rand.NewSource(1))

	var a Block
	for i := range a {
		a[i] = rng.Float64()*200 - 100
	}
	orig := a

	left := Multiply(&id, &a)
	right := Multiply(&a, &id)
	if left != a {
		t.Errorf("I*A != A")
	}
	if right != a {
		t.Errorf("A*I != A")
	}
	if a != orig {
		t.Errorf("Multiply modified its operand")
	}
}

func TestMultiplyOperandOrder(t *testing.T) {
	// a has a single 1 at (0,1), b a single 1 at (1,2): a*b has it at (0,2)
	var a, b Block
	a.Set(0, 1, 1)
	b.Set(1, 2, 1)

	ab := Multiply(&a, &b)
	ba := Multiply(&b, &a)

	if ab.At(0, 2) != 1 {
		t.Errorf("(a*b)[0][2] = %v, want 1", ab.At(0, 2))
	}
	if ba.MaxAbs() != 0 {
		t.Errorf("b*a should be zero, max abs %v", ba.MaxAbs())
	}
}

func TestMultiplyScaled(t *testing.T) {
	id := identity()
	var a Block
	for i := range a {
		a[i] = float64(i + 1)
	}

	div := MultiplyScaled(&id, &a, 1, 4)
	mul := MultiplyScaled(&id, &a, 3, 1)
	for i := range a {
		if div[i] != a[i]/4 {
			t.Errorf("div[%d] = %v, want %v", i, div[i], a[i]/4)
		}
		if mul[i] != a[i]*3 {
			t.Errorf("mul[%d] = %v, want %v", i, mul[i], a[i]*3)
		}
	}
}

func TestForwardConstantBlock(t *testing.T) {
	var x Block
	for i := range x {
		x[i] = 100.0
	}

	coef := Forward(&x)

	if dc := coef.At(0, 0); math.Abs(dc-800.0) > 1e-2 {
		t.Errorf("DC = %v, want 800", dc)
	}
	for i := 1; i < BlockLen; i++ {
		if math.Abs(coef[i]) > 1e-6 {
			t.Errorf("coef[%d] = %v, want ~0", i, coef[i])
		}
	}
}

func TestForwardInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 16; trial++ {
		var x Block
		for i := range x {
			x[i] = rng.Float64()*2 - 1
		}

		coef := Forward(&x)
		back := Inverse(&coef)

		for i := range x {
			if math.Abs(back[i]-x[i]) > 1e-4 {
				t.Fatalf("trial %d: back[%d] = %v, want %v", trial, i, back[i], x[i])
			}
		}
	}
}

func BenchmarkForward(b *testing.B) {
	var x Block
	for i := range x {
		x[i] = float64(i%8) * 0.1
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Forward(&x)
	}
}
