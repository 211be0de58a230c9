package mlkemcore

import (
	"math/rand"
	"testing"
)

func randomPoly(r *rand.Rand) Poly {
	var f Poly
	for i := range f.coeffs {
		f.coeffs[i] = int16(r.Intn(q)) - qMinus1Div2
	}
	return f
}

func TestPolyReduceCanonical(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	var f Poly
	for i := range f.coeffs {
		f.coeffs[i] = int16(r.Intn(4*q) - 2*q)
	}
	f.Reduce()
	if !f.IsValid() {
		t.Fatal("poly not canonical after Reduce")
	}
}

func TestPolyEqualReflexive(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	f := randomPoly(r)
	if !f.Equal(&f) {
		t.Fatal("Equal(f, f) = false, want true")
	}
}

func TestPolyEqualDiscriminates(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	f := randomPoly(r)
	g := f
	g.coeffs[42] = barrett(g.coeffs[42] + 1)
	if f.Equal(&g) {
		t.Fatal("Equal(f, g) = true for differing polynomials")
	}
}

// schoolbookMul computes the negacyclic product of a and b modulo X^256+1
// and q, directly per spec.md §8 property 6, as an independent oracle for
// Poly.Mul.
func schoolbookMul(a, b *Poly) Poly {
	var t [2 * n]int32
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t[i+j] += int32(a.coeffs[i]) * int32(b.coeffs[j])
		}
	}
	var r Poly
	for i := 0; i < n; i++ {
		r.coeffs[i] = barrett(int16((t[i] - t[n+i]) % q))
	}
	return r
}

func TestPolyMulMatchesSchoolbook(t *testing.T) {
	rnd := rand.New(rand.NewSource(20))
	for trial := 0; trial < 25; trial++ {
		a := randomPoly(rnd)
		b := randomPoly(rnd)

		var got Poly
		got.Mul(&a, &b)

		want := schoolbookMul(&a, &b)
		if !got.Equal(&want) {
			t.Fatalf("trial %d: Poly.Mul disagrees with schoolbook product", trial)
		}
	}
}

func TestPolyMulZero(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	b := randomPoly(rnd)
	var zero, got Poly

	got.Mul(&zero, &b)
	if !got.Equal(&zero) {
		t.Fatal("Mul(0, b) != 0")
	}

	got.Mul(&b, &zero)
	if !got.Equal(&zero) {
		t.Fatal("Mul(a, 0) != 0")
	}
}

// TestPolyMulS6 covers seed scenario S6: a = X^255, b = X; their negacyclic
// product is the constant polynomial -1 (since X^256 = -1 mod X^256+1).
func TestPolyMulS6(t *testing.T) {
	var a, b, got Poly
	a.coeffs[255] = 1
	b.coeffs[1] = 1

	got.Mul(&a, &b)

	var want Poly
	want.coeffs[0] = barrett(-1)
	if !got.Equal(&want) {
		t.Fatalf("X^255 * X = %v, want constant -1", got.coeffs)
	}
}

func TestPolyToFromMontgomeryRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	f := randomPoly(r)
	got := f
	got.ToMontgomery()
	got.FromMontgomery()
	if !got.Equal(&f) {
		t.Fatal("FromMontgomery(ToMontgomery(f)) != f")
	}
}

func TestPolySecureFreeZeroes(t *testing.T) {
	r := rand.New(rand.NewSource(31))
	f := randomPoly(r)
	f.SecureFree()
	for i, c := range f.coeffs {
		if c != 0 {
			t.Fatalf("coefficient %d not zeroed: %d", i, c)
		}
	}
}

func BenchmarkPolyMul(b *testing.B) {
	r := rand.New(rand.NewSource(40))
	x := randomPoly(r)
	y := randomPoly(r)
	var out Poly
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.Mul(&x, &y)
	}
}
