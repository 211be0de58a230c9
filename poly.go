package mlkemcore

// Poly is a ring element of R_q = Z_q[X]/(X^n+1): the polynomial
// coeffs[0] + coeffs[1]*X + ... + coeffs[255]*X^255. A Poly exclusively
// owns its coefficient storage; assigning or passing it by value duplicates
// that storage, matching Go's array-value semantics.
//
// At any moment a Poly is, by caller convention, in one of three domains:
// standard, Montgomery, or NTT (Montgomery-domain coefficients in
// bit-reversed evaluation order). The domain is never stored at runtime —
// it is a static obligation on the caller, documented per method below.
// Every public method except Compress leaves or produces a Poly with
// coefficients in [-(q-1)/2, (q-1)/2] (in whichever domain it is in);
// Compress leaves integers in [0, 2^d).
type Poly struct {
	coeffs [n]int16
}

// Zero sets every coefficient to 0.
func (f *Poly) Zero() {
	for i := range f.coeffs {
		f.coeffs[i] = 0
	}
}

// SecureFree zeroizes f in place. Go has no manual memory release, so
// unlike the C source's poly_secure_free this only performs the
// zeroization half of that operation; callers should drop their last
// reference to f immediately afterward.
func (f *Poly) SecureFree() {
	f.Zero()
}

// IsValid reports whether every coefficient of f is canonical, i.e. lies
// in [-(q-1)/2, (q-1)/2]. The check is branch-free over the 256 positions:
// it aggregates with bitwise AND/OR rather than an early-exit loop, so it
// does not reveal which coefficient (if any) is out of range.
func (f *Poly) IsValid() bool {
	var valid int16 = 1
	for i := range f.coeffs {
		t := f.coeffs[i] + qMinus1Div2
		inRange := boolToInt16(t >= 0) & boolToInt16(t < q)
		valid &= inRange
	}
	return valid != 0
}

func boolToInt16(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// Reduce applies Barrett reduction to every coefficient, bringing f to
// canonical form.
func (f *Poly) Reduce() {
	for i := range f.coeffs {
		f.coeffs[i] = barrett(f.coeffs[i])
	}
}

// Equal reports whether f and g are identical as canonical polynomials.
// It aggregates over all 256 positions rather than returning on the first
// mismatch, so the control flow does not depend on where (or whether) f
// and g differ.
func (f *Poly) Equal(g *Poly) bool {
	var diff int16
	for i := range f.coeffs {
		diff |= barrett(f.coeffs[i] - g.coeffs[i])
	}
	return diff == 0
}

// Clone returns a value copy of f.
func (f *Poly) Clone() Poly {
	return *f
}

// ToMontgomery lifts every coefficient of f from the standard domain into
// the Montgomery domain (c becomes c*R mod q), using R^2 mod q = 1353.
func (f *Poly) ToMontgomery() {
	for i := range f.coeffs {
		f.coeffs[i] = fqmul(f.coeffs[i], montR2)
	}
}

// FromMontgomery lowers every coefficient of f out of the Montgomery
// domain by one factor of R, leaving canonical standard-domain values.
func (f *Poly) FromMontgomery() {
	for i := range f.coeffs {
		f.coeffs[i] = montgomeryReduce(int32(f.coeffs[i]))
	}
}

// Add sets r = a + b, pointwise, Barrett-reduced.
func (r *Poly) Add(a, b *Poly) {
	for i := range r.coeffs {
		r.coeffs[i] = barrett(a.coeffs[i] + b.coeffs[i])
	}
}

// Sub sets r = a - b, pointwise, Barrett-reduced.
func (r *Poly) Sub(a, b *Poly) {
	for i := range r.coeffs {
		r.coeffs[i] = barrett(a.coeffs[i] - b.coeffs[i])
	}
}

// NTT applies the forward NTT to f in place. f must hold canonical
// standard-domain coefficients (Montgomery domain if the ring product is
// to follow); on return f is in the NTT domain, bit-reversed order.
func (f *Poly) NTT() {
	ntt(&f.coeffs)
}

// InvNTT applies the inverse NTT to f in place, mapping it from the NTT
// domain back to the Montgomery domain in standard coefficient order.
func (f *Poly) InvNTT() {
	invNTT(&f.coeffs)
}

// Mul sets r = a*b mod (X^n+1, q), the full ring-multiplication pipeline:
// lift copies of a and b to Montgomery form, forward-NTT both, multiply
// pointwise, zeroize the (potentially secret) copies, inverse-NTT the
// result, drop out of Montgomery form, and reduce to canonical form.
func (r *Poly) Mul(a, b *Poly) {
	aCopy := a.Clone()
	bCopy := b.Clone()

	aCopy.ToMontgomery()
	bCopy.ToMontgomery()

	aCopy.NTT()
	bCopy.NTT()

	nttMul(&r.coeffs, &aCopy.coeffs, &bCopy.coeffs)

	aCopy.SecureFree()
	bCopy.SecureFree()

	r.InvNTT()
	r.FromMontgomery()
	r.Reduce()
}

// Compress replaces every coefficient of f by its d-bit compression
// (see CompressScalar). CompressScalar's contract requires x in [0, q);
// negative canonical representatives are lifted by +q first, per the
// domain-tag convention. The result is no longer an element of Z_q — it
// holds integers in [0, 2^d).
func (f *Poly) Compress(d int) {
	for i := range f.coeffs {
		x := f.coeffs[i]
		if x < 0 {
			x += q
		}
		f.coeffs[i] = int16(CompressScalar(uint16(x), d))
	}
}

// Decompress replaces every coefficient of f, read as a d-bit compressed
// integer, by its decompression into Z_q (see DecompressScalar), recentered
// to the canonical signed range so f keeps the Poly-wide canonical-range
// invariant afterward.
func (f *Poly) Decompress(d int) {
	for i := range f.coeffs {
		x := DecompressScalar(uint16(f.coeffs[i]), d)
		f.coeffs[i] = barrett(int16(x))
	}
}
