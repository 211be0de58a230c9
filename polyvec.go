package mlkemcore

// PolyVec is a fixed-length k-vector of Poly, the R_q^k module element
// used for ML-KEM-512's public key, secret key, and ciphertext vectors.
type PolyVec [k]Poly

// Matrix is a square k x k arrangement of Polys, represented as k rows of
// PolyVec (row-major, contiguous). The only structural operation on it is
// Transpose.
type Matrix [k]PolyVec

// Zero sets every entry of f to zero.
func (f *PolyVec) Zero() {
	for i := range f {
		f[i].Zero()
	}
}

// SecureFree zeroizes every entry of f in place.
func (f *PolyVec) SecureFree() {
	for i := range f {
		f[i].SecureFree()
	}
}

// IsValid reports whether every entry of f is canonical.
func (f *PolyVec) IsValid() bool {
	var valid int16 = 1
	for i := range f {
		valid &= boolToInt16(f[i].IsValid())
	}
	return valid != 0
}

// Reduce applies Barrett reduction to every entry of f.
func (f *PolyVec) Reduce() {
	for i := range f {
		f[i].Reduce()
	}
}

// Equal reports whether f and g are identical as vectors of canonical
// polynomials. It compares all k entries rather than returning on the
// first mismatch, matching Poly.Equal's constant-time aggregation.
//
// Note: the C source this core is modeled on has a bug here, iterating to
// KYBER_N (256) instead of KYBER_K (2) — indexing two entries past the end
// of a k=2 vector. This method correctly iterates over the vector's k
// entries.
func (f *PolyVec) Equal(g *PolyVec) bool {
	var equal int16 = 1
	for i := range f {
		equal &= boolToInt16(f[i].Equal(&g[i]))
	}
	return equal != 0
}

// Clone returns a value copy of f.
func (f *PolyVec) Clone() PolyVec {
	return *f
}

// Add sets r = a + b, entrywise.
func (r *PolyVec) Add(a, b *PolyVec) {
	for i := range r {
		r[i].Add(&a[i], &b[i])
	}
}

// Sub sets r = a - b, entrywise.
func (r *PolyVec) Sub(a, b *PolyVec) {
	for i := range r {
		r[i].Sub(&a[i], &b[i])
	}
}

// NTT applies the forward NTT to every entry of f in place.
func (f *PolyVec) NTT() {
	for i := range f {
		f[i].NTT()
	}
}

// InvNTT applies the inverse NTT to every entry of f in place.
func (f *PolyVec) InvNTT() {
	for i := range f {
		f[i].InvNTT()
	}
}

// NTTScalarProduct sets r = sum_i a[i] (x) b[i], where (x) is pointwise
// NTT multiplication, with a and b both in the NTT domain. The
// accumulating temporary carries the last pointwise product of
// potentially secret operands and is zeroized once the loop completes.
func (r *Poly) NTTScalarProduct(a, b *PolyVec) {
	r.Zero()
	var temp Poly
	for i := range a {
		nttMul(&temp.coeffs, &a[i].coeffs, &b[i].coeffs)
		r.Add(r, &temp)
	}
	temp.SecureFree()
}

// NTTProduct sets r = A*v, the matrix-vector product in the NTT domain:
// for each row i, r[i] = NTTScalarProduct(A[i], v).
func (r *PolyVec) NTTProduct(a *Matrix, v *PolyVec) {
	for i := range r {
		r[i].NTTScalarProduct(&a[i], v)
	}
}

// Transpose replaces the square matrix a by its transpose in place,
// swapping a[i][j] and a[j][i] for i < j. Because PolyVec's entries are
// Poly arrays, assignment in Go always moves the entire 256-coefficient
// value rather than aliasing a pointer.
func (a *Matrix) Transpose() {
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			a[i][j], a[j][i] = a[j][i], a[i][j]
		}
	}
}

// Compress replaces every entry of f by its d-bit compression, delegating
// to Poly.Compress.
//
// Note: the C source this core is modeled on passes the whole vector to
// the scalar compress() routine, a type mismatch that could not compile
// as written. This method does the componentwise delegation the source
// evidently intended.
func (f *PolyVec) Compress(d int) {
	for i := range f {
		f[i].Compress(d)
	}
}

// Decompress replaces every entry of f by its decompression, delegating
// to Poly.Decompress.
func (f *PolyVec) Decompress(d int) {
	for i := range f {
		f[i].Decompress(d)
	}
}

// ByteEncode serializes f into 32*d*k bytes: the concatenation of each
// entry's 32*d-byte encoding, poly-0 first.
func (f *PolyVec) ByteEncode(d int) []byte {
	out := make([]byte, encodingSize(d)*k)
	for i := range f {
		copy(out[i*encodingSize(d):], ByteEncode(&f[i], d))
	}
	return out
}

// ByteDecode deserializes 32*d*k bytes into a PolyVec; the inverse of
// ByteEncode. It returns an error under the same conditions as ByteDecode.
func (f *PolyVec) ByteDecode(b []byte, d int) error {
	if d < 1 || d > 12 {
		return errorByteWidth
	}
	if len(b) != encodingSize(d)*k {
		return errorBufferLength
	}
	for i := range f {
		p, err := ByteDecode(b[i*encodingSize(d):(i+1)*encodingSize(d)], d)
		if err != nil {
			return err
		}
		f[i] = *p
	}
	return nil
}
