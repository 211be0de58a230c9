// Package mlkemcore implements the modular polynomial arithmetic core of
// ML-KEM-512, the post-quantum lattice key encapsulation mechanism
// standardized in FIPS 203.
//
// This package is the ring engine and byte codec only: modular arithmetic
// over Z_q with q = 3329, the degree-256 quotient ring R_q = Z_q[X]/(X^n+1),
// its k=2 vector extension, the number-theoretic transform (NTT) that turns
// ring multiplication into 128 independent base-case products, and the
// bit/byte packing used to serialize ring elements. It does not sample from
// any distribution, does not touch SHAKE/SHA-3, and does not implement
// key generation, encapsulation, or decapsulation — those consume this
// package's types but live one layer up.
//
// Basic usage:
//
//	var a, b, r Poly
//	// ... fill a, b with canonical coefficients ...
//	r.Mul(&a, &b) // r = a*b mod (X^256+1, 3329)
package mlkemcore

// Global ML-KEM-512 constants from FIPS 203.
const (
	// n is the number of coefficients in a polynomial.
	n = 256

	// q is the modulus: q = 3329.
	q = 3329

	// k is the module rank for ML-KEM-512.
	k = 2
)

// Derived constants.
const (
	// qMinus1Div2 bounds the canonical representative range
	// [-(q-1)/2, (q-1)/2].
	qMinus1Div2 = (q - 1) / 2
)

// Montgomery-domain constants (R = 2^16).
const (
	// montR is R mod q = 2^16 mod q.
	montR = 2285
	// montR2 is R^2 mod q, used to lift a standard-domain coefficient into
	// the Montgomery domain via fqmul(c, montR2).
	montR2 = 1353
	// qInv is q^-1 mod 2^16, the Montgomery reduction constant.
	qInv = 62209
	// barrettV is the nearest integer to 2^26/q, the Barrett constant.
	barrettV = 20159
	// invNMont is 128^-1 * R mod q, the final NTT^-1 normalizer in the
	// Montgomery domain.
	invNMont = 512
)

// Encoding size (bytes per polynomial at bit-width d).
//
// A Poly at bit-width d serializes to exactly encodingSize(d) = 32*d bytes;
// a PolyVec of rank k serializes to 32*d*k bytes, poly-0 first.
func encodingSize(d int) int {
	return 32 * d
}
