package mlkemcore

// zetas holds the precomputed NTT twiddle factors in Montgomery form, taken
// from FIPS 203 Appendix A and lifted into the Montgomery domain.
//
// zetas[i] = zeta^BitRev7(i) * R mod q, for zeta = 17 (a primitive 256th
// root of unity mod q) and R = 2^16. Index 0 is never read by ntt/invNTT
// (both cursors start at 1/127 respectively) but is kept so the table
// matches FIPS 203 Appendix A entry for entry.
var zetas = [128]int16{
	-1044, -758, -359, -1517, 1493, 1422, 287, 202, -171, 622, 1577, 182,
	962, -1202, -1474, 1468, 573, -1325, 264, 383, -829, 1458, -1602, -130,
	-681, 1017, 732, 608, -1542, 411, -205, -1571, 1223, 652, -552, 1015,
	-1293, 1491, -282, -1544, 516, -8, -320, -666, -1618, -1162, 126, 1469,
	-853, -90, -271, 830, 107, -1421, -247, -951, -398, 961, -1508, -725,
	448, -1065, 677, -1275, -1103, 430, 555, 843, -1251, 871, 1550, 105,
	422, 587, 177, -235, -291, -460, 1574, 1653, -246, 778, 1159, -147,
	-777, 1483, -602, 1119, -1590, 644, -872, 349, 418, 329, -156, -75, 817,
	1097, 603, 610, 1322, -1285, -1465, 384, -1215, -136, 1218, -1335, -874,
	220, -1187, -1659, -1185, -1530, -1278, 794, -1510, -854, -870, 478,
	-108, -308, 996, 991, 958, -1460, 1522, 1628,
}

// zetasBasemul holds the modulus parameters for BaseCaseMultiply, also in
// Montgomery form: zetasBasemul[i] = zeta^(2*BitRev7(i)+1) * R mod q.
// Consecutive pairs are negatives of each other.
var zetasBasemul = [128]int16{
	-1103, 1103, 430, -430, 555, -555, 843, -843, -1251, 1251, 871, -871,
	1550, -1550, 105, -105, 422, -422, 587, -587, 177, -177, -235, 235,
	-291, 291, -460, 460, 1574, -1574, 1653, -1653, -246, 246, 778, -778,
	1159, -1159, -147, 147, -777, 777, 1483, -1483, -602, 602, 1119, -1119,
	-1590, 1590, 644, -644, -872, 872, 349, -349, 418, -418, 329, -329,
	-156, 156, -75, 75, 817, -817, 1097, -1097, 603, -603, 610, -610, 1322,
	-1322, -1285, 1285, -1465, 1465, 384, -384, -1215, 1215, -136, 136,
	1218, -1218, -1335, 1335, -874, 874, 220, -220, -1187, 1187, -1659,
	1659, -1185, 1185, -1530, 1530, -1278, 1278, 794, -794, -1510, 1510,
	-854, 854, -870, 870, 478, -478, -108, 108, -308, 308, 996, -996, 991,
	-991, 958, -958, -1460, 1460, 1522, -1522, 1628, -1628,
}

// ntt applies the forward number-theoretic transform to f in place. f must
// hold canonical coefficients, in the standard or the Montgomery domain
// (Poly.Mul transforms Montgomery-domain copies); on return f holds its 128
// evaluations in bit-reversed order, each reduced to canonical form.
// Implements FIPS 203 Algorithm 9.
func ntt(f *[n]int16) {
	i := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[i]
			i++
			for j := start; j < start+length; j++ {
				t := fqmul(zeta, f[j+length])
				f[j+length] = barrett(f[j] - t)
				f[j] = barrett(f[j] + t)
			}
		}
	}
}

// invNTT applies the inverse number-theoretic transform to f in place. f
// must hold coefficients in bit-reversed evaluation order; on return f
// holds canonical coefficients in normal order. invNTT(ntt(f)) = f, so the
// result is in whichever domain (standard or Montgomery) the input to ntt
// was in. Implements FIPS 203 Algorithm 10.
func invNTT(f *[n]int16) {
	i := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < n; start += 2 * length {
			zeta := zetas[i]
			i--
			for j := start; j < start+length; j++ {
				t := f[j]
				f[j] = barrett(t + f[j+length])
				f[j+length] = fqmul(zeta, f[j+length]-t)
			}
		}
	}
	// Final normalization by 128^-1, applied in the Montgomery domain.
	for j := range f {
		f[j] = fqmul(f[j], invNMont)
	}
}

// baseCaseMultiply computes the product of two degree-1 polynomials
// (a0 + a1*X) and (b0 + b1*X) modulo X^2 - m. Implements FIPS 203
// Algorithm 12. r1 is left unreduced; the caller reduces it downstream
// (invNTT or barrett).
func baseCaseMultiply(a0, a1, b0, b1, m int16) (r0, r1 int16) {
	r0 = fqmul(fqmul(a1, b1), m) + fqmul(a0, b0)
	r1 = fqmul(a0, b1) + fqmul(a1, b0)
	return r0, r1
}

// nttMul computes the pointwise product of two NTT-domain polynomials,
// invoking baseCaseMultiply on each of the 128 degree-1 pairs. Implements
// FIPS 203 Algorithm 11.
func nttMul(r, a, b *[n]int16) {
	for i := 0; i < n/2; i++ {
		r[2*i], r[2*i+1] = baseCaseMultiply(a[2*i], a[2*i+1], b[2*i], b[2*i+1], zetasBasemul[i])
	}
}
