package dilithium

import (
	sha3 "golang.org/x/crypto/sha3"
)

// Deterministic sampling of polynomials from seeds. Every function
// creates its own SHAKE stream, so that identical inputs always yield
// identical outputs and no state is shared between calls.

// Sample a polynomial with uniform coefficients in [0, q-1], by rejection
// sampling over 23-bit values taken from SHAKE128(rho || nonce). The
// result is interpreted as being in NTT representation.
func poly_uniform(a *poly, rho []byte, nonce uint16) {
	st := new_shake128_stream(rho, nonce)
	for i := 0; i < n; {
		t := uint32(st.next_u8())
		t |= uint32(st.next_u8()) << 8
		t |= uint32(st.next_u8()) << 16
		t &= 0x7FFFFF
		if t < q {
			a[i] = int32(t)
			i++
		}
	}
}

// Sample a polynomial with uniform coefficients in [-eta, +eta], by
// rejection sampling over 4-bit values taken from
// SHAKE256(seed || nonce). The seed has length crh_bytes.
func poly_uniform_eta(a *poly, seed []byte, nonce uint16) {
	st := new_shake256_stream(seed, nonce)
	for i := 0; i < n; {
		b := st.next_u8()
		t0 := int32(b & 0x0F)
		t1 := int32(b >> 4)
		if t0 < 2*eta+1 {
			a[i] = eta - t0
			i++
		}
		if t1 < 2*eta+1 && i < n {
			a[i] = eta - t1
			i++
		}
	}
}

// Sample a polynomial with coefficients in [-(gamma1-1), gamma1]; the
// first polyz_packed_bytes of SHAKE256(seed || nonce) are decoded as a
// packed z polynomial.
func poly_uniform_gamma1(a *poly, seed []byte, nonce uint16) {
	var buf [polyz_packed_bytes]byte
	st := new_shake256_stream(seed, nonce)
	st.read(buf[:])
	polyz_unpack(a, buf[:])
}

// Sample the challenge polynomial: exactly tau coefficients are set to
// +1 or -1, all others are zero. Positions are chosen with an inside-out
// Fisher-Yates shuffle driven by SHAKE256(ctilde); the first 8 bytes of
// the stream provide the signs.
func poly_challenge(c *poly, ctilde []byte) {
	sh := sha3.NewShake256()
	sh.Write(ctilde)
	st := new_shake_stream(sh, shake256_rate)
	signs := st.next_u64()
	mqpoly_zero(c)
	for i := n - tau; i < n; i++ {
		var b int
		for {
			b = int(st.next_u8())
			if b <= i {
				break
			}
		}
		c[i] = c[b]
		c[b] = 1 - 2*int32(signs&1)
		signs >>= 1
	}
}

// Expand the public matrix A from seed rho: A[i][j] is sampled with
// nonce (i << 8) + j. The matrix is in NTT representation.
func matrix_expand(mat *matrix, rho []byte) {
	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			poly_uniform(&mat[i][j], rho, uint16((i<<8)+j))
		}
	}
}

// Sample a short vector of length l, with nonces nonce to nonce+l-1.
func polyvec_l_uniform_eta(v *polyvec_l, seed []byte, nonce uint16) {
	for i := range v {
		poly_uniform_eta(&v[i], seed, nonce+uint16(i))
	}
}

// Sample a short vector of length k, with nonces nonce to nonce+k-1.
func polyvec_k_uniform_eta(v *polyvec_k, seed []byte, nonce uint16) {
	for i := range v {
		poly_uniform_eta(&v[i], seed, nonce+uint16(i))
	}
}

// Sample the masking vector y for signing attempt kappa; polynomial i
// uses nonce l*kappa + i.
func polyvec_l_uniform_gamma1(v *polyvec_l, seed []byte, kappa uint16) {
	for i := range v {
		poly_uniform_gamma1(&v[i], seed, l*kappa+uint16(i))
	}
}
