package dilithium

import (
	"crypto/subtle"
)

// Verify a signature.
//
//	- vkey is the public key
//	- data is the signed message
//	- sig is the signature to verify
//
// Returned value is true for a valid signature, false otherwise. If the
// key or the signature cannot be decoded (wrong length, non-canonical
// hint encoding), then false is returned. This function never panics on
// malformed input.
func Verify(vkey []byte, data []byte, sig []byte) bool {
	ok, _ := verify_inner(vkey, data, sig)
	return ok
}

// Verify a signature, reporting malformed inputs separately. This
// function acts like [Verify], except that a public key or signature
// which cannot be decoded yields an error wrapping [ErrDecode]; a
// well-formed signature that does not verify yields (false, nil).
func VerifyChecked(vkey []byte, data []byte, sig []byte) (bool, error) {
	return verify_inner(vkey, data, sig)
}

// Inner verification function.
func verify_inner(vkey []byte, data []byte, sig []byte) (bool, error) {
	pk := new(public_key)
	sg := new(signature)
	if err := decode_public_key(pk, vkey); err != nil {
		return false, err
	}
	if err := decode_signature(sg, sig); err != nil {
		return false, err
	}
	if polyvec_l_norm_exceeds(&sg.z, gamma1-beta) {
		return false, nil
	}

	// mu = H(H(pk) || M)
	var tr [SeedBytes]byte
	var mu [crh_bytes]byte
	shake256_sum(tr[:], vkey)
	shake256_sum(mu[:], tr[:], data)

	var cp poly
	poly_challenge(&cp, sg.ctilde[:])
	mat := new(matrix)
	matrix_expand(mat, pk.rho[:])

	// w1 <- A*z - c*t1*2^d
	var w1 polyvec_k
	polyvec_l_ntt(&sg.z)
	matrix_mul_ntt(&w1, mat, &sg.z)
	mqpoly_ntt(&cp)
	polyvec_k_shiftl(&pk.t1)
	polyvec_k_ntt(&pk.t1)
	polyvec_k_pointwise_poly(&pk.t1, &cp, &pk.t1)
	polyvec_k_sub(&w1, &pk.t1)
	polyvec_k_reduce(&w1)
	polyvec_k_invntt_tomont(&w1)

	// Reconstruct the high part with the hint, and recompute the
	// challenge seed.
	polyvec_k_caddq(&w1)
	polyvec_k_use_hint(&w1, &sg.h)
	var w1_packed [k * polyw1_packed_bytes]byte
	polyvec_k_pack_w1(w1_packed[:], &w1)
	var ctilde [SeedBytes]byte
	shake256_sum(ctilde[:], mu[:], w1_packed[:])

	return subtle.ConstantTimeCompare(ctilde[:], sg.ctilde[:]) == 1, nil
}
