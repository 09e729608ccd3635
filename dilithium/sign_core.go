package dilithium

import (
	"fmt"
)

// Maximum number of signing attempts. The expected number of attempts
// is about 5, and the probability of reaching this bound is negligible.
const max_sign_attempts = 1000

// Scratch space for one signature computation. A new workspace is
// allocated for each call; it is never shared.
type sign_workspace struct {
	mat matrix

	// Secret vectors, in NTT representation.
	s1 polyvec_l
	s2 polyvec_k
	t0 polyvec_k

	mu       [crh_bytes]byte
	rhoprime [crh_bytes]byte

	y  polyvec_l
	z  polyvec_l
	w1 polyvec_k
	w0 polyvec_k
	h  polyvec_k
	cp poly

	w1_packed [k * polyw1_packed_bytes]byte

	// Candidate signature for the current attempt.
	sig signature
}

// Outcome of a single signing attempt.
type sign_outcome int

const (
	attempt_accepted sign_outcome = iota
	attempt_reject_z
	attempt_reject_w0
	attempt_reject_ct0
	attempt_reject_hint
)

func (o sign_outcome) String() string {
	switch o {
	case attempt_accepted:
		return "accepted"
	case attempt_reject_z:
		return "z out of bounds"
	case attempt_reject_w0:
		return "low bits out of bounds"
	case attempt_reject_ct0:
		return "c*t0 out of bounds"
	case attempt_reject_hint:
		return "hint weight too large"
	default:
		return fmt.Sprintf("sign_outcome(%d)", int(o))
	}
}

// Run signing attempts with counter values 0, 1, 2... until one is
// accepted, then encode the signature into sig. The workspace must hold
// the expanded matrix, the secret vectors (NTT), mu and rhoprime.
func sign_core(ws *sign_workspace, sig *[SignBytes]byte, max_attempts int) error {
	for kappa := 0; kappa < max_attempts; kappa++ {
		if sign_attempt(ws, uint16(kappa)) == attempt_accepted {
			encode_signature(sig, &ws.sig)
			return nil
		}
	}
	return fmt.Errorf("%w: no attempt accepted after %d tries",
		ErrInternalBound, max_attempts)
}

// One signing attempt with counter kappa. On acceptance, ws.sig holds
// the signature (challenge seed, response z and hint h).
func sign_attempt(ws *sign_workspace, kappa uint16) sign_outcome {
	// Sample the masking vector y, and compute w = A*y.
	polyvec_l_uniform_gamma1(&ws.y, ws.rhoprime[:], kappa)
	ws.z = ws.y
	polyvec_l_ntt(&ws.z)
	matrix_mul_ntt(&ws.w1, &ws.mat, &ws.z)
	polyvec_k_reduce(&ws.w1)
	polyvec_k_invntt_tomont(&ws.w1)
	polyvec_k_caddq(&ws.w1)

	// w1 <- high part, w0 <- low part; the challenge seed is the hash
	// of mu and the packed high part.
	polyvec_k_decompose(&ws.w1, &ws.w0)
	polyvec_k_pack_w1(ws.w1_packed[:], &ws.w1)
	shake256_sum(ws.sig.ctilde[:], ws.mu[:], ws.w1_packed[:])
	poly_challenge(&ws.cp, ws.sig.ctilde[:])
	mqpoly_ntt(&ws.cp)

	// z = y + c*s1
	polyvec_l_pointwise_poly(&ws.z, &ws.cp, &ws.s1)
	polyvec_l_invntt_tomont(&ws.z)
	polyvec_l_add(&ws.z, &ws.y)
	polyvec_l_reduce(&ws.z)
	if polyvec_l_norm_exceeds(&ws.z, gamma1-beta) {
		return attempt_reject_z
	}

	// w0 <- w0 - c*s2
	polyvec_k_pointwise_poly(&ws.h, &ws.cp, &ws.s2)
	polyvec_k_invntt_tomont(&ws.h)
	polyvec_k_sub(&ws.w0, &ws.h)
	polyvec_k_reduce(&ws.w0)
	if polyvec_k_norm_exceeds(&ws.w0, gamma2-beta) {
		return attempt_reject_w0
	}

	// h <- c*t0
	polyvec_k_pointwise_poly(&ws.h, &ws.cp, &ws.t0)
	polyvec_k_invntt_tomont(&ws.h)
	polyvec_k_reduce(&ws.h)
	if polyvec_k_norm_exceeds(&ws.h, gamma2) {
		return attempt_reject_ct0
	}

	polyvec_k_add(&ws.w0, &ws.h)
	if polyvec_k_make_hint(&ws.sig.h, &ws.w0, &ws.w1) > omega {
		return attempt_reject_hint
	}

	ws.sig.z = ws.z
	return attempt_accepted
}
