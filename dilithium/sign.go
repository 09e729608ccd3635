package dilithium

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Sign a message using a given secret key (deterministic variant).
//
//	- skey is the secret key (encoded, [SecretKeyBytes] bytes)
//	- data is the message to sign (arbitrary length, possibly empty)
//
// The signature is fully determined by the key and the message: signing
// the same message twice yields the same [SignBytes]-byte signature. The
// secret key is checked for consistency before use; an error wrapping
// [ErrDecode] is returned if it is malformed. An error wrapping
// [ErrInternalBound] is returned if no attempt is accepted within the
// attempt limit (this happens only with negligible probability).
func Sign(skey []byte, data []byte) ([]byte, error) {
	return sign_inner_seeded(nil, skey, data, max_sign_attempts)
}

// Sign a message using a given secret key (randomized variant). This
// behaves like [Sign], except that the per-signature masking seed is
// read from the provided random source (nil to use the OS RNG) instead
// of being derived from the key and the message. If the random source
// fails, an error wrapping [ErrEntropy] is returned.
func SignRandomized(rng io.Reader, skey []byte, data []byte) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var rnd [crh_bytes]byte
	if _, err := io.ReadFull(rng, rnd[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	return sign_inner_seeded(rnd[:], skey, data, max_sign_attempts)
}

// Inner signature function with an explicit masking seed (nil for
// deterministic signing); this is used for reproducible test vectors.
// At most max_attempts signing attempts are performed.
func sign_inner_seeded(rnd []byte, skey []byte, data []byte,
	max_attempts int) ([]byte, error) {

	ws := new(sign_workspace)
	sk := new(secret_key)
	var vkey [PublicKeyBytes]byte
	if err := load_secret_key(sk, &ws.mat, &vkey, skey); err != nil {
		return nil, err
	}

	// mu = H(tr || M)
	shake256_sum(ws.mu[:], sk.tr[:], data)

	// Masking seed: explicit, or derived from the key and mu.
	if rnd != nil {
		copy(ws.rhoprime[:], rnd)
	} else {
		shake256_sum(ws.rhoprime[:], sk.key[:], ws.mu[:])
	}

	// Secret vectors are used in NTT representation.
	ws.s1 = sk.s1
	ws.s2 = sk.s2
	ws.t0 = sk.t0
	polyvec_l_ntt(&ws.s1)
	polyvec_k_ntt(&ws.s2)
	polyvec_k_ntt(&ws.t0)

	sig := new([SignBytes]byte)
	if err := sign_core(ws, sig, max_attempts); err != nil {
		return nil, err
	}
	return sig[:], nil
}
