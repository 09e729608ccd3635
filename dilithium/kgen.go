package dilithium

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

// Generate a new key pair.
//
//	- rng is random source to use (nil to use the OS RNG).
//
// Output is the new key pair (secret and public keys, both encoded, of
// sizes [SecretKeyBytes] and [PublicKeyBytes]). A 32-byte seed is read
// from the random source; an error wrapping [ErrEntropy] is returned if
// that read fails. Once the seed is obtained, the process cannot fail,
// and the output is fully determined by the seed.
func KeyGen(rng io.Reader) (skey []byte, vkey []byte, err error) {
	if rng == nil {
		rng = rand.Reader
	}
	var seed [SeedBytes]byte
	if _, err = io.ReadFull(rng, seed[:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrEntropy, err)
	}

	sk := new([SecretKeyBytes]byte)
	pk := new([PublicKeyBytes]byte)
	keygen_inner(seed[:], sk, pk)
	return sk[:], pk[:], nil
}

// Inner function; the output is deterministic for the provided seed.
func keygen_inner(seed []byte,
	skey *[SecretKeyBytes]byte, vkey *[PublicKeyBytes]byte) {

	// Expand the seed into rho (public), rhoprime (secret sampling seed)
	// and key (secret, for deterministic signing).
	var seedbuf [2*SeedBytes + crh_bytes]byte
	shake256_sum(seedbuf[:], seed)
	rho := seedbuf[:SeedBytes]
	rhoprime := seedbuf[SeedBytes : SeedBytes+crh_bytes]
	key := seedbuf[SeedBytes+crh_bytes:]

	sk := new(secret_key)
	pk := new(public_key)
	mat := new(matrix)
	copy(sk.rho[:], rho)
	copy(sk.key[:], key)
	copy(pk.rho[:], rho)
	matrix_expand(mat, rho)
	polyvec_l_uniform_eta(&sk.s1, rhoprime, 0)
	polyvec_k_uniform_eta(&sk.s2, rhoprime, l)

	// t = A*s1 + s2, split into t1 (public) and t0 (secret).
	matrix_affine(&pk.t1, mat, &sk.s1, &sk.s2)
	polyvec_k_power2round(&pk.t1, &sk.t0)

	encode_public_key(vkey, pk)
	shake256_sum(sk.tr[:], vkey[:])
	encode_secret_key(skey, sk)
}

// Decode a secret key and check that it is consistent: the public
// polynomial t is recomputed from rho, s1 and s2, and the secret key is
// re-encoded from the recomputed t0 and tr; the result must match the
// source bytes exactly. On success, the expanded matrix is written into
// mat and the matching encoded public key into vkey.
func load_secret_key(sk *secret_key, mat *matrix,
	vkey *[PublicKeyBytes]byte, skey []byte) error {

	if err := decode_secret_key(sk, skey); err != nil {
		return err
	}

	pk := new(public_key)
	ck := new(secret_key)
	*ck = *sk
	copy(pk.rho[:], sk.rho[:])
	matrix_expand(mat, sk.rho[:])
	matrix_affine(&pk.t1, mat, &sk.s1, &sk.s2)
	polyvec_k_power2round(&pk.t1, &ck.t0)
	encode_public_key(vkey, pk)
	shake256_sum(ck.tr[:], vkey[:])

	var buf [SecretKeyBytes]byte
	encode_secret_key(&buf, ck)
	if subtle.ConstantTimeCompare(buf[:], skey) != 1 {
		return fmt.Errorf("%w: inconsistent secret key", ErrDecode)
	}
	return nil
}

// Recompute the public key that matches the provided secret key. The
// secret key is fully validated (see [Sign]); an error wrapping
// [ErrDecode] is returned if it is malformed or inconsistent.
func DerivePublicKey(skey []byte) ([]byte, error) {
	sk := new(secret_key)
	mat := new(matrix)
	vkey := new([PublicKeyBytes]byte)
	if err := load_secret_key(sk, mat, vkey, skey); err != nil {
		return nil, err
	}
	return vkey[:], nil
}
