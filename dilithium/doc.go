// This package implements the CRYSTALS-Dilithium signature algorithm.
//
// WARNING: this is the Dilithium3 parameter set of the round 3 submission
// (version 3.1, SHAKE variant) to the [PQC project]. It predates the final
// ML-DSA standard (FIPS 204), which is not compatible with it: keys and
// signatures produced here cannot be used with ML-DSA implementations.
// This code should be used only for tests, interoperability with round 3
// implementations, and concept/prototype purposes.
//
// A key pair consists of a secret key (private) and a public key. Each key
// is exchanged in an encoded format which has a fixed size:
// [SecretKeyBytes] and [PublicKeyBytes]. A new key pair is created with the
// [KeyGen] function, which takes as parameter a source of randomness; the
// random source MUST be cryptographically secure. If the source is nil,
// then the operating system's RNG is used (through crypto/rand.Reader).
// Only 32 bytes ([SeedBytes]) are read from the source, and the key pair
// is fully determined by these bytes. The [Keypair] type wraps both keys
// for convenience.
//
// A signature is generated with [Sign] over an arbitrary message, using a
// secret key. Signatures have a fixed size of [SignBytes] bytes. [Sign] is
// deterministic: the same key and message always produce the same
// signature. [SignRandomized] instead draws the per-signature masking seed
// from a random source. In both cases the secret key is checked for
// internal consistency before use, and [DerivePublicKey] recomputes the
// public key from it.
//
// Signature verification is performed with [Verify], which returns a
// Boolean and never fails on malformed input, or with [VerifyChecked],
// which additionally reports undecodable keys and signatures as errors.
//
// All operations are synchronous and keep no state between calls; they
// may be used concurrently from several goroutines.
//
// [PQC project]: https://www.nist.gov/pqcrypto
package dilithium
