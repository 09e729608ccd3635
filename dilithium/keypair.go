package dilithium

import (
	"fmt"
	"io"
)

// Keypair holds an encoded secret key and the matching public key. The
// secret key is never included in the output of String or of the fmt
// verbs.
type Keypair struct {
	public [PublicKeyBytes]byte
	secret [SecretKeyBytes]byte
}

// Generate a new key pair; see [KeyGen] for the handling of rng.
func GenerateKeypair(rng io.Reader) (*Keypair, error) {
	skey, vkey, err := KeyGen(rng)
	if err != nil {
		return nil, err
	}
	kp := new(Keypair)
	copy(kp.public[:], vkey)
	copy(kp.secret[:], skey)
	return kp, nil
}

// Rebuild a key pair from an encoded secret key. The public key is
// recomputed (see [DerivePublicKey]).
func NewKeypair(skey []byte) (*Keypair, error) {
	vkey, err := DerivePublicKey(skey)
	if err != nil {
		return nil, err
	}
	kp := new(Keypair)
	copy(kp.public[:], vkey)
	copy(kp.secret[:], skey)
	return kp, nil
}

// PublicKey returns a copy of the encoded public key.
func (kp *Keypair) PublicKey() []byte {
	vkey := make([]byte, PublicKeyBytes)
	copy(vkey, kp.public[:])
	return vkey
}

// SecretKey returns a copy of the encoded secret key.
func (kp *Keypair) SecretKey() []byte {
	skey := make([]byte, SecretKeyBytes)
	copy(skey, kp.secret[:])
	return skey
}

// Sign a message with the secret key (deterministic, see [Sign]).
func (kp *Keypair) Sign(data []byte) ([]byte, error) {
	return Sign(kp.secret[:], data)
}

// Verify a signature against the public key (see [Verify]).
func (kp *Keypair) Verify(data []byte, sig []byte) bool {
	return Verify(kp.public[:], data, sig)
}

// String returns a short description of the key pair, without the
// secret key. Value receiver: printing a Keypair value is redacted too.
func (kp Keypair) String() string {
	return fmt.Sprintf("Keypair{public: %x..., secret: <elided>}",
		kp.public[:8])
}

// Format implements fmt.Formatter; all verbs print the same redacted
// form as String.
func (kp Keypair) Format(f fmt.State, verb rune) {
	io.WriteString(f, kp.String())
}
