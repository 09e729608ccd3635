package dilithium

import (
	"fmt"
)

// Encode n values of nbits bits each into dst, in little-endian bit
// order (the first value occupies the least significant bits of the
// first byte). Values are truncated to nbits bits. n*nbits must be a
// multiple of 8; the number of written bytes is returned.
func bits_encode(dst []byte, v *[n]uint32, nbits uint) int {
	acc := uint64(0)
	acc_len := uint(0)
	mask := (uint64(1) << nbits) - 1
	j := 0
	for i := 0; i < n; i++ {
		acc |= (uint64(v[i]) & mask) << acc_len
		acc_len += nbits
		for acc_len >= 8 {
			dst[j] = uint8(acc)
			j++
			acc >>= 8
			acc_len -= 8
		}
	}
	return j
}

// Decode n values of nbits bits each from src (little-endian bit order).
// The source must contain at least n*nbits/8 bytes. The number of read
// bytes is returned.
func bits_decode(v *[n]uint32, src []byte, nbits uint) int {
	needed := (n * int(nbits)) >> 3
	acc := uint64(0)
	acc_len := uint(0)
	mask := (uint64(1) << nbits) - 1
	j := 0
	for i := 0; i < needed; i++ {
		acc |= uint64(src[i]) << acc_len
		acc_len += 8
		for acc_len >= nbits {
			v[j] = uint32(acc & mask)
			j++
			acc >>= nbits
			acc_len -= nbits
		}
	}
	return needed
}

// Short polynomials (coefficients in [-eta, +eta]): 4 bits per
// coefficient, each stored as eta - a[i].
func polyeta_pack(dst []byte, a *poly) {
	var v [n]uint32
	for i := 0; i < n; i++ {
		v[i] = uint32(eta - a[i])
	}
	bits_encode(dst, &v, 4)
}

// Decode a short polynomial. Returned value is false if any coefficient
// is out of range (the decoded value is then not usable). The check
// does not branch on individual coefficients.
func polyeta_unpack(a *poly, src []byte) bool {
	var v [n]uint32
	bits_decode(&v, src, 4)
	bad := int32(0)
	for i := 0; i < n; i++ {
		x := int32(v[i])
		bad |= (2*eta - x) >> 31
		a[i] = eta - x
	}
	return bad == 0
}

// High bits of t (10 bits per coefficient, values in [0, 1023]).
func polyt1_pack(dst []byte, a *poly) {
	var v [n]uint32
	for i := 0; i < n; i++ {
		v[i] = uint32(a[i])
	}
	bits_encode(dst, &v, 10)
}

func polyt1_unpack(a *poly, src []byte) {
	var v [n]uint32
	bits_decode(&v, src, 10)
	for i := 0; i < n; i++ {
		a[i] = int32(v[i])
	}
}

// Low bits of t (13 bits per coefficient). Coefficients are in
// [-(2^(d-1)-1), 2^(d-1)] and stored as 2^(d-1) - a[i]; every 13-bit
// pattern decodes to a value in that range.
func polyt0_pack(dst []byte, a *poly) {
	var v [n]uint32
	for i := 0; i < n; i++ {
		v[i] = uint32((1 << (d - 1)) - a[i])
	}
	bits_encode(dst, &v, d)
}

func polyt0_unpack(a *poly, src []byte) {
	var v [n]uint32
	bits_decode(&v, src, d)
	for i := 0; i < n; i++ {
		a[i] = (1 << (d - 1)) - int32(v[i])
	}
}

// Response polynomial z (20 bits per coefficient). Coefficients are in
// [-(gamma1-1), gamma1] and stored as gamma1 - a[i].
func polyz_pack(dst []byte, a *poly) {
	var v [n]uint32
	for i := 0; i < n; i++ {
		v[i] = uint32(gamma1 - a[i])
	}
	bits_encode(dst, &v, 20)
}

func polyz_unpack(a *poly, src []byte) {
	var v [n]uint32
	bits_decode(&v, src, 20)
	for i := 0; i < n; i++ {
		a[i] = gamma1 - int32(v[i])
	}
}

// High part w1 (4 bits per coefficient, values in [0, 15]).
func polyw1_pack(dst []byte, a *poly) {
	var v [n]uint32
	for i := 0; i < n; i++ {
		v[i] = uint32(a[i])
	}
	bits_encode(dst, &v, 4)
}

// Pack the whole w1 vector, as used as input to the challenge hash.
func polyvec_k_pack_w1(dst []byte, w1 *polyvec_k) {
	for i := range w1 {
		polyw1_pack(dst[i*polyw1_packed_bytes:], &w1[i])
	}
}

// Encode the hint vector: the positions of all non-zero coefficients,
// row by row, followed by k bytes holding the cumulative number of
// positions at the end of each row. The hint weight must not exceed
// omega. Unused position bytes are zero.
func polyvech_pack(dst []byte, h *polyvec_k) {
	for i := 0; i < polyvech_packed_bytes; i++ {
		dst[i] = 0
	}
	j := 0
	for i := 0; i < k; i++ {
		for m := 0; m < n; m++ {
			if h[i][m] != 0 {
				dst[j] = uint8(m)
				j++
			}
		}
		dst[omega+i] = uint8(j)
	}
}

// Decode the hint vector. The encoding is rejected if a cumulative count
// decreases or exceeds omega, if positions are not strictly increasing
// within a row, or if an unused position byte is not zero. These checks
// make the encoding of a given hint vector unique.
func polyvech_unpack(h *polyvec_k, src []byte) error {
	j := 0
	for i := 0; i < k; i++ {
		mqpoly_zero(&h[i])
		e := int(src[omega+i])
		if e < j || e > omega {
			return fmt.Errorf("%w: invalid hint count", ErrDecode)
		}
		for m := j; m < e; m++ {
			if m > j && src[m] <= src[m-1] {
				return fmt.Errorf("%w: unordered hint positions", ErrDecode)
			}
			h[i][src[m]] = 1
		}
		j = e
	}
	for m := j; m < omega; m++ {
		if src[m] != 0 {
			return fmt.Errorf("%w: non-zero hint padding", ErrDecode)
		}
	}
	return nil
}

// Decoded public key.
type public_key struct {
	rho [SeedBytes]byte
	t1  polyvec_k
}

// Decoded secret key.
type secret_key struct {
	rho [SeedBytes]byte
	key [SeedBytes]byte
	tr  [SeedBytes]byte
	s1  polyvec_l
	s2  polyvec_k
	t0  polyvec_k
}

// Decoded signature.
type signature struct {
	ctilde [SeedBytes]byte
	z      polyvec_l
	h      polyvec_k
}

// Encode a public key: rho || t1.
func encode_public_key(dst *[PublicKeyBytes]byte, pk *public_key) {
	copy(dst[:SeedBytes], pk.rho[:])
	off := SeedBytes
	for i := range pk.t1 {
		polyt1_pack(dst[off:], &pk.t1[i])
		off += polyt1_packed_bytes
	}
}

// Decode a public key. Any byte sequence of the right length is a
// structurally valid public key.
func decode_public_key(pk *public_key, src []byte) error {
	if len(src) != PublicKeyBytes {
		return fmt.Errorf("%w: public key has length %d (expected %d)",
			ErrDecode, len(src), PublicKeyBytes)
	}
	buf := (*[PublicKeyBytes]byte)(src)
	copy(pk.rho[:], buf[:SeedBytes])
	off := SeedBytes
	for i := range pk.t1 {
		polyt1_unpack(&pk.t1[i], buf[off:])
		off += polyt1_packed_bytes
	}
	return nil
}

// Encode a secret key: rho || key || tr || s1 || s2 || t0.
func encode_secret_key(dst *[SecretKeyBytes]byte, sk *secret_key) {
	copy(dst[0:], sk.rho[:])
	copy(dst[SeedBytes:], sk.key[:])
	copy(dst[2*SeedBytes:], sk.tr[:])
	off := 3 * SeedBytes
	for i := range sk.s1 {
		polyeta_pack(dst[off:], &sk.s1[i])
		off += polyeta_packed_bytes
	}
	for i := range sk.s2 {
		polyeta_pack(dst[off:], &sk.s2[i])
		off += polyeta_packed_bytes
	}
	for i := range sk.t0 {
		polyt0_pack(dst[off:], &sk.t0[i])
		off += polyt0_packed_bytes
	}
}

// Decode a secret key. The length and the range of the s1 and s2
// coefficients are checked; consistency with the public values is not
// (see check_secret_key()).
func decode_secret_key(sk *secret_key, src []byte) error {
	if len(src) != SecretKeyBytes {
		return fmt.Errorf("%w: secret key has length %d (expected %d)",
			ErrDecode, len(src), SecretKeyBytes)
	}
	buf := (*[SecretKeyBytes]byte)(src)
	copy(sk.rho[:], buf[0:])
	copy(sk.key[:], buf[SeedBytes:])
	copy(sk.tr[:], buf[2*SeedBytes:])
	off := 3 * SeedBytes
	ok := true
	for i := range sk.s1 {
		ok = polyeta_unpack(&sk.s1[i], buf[off:]) && ok
		off += polyeta_packed_bytes
	}
	for i := range sk.s2 {
		ok = polyeta_unpack(&sk.s2[i], buf[off:]) && ok
		off += polyeta_packed_bytes
	}
	for i := range sk.t0 {
		polyt0_unpack(&sk.t0[i], buf[off:])
		off += polyt0_packed_bytes
	}
	if !ok {
		return fmt.Errorf("%w: secret coefficient out of range", ErrDecode)
	}
	return nil
}

// Encode a signature: ctilde || z || h.
func encode_signature(dst *[SignBytes]byte, sg *signature) {
	copy(dst[:SeedBytes], sg.ctilde[:])
	off := SeedBytes
	for i := range sg.z {
		polyz_pack(dst[off:], &sg.z[i])
		off += polyz_packed_bytes
	}
	polyvech_pack(dst[off:], &sg.h)
}

// Decode a signature. The hint encoding is validated; the norm of z is
// checked by the verifier.
func decode_signature(sg *signature, src []byte) error {
	if len(src) != SignBytes {
		return fmt.Errorf("%w: signature has length %d (expected %d)",
			ErrDecode, len(src), SignBytes)
	}
	buf := (*[SignBytes]byte)(src)
	copy(sg.ctilde[:], buf[:SeedBytes])
	off := SeedBytes
	for i := range sg.z {
		polyz_unpack(&sg.z[i], buf[off:])
		off += polyz_packed_bytes
	}
	return polyvech_unpack(&sg.h, buf[off:])
}
