package dilithium

import (
	sha3 "golang.org/x/crypto/sha3"
)

// Parameter set: Dilithium3 (round 3, SHAKE variant). There is a single
// compiled parameter set; every size below is a compile-time constant.
const (
	n      = 256
	q      = 8380417
	d      = 13
	k      = 6
	l      = 5
	eta    = 4
	tau    = 49
	beta   = tau * eta
	gamma1 = 1 << 19
	gamma2 = (q - 1) / 32
	omega  = 55

	crh_bytes = 64

	polyt1_packed_bytes   = 320
	polyt0_packed_bytes   = 416
	polyeta_packed_bytes  = 128
	polyz_packed_bytes    = 640
	polyw1_packed_bytes   = 128
	polyvech_packed_bytes = omega + k
)

// Size (in bytes) of the seeds used for key generation, matrix expansion
// and the challenge hash.
const SeedBytes = 32

// Size (in bytes) of an encoded public key.
const PublicKeyBytes = SeedBytes + k*polyt1_packed_bytes

// Size (in bytes) of an encoded secret key.
const SecretKeyBytes = 3*SeedBytes +
	l*polyeta_packed_bytes + k*polyeta_packed_bytes + k*polyt0_packed_bytes

// Size (in bytes) of a signature.
const SignBytes = SeedBytes + l*polyz_packed_bytes + polyvech_packed_bytes

// SHAKE rates, in bytes.
const (
	shake128_rate = 168
	shake256_rate = 136
)

// Compute SHAKE256 over the concatenation of the provided parts, and
// fill dst with the output.
func shake256_sum(dst []byte, parts ...[]byte) {
	sh := sha3.NewShake256()
	for _, p := range parts {
		sh.Write(p)
	}
	sh.Read(dst)
}

// A buffered SHAKE output stream. A new stream is created for each
// sampling operation and is never shared between calls; the underlying
// XOF is squeezed again whenever the buffer is exhausted, so the stream
// never runs out.
type shake_stream struct {
	sh  sha3.ShakeHash
	buf [shake128_rate]byte
	len int
	ptr int
}

// Create a stream over an already absorbed SHAKE instance; rate is the
// number of bytes obtained per refill.
func new_shake_stream(sh sha3.ShakeHash, rate int) *shake_stream {
	s := new(shake_stream)
	s.sh = sh
	s.len = rate
	s.ptr = rate
	return s
}

// Create a SHAKE128 stream over seed || nonce (nonce over two bytes,
// little-endian).
func new_shake128_stream(seed []byte, nonce uint16) *shake_stream {
	sh := sha3.NewShake128()
	sh.Write(seed)
	sh.Write([]byte{uint8(nonce), uint8(nonce >> 8)})
	return new_shake_stream(sh, shake128_rate)
}

// Create a SHAKE256 stream over seed || nonce (nonce over two bytes,
// little-endian).
func new_shake256_stream(seed []byte, nonce uint16) *shake_stream {
	sh := sha3.NewShake256()
	sh.Write(seed)
	sh.Write([]byte{uint8(nonce), uint8(nonce >> 8)})
	return new_shake_stream(sh, shake256_rate)
}

// Get next byte from the stream.
func (s *shake_stream) next_u8() uint8 {
	if s.ptr == s.len {
		s.refill()
	}
	x := s.buf[s.ptr]
	s.ptr++
	return x
}

// Get next 64-bit value (little-endian) from the stream.
func (s *shake_stream) next_u64() uint64 {
	x := uint64(0)
	for i := 0; i < 8; i++ {
		x |= uint64(s.next_u8()) << (i << 3)
	}
	return x
}

// Fill dst with the next bytes from the stream.
func (s *shake_stream) read(dst []byte) {
	for len(dst) > 0 {
		if s.ptr == s.len {
			s.refill()
		}
		j := copy(dst, s.buf[s.ptr:s.len])
		s.ptr += j
		dst = dst[j:]
	}
}

func (s *shake_stream) refill() {
	s.sh.Read(s.buf[:s.len])
	s.ptr = 0
}
