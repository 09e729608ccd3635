package dilithium

import (
	"math"
	"testing"
)

// Deterministic test randomness: a SHAKE256 stream over a label and an
// index.
func test_stream(label string, idx int) *shake_stream {
	return new_shake256_stream([]byte(label), uint16(idx))
}

// Random value in [-(bound-1), bound-1].
func rand_coeff(st *shake_stream, bound int32) int32 {
	return int32(st.next_u64()%uint64(2*bound-1)) - (bound - 1)
}

func rand_poly(st *shake_stream, bound int32) (a poly) {
	for i := range a {
		a[i] = rand_coeff(st, bound)
	}
	return
}

// Standard representative of x modulo q.
func mod_q(x int64) int32 {
	x %= q
	if x < 0 {
		x += q
	}
	return int32(x)
}

// Multiplication in Z_q[X]/(X^n+1), the slow way.
func schoolbook_mul(a *poly, b *poly) (c poly) {
	var acc [n]int64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := (int64(a[i]) * int64(b[j])) % q
			if i+j < n {
				acc[i+j] += v
			} else {
				acc[i+j-n] -= v
			}
		}
	}
	for i := range c {
		c[i] = mod_q(acc[i])
	}
	return
}

func TestMqMontgomeryReduce(t *testing.T) {
	st := test_stream("montgomery", 0)
	for i := 0; i < 1000000; i++ {
		x := rand_coeff(st, q)
		y := rand_coeff(st, 1<<30)
		a := int64(x) * int64(y)
		r := mq_montgomery_reduce(a)
		if r <= -q || r >= q {
			t.Fatalf("ERR mq_montgomery_reduce: %d -> %d (out of range)\n", a, r)
		}
		if ((int64(r)<<32)-a)%q != 0 {
			t.Fatalf("ERR mq_montgomery_reduce: %d -> %d\n", a, r)
		}
	}
}

func TestMqReduce32(t *testing.T) {
	for a := int64(math.MinInt32); a <= math.MaxInt32-(1<<22)-1; a += 997 {
		r := mq_reduce32(int32(a))
		if r < -6283009 || r > 6283007 {
			t.Fatalf("ERR mq_reduce32: %d -> %d (out of range)\n", a, r)
		}
		if (int64(r)-a)%q != 0 {
			t.Fatalf("ERR mq_reduce32: %d -> %d\n", a, r)
		}
	}
}

func TestMqFreeze(t *testing.T) {
	for a := int64(math.MinInt32); a <= math.MaxInt32-(1<<22)-1; a += 1009 {
		r := mq_freeze(int32(a))
		if r != mod_q(a) {
			t.Fatalf("ERR mq_freeze: %d -> %d (exp: %d)\n", a, r, mod_q(a))
		}
	}
	for a := int32(-q + 1); a < q; a++ {
		if mq_caddq(a) != mod_q(int64(a)) {
			t.Fatalf("ERR mq_caddq: %d -> %d\n", a, mq_caddq(a))
		}
	}
}

func bit_reverse8(x int) int {
	r := 0
	for i := 0; i < 8; i++ {
		r = (r << 1) | ((x >> i) & 1)
	}
	return r
}

func TestZetas(t *testing.T) {
	r := int64(1) << 32 % q
	for i := 1; i < n; i++ {
		w := int64(1)
		for j := 0; j < bit_reverse8(i); j++ {
			w = (w * 1753) % q
		}
		exp := (w * r) % q
		if exp > (q-1)/2 {
			exp -= q
		}
		if int64(zetas[i]) != exp {
			t.Fatalf("ERR zetas[%d] = %d (exp: %d)\n", i, zetas[i], exp)
		}
	}
}

func TestMqPolyNTT(t *testing.T) {
	for j := 0; j < 10; j++ {
		st := test_stream("ntt", j)
		a := rand_poly(st, q)
		b := rand_poly(st, q)
		if j == 0 {
			// X^(n-1) * X = -1
			mqpoly_zero(&a)
			mqpoly_zero(&b)
			a[n-1] = 1
			b[1] = 1
		}
		exp := schoolbook_mul(&a, &b)
		var c poly
		mqpoly_mul(&c, &a, &b)
		if c != exp {
			t.Fatalf("ERR mqpoly_mul (j=%d)\n", j)
		}
	}
}

func TestMqPolyNTTRoundTrip(t *testing.T) {
	for j := 0; j < 10; j++ {
		st := test_stream("ntt-inv", j)
		a := rand_poly(st, q)
		b := a
		mqpoly_ntt(&b)
		mqpoly_reduce(&b)
		mqpoly_invntt_tomont(&b)
		for i := range b {
			x := mq_freeze(mq_montgomery_reduce(int64(b[i])))
			if x != mod_q(int64(a[i])) {
				t.Fatalf("ERR NTT round trip (j=%d, i=%d): %d (exp: %d)\n",
					j, i, x, mod_q(int64(a[i])))
			}
		}
	}
}

func TestMqPolyNormExceeds(t *testing.T) {
	var a poly
	a[17] = -99
	if mqpoly_norm_exceeds(&a, 100) {
		t.Fatalf("ERR norm: |-99| >= 100")
	}
	if !mqpoly_norm_exceeds(&a, 99) {
		t.Fatalf("ERR norm: |-99| < 99")
	}
	a[200] = 99
	if !mqpoly_norm_exceeds(&a, 99) {
		t.Fatalf("ERR norm: |99| < 99")
	}
	if !mqpoly_norm_exceeds(&a, (q-1)/8+1) {
		t.Fatalf("ERR norm: bound above (q-1)/8 must always fail")
	}
}

func TestMatrixAffine(t *testing.T) {
	st := test_stream("affine", 0)
	var mat matrix
	var rho [SeedBytes]byte
	st.read(rho[:])
	matrix_expand(&mat, rho[:])
	var s1 polyvec_l
	var s2 polyvec_k
	for i := range s1 {
		s1[i] = rand_poly(st, eta+1)
	}
	for i := range s2 {
		s2[i] = rand_poly(st, eta+1)
	}
	s1_orig := s1

	var tv polyvec_k
	matrix_affine(&tv, &mat, &s1, &s2)
	if s1 != s1_orig {
		t.Fatalf("ERR matrix_affine modified s1")
	}

	// Recompute with schoolbook products: A[i][j] is in NTT
	// representation, hence the inverse NTT (with Montgomery correction).
	for i := 0; i < k; i++ {
		var exp [n]int64
		for j := 0; j < l; j++ {
			aij := mat[i][j]
			mqpoly_invntt_tomont(&aij)
			for m := range aij {
				aij[m] = mq_montgomery_reduce(int64(aij[m]))
			}
			p := schoolbook_mul(&aij, &s1[j])
			for m := range p {
				exp[m] += int64(p[m])
			}
		}
		for m := 0; m < n; m++ {
			e := mod_q(exp[m] + int64(s2[i][m]))
			if tv[i][m] != e {
				t.Fatalf("ERR matrix_affine (i=%d, m=%d): %d (exp: %d)\n",
					i, m, tv[i][m], e)
			}
		}
	}
}
