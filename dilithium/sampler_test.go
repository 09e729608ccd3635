package dilithium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyUniform(t *testing.T) {
	var rho [SeedBytes]byte
	test_stream("uniform", 0).read(rho[:])
	var a, b, c poly
	poly_uniform(&a, rho[:], 0x0102)
	poly_uniform(&b, rho[:], 0x0102)
	poly_uniform(&c, rho[:], 0x0201)
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	for i := range a {
		if a[i] < 0 || a[i] >= q {
			t.Fatalf("ERR poly_uniform: coefficient %d = %d\n", i, a[i])
		}
	}
}

func TestPolyUniformEta(t *testing.T) {
	var seed [crh_bytes]byte
	test_stream("eta", 0).read(seed[:])
	var count [2*eta + 1]int
	for nonce := uint16(0); nonce < 32; nonce++ {
		var a poly
		poly_uniform_eta(&a, seed[:], nonce)
		for i := range a {
			if a[i] < -eta || a[i] > eta {
				t.Fatalf("ERR poly_uniform_eta: coefficient %d = %d\n", i, a[i])
			}
			count[a[i]+eta]++
		}
	}
	// 8192 samples over 9 values: each value appears about 910 times.
	for v, c := range count {
		assert.Greaterf(t, c, 700, "value %d", v-eta)
		assert.Lessf(t, c, 1120, "value %d", v-eta)
	}
}

func TestPolyUniformGamma1(t *testing.T) {
	var seed [crh_bytes]byte
	test_stream("gamma1", 0).read(seed[:])
	var y polyvec_l
	polyvec_l_uniform_gamma1(&y, seed[:], 3)
	for i := range y {
		for j := range y[i] {
			if y[i][j] <= -gamma1 || y[i][j] > gamma1 {
				t.Fatalf("ERR poly_uniform_gamma1: y[%d][%d] = %d\n",
					i, j, y[i][j])
			}
		}
	}

	// Attempt kappa uses nonces l*kappa to l*kappa+l-1.
	var a poly
	poly_uniform_gamma1(&a, seed[:], 3*l+2)
	assert.Equal(t, a, y[2])
}

func TestPolyChallenge(t *testing.T) {
	for j := 0; j < 100; j++ {
		var ctilde [SeedBytes]byte
		test_stream("challenge", j).read(ctilde[:])
		var c, c2 poly
		poly_challenge(&c, ctilde[:])
		poly_challenge(&c2, ctilde[:])
		require.Equal(t, c, c2)
		w := 0
		for i := range c {
			switch c[i] {
			case 0:
			case 1, -1:
				w++
			default:
				t.Fatalf("ERR poly_challenge: coefficient %d = %d\n", i, c[i])
			}
		}
		require.Equal(t, tau, w)
	}
}

func TestMatrixExpand(t *testing.T) {
	var rho [SeedBytes]byte
	test_stream("expand", 0).read(rho[:])
	mat := new(matrix)
	matrix_expand(mat, rho[:])
	var a poly
	poly_uniform(&a, rho[:], (3<<8)+4)
	assert.Equal(t, a, mat[3][4])
	assert.NotEqual(t, mat[0][1], mat[1][0])
}

func TestShakeStream(t *testing.T) {
	// Reading byte by byte and in bulk yields the same output, across
	// several refills.
	st1 := test_stream("stream", 7)
	st2 := test_stream("stream", 7)
	buf1 := make([]byte, 1000)
	buf2 := make([]byte, 1000)
	for i := range buf1 {
		buf1[i] = st1.next_u8()
	}
	st2.read(buf2[:10])
	st2.read(buf2[10:])
	assert.Equal(t, buf1, buf2)

	var ref [1000]byte
	shake256_sum(ref[:], []byte("stream"), []byte{7, 0})
	assert.Equal(t, ref[:], buf1)
}
