package dilithium

// A polynomial in Z_q[X]/(X^n+1). The same type holds both the
// coefficient and the NTT representations; functions document which
// one they expect.
type poly [n]int32

// Powers of the 512-th root of unity 1753, in Montgomery representation
// and bit-reversed order, centered around zero:
//
//	zetas[i] = 1753^brv(i) * 2^32 mod q
//
// zetas[0] is not used.
var zetas = [n]int32{
	0, 25847, -2608894, -518909, 237124, -777960, -876248, 466468,
	1826347, 2353451, -359251, -2091905, 3119733, -2884855, 3111497, 2680103,
	2725464, 1024112, -1079900, 3585928, -549488, -1119584, 2619752, -2108549,
	-2118186, -3859737, -1399561, -3277672, 1757237, -19422, 4010497, 280005,
	2706023, 95776, 3077325, 3530437, -1661693, -3592148, -2537516, 3915439,
	-3861115, -3043716, 3574422, -2867647, 3539968, -300467, 2348700, -539299,
	-1699267, -1643818, 3505694, -3821735, 3507263, -2140649, -1600420, 3699596,
	811944, 531354, 954230, 3881043, 3900724, -2556880, 2071892, -2797779,
	-3930395, -1528703, -3677745, -3041255, -1452451, 3475950, 2176455, -1585221,
	-1257611, 1939314, -4083598, -1000202, -3190144, -3157330, -3632928, 126922,
	3412210, -983419, 2147896, 2715295, -2967645, -3693493, -411027, -2477047,
	-671102, -1228525, -22981, -1308169, -381987, 1349076, 1852771, -1430430,
	-3343383, 264944, 508951, 3097992, 44288, -1100098, 904516, 3958618,
	-3724342, -8578, 1653064, -3249728, 2389356, -210977, 759969, -1316856,
	189548, -3553272, 3159746, -1851402, -2409325, -177440, 1315589, 1341330,
	1285669, -1584928, -812732, -1439742, -3019102, -3881060, -3628969, 3839961,
	2091667, 3407706, 2316500, 3817976, -3342478, 2244091, -2446433, -3562462,
	266997, 2434439, -1235728, 3513181, -3520352, -3759364, -1197226, -3193378,
	900702, 1859098, 909542, 819034, 495491, -1613174, -43260, -522500,
	-655327, -3122442, 2031748, 3207046, -3556995, -525098, -768622, -3595838,
	342297, 286988, -2437823, 4108315, 3437287, -3342277, 1735879, 203044,
	2842341, 2691481, -2590150, 1265009, 4055324, 1247620, 2486353, 1595974,
	-3767016, 1250494, 2635921, -3548272, -2994039, 1869119, 1903435, -1050970,
	-1333058, 1237275, -3318210, -1430225, -451100, 1312455, 3306115, -1962642,
	-1279661, 1917081, -2546312, -1374803, 1500165, 777191, 2235880, 3406031,
	-542412, -2831860, -1671176, -1846953, -2584293, -3724270, 594136, -3776993,
	-2013608, 2432395, 2454455, -164721, 1957272, 3369112, 185531, -1207385,
	-3183426, 162844, 1616392, 3014001, 810149, 1652634, -3694233, -1799107,
	-3038916, 3523897, 3866901, 269760, 2213111, -975884, 1717735, 472078,
	-426683, 1723600, -1803090, 1910376, -1667432, -1104333, -260646, -3833893,
	-2939036, -2235985, -420899, -2286327, 183443, -976891, 1612842, -3545687,
	-554416, 3919660, -48306, -1362209, 3937738, 1400424, -846154, 1976782,
}

// Set all coefficients to zero.
func mqpoly_zero(a *poly) {
	for i := range a {
		a[i] = 0
	}
}

// a <- a + b (no reduction).
func mqpoly_add(a *poly, b *poly) {
	for i := range a {
		a[i] += b[i]
	}
}

// a <- a - b (no reduction). Coefficients of b must be lower than 2*q
// in absolute value.
func mqpoly_sub(a *poly, b *poly) {
	for i := range a {
		a[i] -= b[i]
	}
}

// Multiply by 2^d, without reduction. Input coefficients must be lower
// than 2^(31-d).
func mqpoly_shiftl(a *poly) {
	for i := range a {
		a[i] <<= d
	}
}

// Reduce all coefficients into [-6283009, 6283007].
func mqpoly_reduce(a *poly) {
	for i := range a {
		a[i] = mq_reduce32(a[i])
	}
}

// Add q to all negative coefficients.
func mqpoly_caddq(a *poly) {
	for i := range a {
		a[i] = mq_caddq(a[i])
	}
}

// Convert all coefficients to their standard representative in [0, q-1].
func mqpoly_freeze(a *poly) {
	for i := range a {
		a[i] = mq_freeze(a[i])
	}
}

// Forward NTT, in place. Output is in bit-reversed order. Output
// coefficients can be up to 16*q larger (in absolute value) than the
// input coefficients.
func mqpoly_ntt(a *poly) {
	j := 0
	m := 0
	for t := n >> 1; t > 0; t >>= 1 {
		for start := 0; start < n; start = j + t {
			m++
			zeta := int64(zetas[m])
			for j = start; j < start+t; j++ {
				x := mq_montgomery_reduce(zeta * int64(a[j+t]))
				a[j+t] = a[j] - x
				a[j] = a[j] + x
			}
		}
	}
}

// Inverse NTT, in place, with multiplication by the Montgomery factor
// 2^32. Input coefficients must be lower than q in absolute value;
// output coefficients are lower than q in absolute value.
func mqpoly_invntt_tomont(a *poly) {
	j := 0
	m := n
	for t := 1; t < n; t <<= 1 {
		for start := 0; start < n; start = j + t {
			m--
			zeta := -int64(zetas[m])
			for j = start; j < start+t; j++ {
				x := a[j]
				a[j] = x + a[j+t]
				a[j+t] = x - a[j+t]
				a[j+t] = mq_montgomery_reduce(zeta * int64(a[j+t]))
			}
		}
	}
	for i := range a {
		a[i] = mq_montgomery_reduce(mont_inv_n * int64(a[i]))
	}
}

// c <- a*b/2^32, coefficient-wise (NTT representation). c may alias a
// or b. Output coefficients are lower than q in absolute value if input
// coefficients are lower than 22*q.
func mqpoly_pointwise(c *poly, a *poly, b *poly) {
	for i := range c {
		c[i] = mq_mmul(a[i], b[i])
	}
}

// Full multiplication in the ring: c <- a*b, with both operands and the
// result in coefficient representation, and the result in [0, q-1].
// Operands are converted to NTT representation, multiplied pointwise,
// then converted back. Input coefficients must be lower than q in
// absolute value.
func mqpoly_mul(c *poly, a *poly, b *poly) {
	var ta, tb poly
	ta = *a
	tb = *b
	mqpoly_ntt(&ta)
	mqpoly_ntt(&tb)
	mqpoly_pointwise(c, &ta, &tb)
	mqpoly_invntt_tomont(c)
	mqpoly_freeze(c)
}

// Return true if the infinity norm of a is at least bound, false
// otherwise. Input coefficients must be reduced with mq_reduce32().
// The index of a violating coefficient may leak through timing (the
// probability of a violation is independent of secret data), but the
// sign of the centered representative never does.
func mqpoly_norm_exceeds(a *poly, bound int32) bool {
	if bound > (q-1)/8 {
		return true
	}
	for i := range a {
		t := a[i] >> 31
		t = a[i] - (t & (2 * a[i]))
		if t >= bound {
			return true
		}
	}
	return false
}

// Split each coefficient of a (standard representative) into high and
// low bits: a1 <- high bits, a0 <- low bits (see power2round()).
func mqpoly_power2round(a1 *poly, a0 *poly) {
	for i := range a1 {
		a1[i], a0[i] = power2round(a1[i])
	}
}

// Decompose each coefficient of a (standard representative) into high
// and low parts relative to 2*gamma2 (see decompose()).
func mqpoly_decompose(a1 *poly, a0 *poly) {
	for i := range a1 {
		a1[i], a0[i] = decompose(a1[i])
	}
}

// Compute the hint polynomial for low bits a0 and high bits a1. The
// number of set hint bits is returned.
func mqpoly_make_hint(h *poly, a0 *poly, a1 *poly) int {
	s := 0
	for i := range h {
		h[i] = make_hint(a0[i], a1[i])
		s += int(h[i])
	}
	return s
}

// Replace each coefficient of b (standard representative) with its
// high bits, corrected according to hint h.
func mqpoly_use_hint(b *poly, h *poly) {
	for i := range b {
		b[i] = use_hint(b[i], h[i])
	}
}
