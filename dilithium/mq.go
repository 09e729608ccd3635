package dilithium

// Computations modulo q = 8380417 = 2^23 - 2^13 + 1.
//
// Values are kept in int32. Most intermediate values are not fully
// reduced: functions document the input and output ranges they accept
// and produce. Montgomery representation uses R = 2^32.

// q^(-1) mod 2^32
const q_inv = 58728449

// R^2/256 mod q, used to scale the output of the inverse NTT.
const mont_inv_n = 41978

// Montgomery reduction: for -2^31*q <= a <= 2^31*q, return r such that
// r = a/2^32 mod q, with -q < r < q.
func mq_montgomery_reduce(a int64) int32 {
	t := int32(a) * q_inv
	return int32((a - int64(t)*q) >> 32)
}

// Montgomery multiplication: return x*y/2^32 mod q, in (-q, q).
func mq_mmul(x int32, y int32) int32 {
	return mq_montgomery_reduce(int64(x) * int64(y))
}

// For a <= 2^31 - 2^22 - 1, return r = a mod q with
// -6283009 <= r <= 6283007.
func mq_reduce32(a int32) int32 {
	t := (a + (1 << 22)) >> 23
	return a - t*q
}

// Add q if a is negative.
func mq_caddq(a int32) int32 {
	return a + ((a >> 31) & q)
}

// Return the standard representative of a, in [0, q-1]. The input
// range is the same as for mq_reduce32().
func mq_freeze(a int32) int32 {
	return mq_caddq(mq_reduce32(a))
}
