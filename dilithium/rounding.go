package dilithium

// For a standard representative a, compute a1 and a0 such that
// a = a1*2^d + a0 with -2^(d-1) < a0 <= 2^(d-1).
func power2round(a int32) (a1 int32, a0 int32) {
	a1 = (a + (1 << (d - 1)) - 1) >> d
	a0 = a - (a1 << d)
	return
}

// For a standard representative a, compute high and low parts a1 and
// a0 such that a = a1*(2*gamma2) + a0 mod q with -gamma2 < a0 <= gamma2,
// except when a1 would be (q-1)/(2*gamma2): then a1 is set to 0 and
// -gamma2 <= a0 = a - q < 0. High parts are in [0, 15]. No branch
// depends on the value of a.
func decompose(a int32) (a1 int32, a0 int32) {
	a1 = (a + 127) >> 7
	a1 = (a1*1025 + (1 << 21)) >> 22
	a1 &= 15
	a0 = a - a1*2*gamma2
	a0 -= (((q-1)/2 - a0) >> 31) & q
	return
}

// Return 1 if the low part a0 overflows into the high part a1, i.e. if
// adding a0 changes the high bits; 0 otherwise.
func make_hint(a0 int32, a1 int32) int32 {
	if a0 > gamma2 || a0 < -gamma2 || (a0 == -gamma2 && a1 != 0) {
		return 1
	}
	return 0
}

// Return the high part of a (standard representative), corrected
// according to the hint bit.
func use_hint(a int32, hint int32) int32 {
	a1, a0 := decompose(a)
	if hint == 0 {
		return a1
	}
	if a0 > 0 {
		return (a1 + 1) & 15
	}
	return (a1 - 1) & 15
}
