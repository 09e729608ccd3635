package dilithium

// Vectors of polynomials, of length l and k, and the k*l public matrix
// (stored row by row).
type polyvec_l [l]poly
type polyvec_k [k]poly
type matrix [k]polyvec_l

func polyvec_l_ntt(v *polyvec_l) {
	for i := range v {
		mqpoly_ntt(&v[i])
	}
}

func polyvec_l_invntt_tomont(v *polyvec_l) {
	for i := range v {
		mqpoly_invntt_tomont(&v[i])
	}
}

func polyvec_l_add(w *polyvec_l, v *polyvec_l) {
	for i := range w {
		mqpoly_add(&w[i], &v[i])
	}
}

func polyvec_l_reduce(v *polyvec_l) {
	for i := range v {
		mqpoly_reduce(&v[i])
	}
}

// r[i] <- a*v[i] (NTT representation, Montgomery multiplication).
func polyvec_l_pointwise_poly(r *polyvec_l, a *poly, v *polyvec_l) {
	for i := range r {
		mqpoly_pointwise(&r[i], a, &v[i])
	}
}

// Return true if the infinity norm of any polynomial of v reaches bound.
func polyvec_l_norm_exceeds(v *polyvec_l, bound int32) bool {
	for i := range v {
		if mqpoly_norm_exceeds(&v[i], bound) {
			return true
		}
	}
	return false
}

func polyvec_k_ntt(v *polyvec_k) {
	for i := range v {
		mqpoly_ntt(&v[i])
	}
}

func polyvec_k_invntt_tomont(v *polyvec_k) {
	for i := range v {
		mqpoly_invntt_tomont(&v[i])
	}
}

func polyvec_k_add(w *polyvec_k, v *polyvec_k) {
	for i := range w {
		mqpoly_add(&w[i], &v[i])
	}
}

func polyvec_k_sub(w *polyvec_k, v *polyvec_k) {
	for i := range w {
		mqpoly_sub(&w[i], &v[i])
	}
}

func polyvec_k_shiftl(v *polyvec_k) {
	for i := range v {
		mqpoly_shiftl(&v[i])
	}
}

func polyvec_k_reduce(v *polyvec_k) {
	for i := range v {
		mqpoly_reduce(&v[i])
	}
}

func polyvec_k_caddq(v *polyvec_k) {
	for i := range v {
		mqpoly_caddq(&v[i])
	}
}

func polyvec_k_freeze(v *polyvec_k) {
	for i := range v {
		mqpoly_freeze(&v[i])
	}
}

func polyvec_k_pointwise_poly(r *polyvec_k, a *poly, v *polyvec_k) {
	for i := range r {
		mqpoly_pointwise(&r[i], a, &v[i])
	}
}

func polyvec_k_norm_exceeds(v *polyvec_k, bound int32) bool {
	for i := range v {
		if mqpoly_norm_exceeds(&v[i], bound) {
			return true
		}
	}
	return false
}

// v1 <- high bits, v0 <- low bits of v1 (see power2round()).
func polyvec_k_power2round(v1 *polyvec_k, v0 *polyvec_k) {
	for i := range v1 {
		mqpoly_power2round(&v1[i], &v0[i])
	}
}

// v1 <- high part, v0 <- low part of v1 (see decompose()).
func polyvec_k_decompose(v1 *polyvec_k, v0 *polyvec_k) {
	for i := range v1 {
		mqpoly_decompose(&v1[i], &v0[i])
	}
}

// Compute the hint vector; the total number of set bits is returned.
func polyvec_k_make_hint(h *polyvec_k, v0 *polyvec_k, v1 *polyvec_k) int {
	s := 0
	for i := range h {
		s += mqpoly_make_hint(&h[i], &v0[i], &v1[i])
	}
	return s
}

func polyvec_k_use_hint(w *polyvec_k, h *polyvec_k) {
	for i := range w {
		mqpoly_use_hint(&w[i], &h[i])
	}
}

// Inner product of u and v in NTT representation, with Montgomery
// multiplication: w <- sum_i u[i]*v[i]/2^32. Output coefficients are
// lower than 2*l*q in absolute value.
func polyvec_l_dot(w *poly, u *polyvec_l, v *polyvec_l) {
	var t poly
	mqpoly_pointwise(w, &u[0], &v[0])
	for i := 1; i < l; i++ {
		mqpoly_pointwise(&t, &u[i], &v[i])
		mqpoly_add(w, &t)
	}
}

// t <- A*v, with A and v in NTT representation (the result is also in
// NTT representation, not reduced).
func matrix_mul_ntt(t *polyvec_k, mat *matrix, v *polyvec_l) {
	for i := range t {
		polyvec_l_dot(&t[i], &mat[i], v)
	}
}

// Compute t = A*s1 + s2, with standard representatives in the output.
// A is in NTT representation; s1 and s2 are in coefficient
// representation and are left unchanged.
func matrix_affine(t *polyvec_k, mat *matrix, s1 *polyvec_l, s2 *polyvec_k) {
	s1hat := *s1
	polyvec_l_ntt(&s1hat)
	matrix_mul_ntt(t, mat, &s1hat)
	polyvec_k_reduce(t)
	polyvec_k_invntt_tomont(t)
	polyvec_k_add(t, s2)
	polyvec_k_freeze(t)
}
