// Package ihc implements the curve-generic core of the indifferentiable
// hash-to-curve construction: the field hash eta, the rational map phi,
// and the hash_to_curve/hash_to_curve_unchecked orchestration with its
// degenerate-case fast paths. Only h' (HPrime) differs between curves;
// callers supply it as a function value on Params, per spec.md §9's
// "trait/polymorphism re-architecture" design note translated from a
// Rust capability trait into a Go struct-of-function-values.
package ihc

import (
	"crypto/sha512"
	"math/big"

	"github.com/eth2030/ihashcurve/curve"
	"github.com/eth2030/ihashcurve/field"
)

// HPrimeFunc computes the auxiliary map h' from a point on the
// Calabi-Yau threefold T(Fq) (given as (n0, n1, n2, d) plus the eta
// coordinates (t1, t2) it was derived from) to an affine point of
// Eb(Fq). Preconditions: d != 0 and (n0, n1, n2) not simultaneously
// zero. HashToCurve returns early on d == 0 (and on s1s2 == 0) but does
// not test (n0, n1, n2) itself; HashToCurveUnchecked tests neither.
type HPrimeFunc func(p *Params, n0, n1, n2, d, t1, t2 *big.Int) curve.Point

// Params bundles one curve's field, curve coefficient, and the
// hash-to-curve constants M, W, Z, C, SB (spec.md §3), plus the
// generator returned on the d=0 degenerate path and the HPrime variant
// for this curve.
type Params struct {
	Field *field.Field

	B *big.Int // curve coefficient: Eb: y^2 = x^3 + B
	// PhiB is the "b" parameter phi itself is called with. For
	// BLS12-381 this equals B. For BLS12-377 it does NOT equal B (which
	// is 1): the call site supplies W instead, see DESIGN.md "Resolved
	// ambiguity 2 — phi substitution for BLS12-377".
	PhiB *big.Int
	M    *big.Int // cube/ninth-root exponent
	W    *big.Int // primitive cube root of unity
	Z    *big.Int // primitive 9th root of unity (zero sentinel on BLS12-377)
	C    *big.Int // cube root of b/Z (BLS12-381 only; unused on BLS12-377)
	SB   *big.Int // square root of b

	Generator curve.Point // canonical G1 generator, returned on the d=0 degenerate path

	HPrime HPrimeFunc
}

// Eta is the field hash: input bytes to (t1, t2) in Fq^2. s0 = input||'0',
// s1 = input||'1'; t_i = Fq.from_be_bytes_mod_order(SHA-512(s_i)).
// Spec.md §4.2.
func Eta(p *Params, input []byte) (t1, t2 *big.Int) {
	s0 := append(append([]byte{}, input...), '0')
	s1 := append(append([]byte{}, input...), '1')

	h0 := sha512.Sum512(s0)
	h1 := sha512.Sum512(s1)

	t1 = p.Field.Elem(new(big.Int).SetBytes(h0[:]))
	t2 = p.Field.Elem(new(big.Int).SetBytes(h1[:]))
	return t1, t2
}

// Phi is the shared rational parametrization of the Calabi-Yau
// threefold T, per spec.md §4.3. b and sb are passed explicitly rather
// than read off Params.B/Params.SB directly: BLS12-377's call site
// supplies b = Params.W (not Params.B), see DESIGN.md "Resolved
// ambiguity 2 — phi substitution for BLS12-377". BLS12-381 supplies
// b = Params.B, sb = Params.SB, matching spec.md's prose literally.
func Phi(f *field.Field, b, sb, t1, t2 *big.Int) (n0, n1, n2, d, s1s2 *big.Int) {
	s1 := f.Mul(f.Mul(t1, t1), t1)
	s2 := f.Mul(f.Mul(t2, t2), t2)

	b2 := f.Sqr(b)
	b3 := f.Mul(b2, b)
	b4 := f.Sqr(b2)

	a20 := f.Mul(b2, f.Sqr(s1))
	a11 := f.Mul(big.NewInt(2), f.Mul(b3, f.Mul(s1, s2)))
	a10 := f.Mul(big.NewInt(2), f.Mul(b, s1))
	a02 := f.Mul(b4, f.Sqr(s2))
	a01 := f.Mul(big.NewInt(2), f.Mul(b2, s2))

	three := big.NewInt(3)
	one := big.NewInt(1)

	// n0 = sb*(a20 - a11 + a10 + a02 + a01 - 3)
	acc := f.Sub(a20, a11)
	acc = f.Add(acc, a10)
	acc = f.Add(acc, a02)
	acc = f.Add(acc, a01)
	acc = f.Sub(acc, three)
	n0 = f.Mul(sb, acc)

	// n1 = sb*(-3*a20 + a11 + a10 + a02 - a01 + 1)
	acc = f.Mul(f.Neg(three), a20)
	acc = f.Add(acc, a11)
	acc = f.Add(acc, a10)
	acc = f.Add(acc, a02)
	acc = f.Sub(acc, a01)
	acc = f.Add(acc, one)
	n1 = f.Mul(sb, acc)

	// n2 = sb*(a20 + a11 - a10 - 3*a02 + a01 + 1)
	acc = f.Add(a20, a11)
	acc = f.Sub(acc, a10)
	acc = f.Sub(acc, f.Mul(three, a02))
	acc = f.Add(acc, a01)
	acc = f.Add(acc, one)
	n2 = f.Mul(sb, acc)

	// d = a20 - a11 - a10 + a02 - a01 + 1
	acc = f.Sub(a20, a11)
	acc = f.Sub(acc, a10)
	acc = f.Add(acc, a02)
	acc = f.Sub(acc, a01)
	acc = f.Add(acc, one)
	d = acc

	s1s2 = f.Mul(s1, s2)
	return n0, n1, n2, d, s1s2
}

// HashToCurve is the total map bytes -> Eb(Fq): eta, then phi, then the
// degenerate-case fast paths, then h' (spec.md §4.1).
func HashToCurve(p *Params, input []byte) curve.Point {
	t1, t2 := Eta(p, input)
	n0, n1, n2, d, s1s2 := Phi(p.Field, p.PhiB, p.SB, t1, t2)

	if s1s2.Sign() == 0 {
		return curve.Identity()
	}
	if d.Sign() == 0 {
		return p.Generator
	}
	return p.HPrime(p, n0, n1, n2, d, t1, t2)
}

// HashToCurveUnchecked skips the degenerate-case check and always calls
// h'. Used for benchmarking and for test vectors known to be
// well-behaved; UB (per spec.md §4.1) on inputs that would otherwise
// hit a degenerate branch.
func HashToCurveUnchecked(p *Params, input []byte) curve.Point {
	t1, t2 := Eta(p, input)
	n0, n1, n2, d, _ := Phi(p.Field, p.PhiB, p.SB, t1, t2)
	return p.HPrime(p, n0, n1, n2, d, t1, t2)
}

// CanonicalCubeRoot applies the canonical cube-root selector to theta,
// returning the representative of {theta, W*theta, W^2*theta} chosen by
// the strict total order on Fq's canonical non-negative residues
// (spec.md §4.4.1 "Canonical cube-root selector W_zeta", §9).
func CanonicalCubeRoot(p *Params, theta, t1 *big.Int) *big.Int {
	f := p.Field
	wz := theta
	wt1 := f.Mul(p.W, t1)
	w2t1 := f.Mul(p.W, wt1)
	if f.Cmp(t1, wt1) > 0 {
		wz = f.Mul(wz, p.W)
	}
	if f.Cmp(t1, w2t1) > 0 {
		wz = f.Mul(wz, p.W)
	}
	return wz
}
