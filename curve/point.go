// Package curve implements affine short-Weierstrass points on Eb: y^2 = x^3 + b.
//
// Only affine coordinates are represented; h' performs its single
// intermediate projective step inline with bare *big.Int triples rather
// than through a reusable projective point type, since nothing else in
// this library needs one (see DESIGN.md, "Resolved ambiguity 1").
package curve

import "math/big"

// Point is an affine point on Eb(Fq), or the distinguished point at
// infinity when Infinity is true (X, Y are then meaningless).
type Point struct {
	X, Y     *big.Int
	Infinity bool
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{Infinity: true}
}

// NewUnchecked builds an affine point from raw coordinates with no
// on-curve validation, per spec.md §6's "affine-point constructor that
// accepts raw coordinates without on-curve validation."
func NewUnchecked(x, y *big.Int) Point {
	return Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + b mod q. Used by the
// tests and by the curve packages' init()-time generator check; the
// hash-to-curve path itself never calls it.
func IsOnCurve(q *big.Int, b *big.Int, p Point) bool {
	if p.Infinity {
		return true
	}
	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, q)

	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, b)
	rhs.Mod(rhs, q)

	return lhs.Cmp(rhs) == 0
}

// Equal reports whether p and o are the same affine point (or both the
// point at infinity).
func (p Point) Equal(o Point) bool {
	if p.Infinity || o.Infinity {
		return p.Infinity == o.Infinity
	}
	return p.X.Cmp(o.X) == 0 && p.Y.Cmp(o.Y) == 0
}
