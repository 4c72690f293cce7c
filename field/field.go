// Package field implements prime-field arithmetic over an arbitrary modulus.
//
// BLS12-377 and BLS12-381 each need the same set of operations over a
// different base-field modulus, so this generalizes the teacher's
// fixed-modulus bls12381_fp.go free functions into a modulus-carrying
// receiver shared by both curves.
package field

import "math/big"

// Field is a prime field Fq for a given modulus q.
type Field struct {
	Q *big.Int
}

// New returns the field Fq.
func New(q *big.Int) *Field {
	return &Field{Q: new(big.Int).Set(q)}
}

// Elem reduces n modulo q and returns it as a field element.
func (f *Field) Elem(n *big.Int) *big.Int {
	r := new(big.Int).Mod(n, f.Q)
	return r
}

// Add returns (a + b) mod q.
func (f *Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.Q)
}

// Sub returns (a - b) mod q.
func (f *Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.Q)
}

// Mul returns (a * b) mod q.
func (f *Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.Q)
}

// Neg returns (-a) mod q.
func (f *Field) Neg(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Sub(f.Q, new(big.Int).Mod(a, f.Q))
}

// Inv returns a^(-1) mod q. Panics if a is zero mod q, since a zero
// denominator at this layer signals a caller bug, not a recoverable
// field condition (see the degenerate-case checks in ihc.HashToCurve).
func (f *Field) Inv(a *big.Int) *big.Int {
	r := new(big.Int).Mod(a, f.Q)
	if r.Sign() == 0 {
		panic("field: inverse of zero")
	}
	return new(big.Int).ModInverse(r, f.Q)
}

// Sqr returns a^2 mod q.
func (f *Field) Sqr(a *big.Int) *big.Int {
	r := new(big.Int).Mul(a, a)
	return r.Mod(r, f.Q)
}

// Exp returns a^e mod q.
func (f *Field) Exp(a, e *big.Int) *big.Int {
	return new(big.Int).Exp(a, e, f.Q)
}

// Sqrt returns a square root of a mod q, or nil if a is not a square.
// Uses the Tonelli-Shanks shortcut for q = 3 mod 4; falls back to full
// Tonelli-Shanks otherwise (needed for BLS12-377's base field, where
// q = 1 mod 8).
func (f *Field) Sqrt(a *big.Int) *big.Int {
	q := f.Q
	if a.Sign() == 0 {
		return new(big.Int)
	}
	if !f.IsSquare(a) {
		return nil
	}

	mod4 := new(big.Int).Mod(q, big.NewInt(4))
	if mod4.Cmp(big.NewInt(3)) == 0 {
		exp := new(big.Int).Add(q, big.NewInt(1))
		exp.Rsh(exp, 2)
		r := f.Exp(a, exp)
		if f.Sqr(r).Cmp(f.Elem(a)) != 0 {
			return nil
		}
		return r
	}
	return f.tonelliShanks(a)
}

// tonelliShanks solves x^2 = a mod q for q = 1 mod 4, by factoring
// q-1 = s*2^e with s odd and lifting a candidate root through e rounds.
func (f *Field) tonelliShanks(a *big.Int) *big.Int {
	q := f.Q
	one := big.NewInt(1)

	qMinus1 := new(big.Int).Sub(q, one)
	s := new(big.Int).Set(qMinus1)
	e := 0
	for s.Bit(0) == 0 {
		s.Rsh(s, 1)
		e++
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for f.IsSquare(z) {
		z = new(big.Int).Add(z, one)
	}

	m := e
	c := f.Exp(z, s)
	t := f.Exp(a, s)
	sPlus1Over2 := new(big.Int).Add(s, one)
	sPlus1Over2.Rsh(sPlus1Over2, 1)
	r := f.Exp(a, sPlus1Over2)

	for t.Cmp(one) != 0 {
		// Find least i, 0 < i < m, such that t^(2^i) == 1.
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt = f.Sqr(tt)
			i++
			if i == m {
				return nil
			}
		}

		b := c
		for j := 0; j < m-i-1; j++ {
			b = f.Sqr(b)
		}
		m = i
		c = f.Sqr(b)
		t = f.Mul(t, c)
		r = f.Mul(r, b)
	}
	return r
}

// IsSquare reports whether a is a quadratic residue mod q, via Euler's
// criterion.
func (f *Field) IsSquare(a *big.Int) bool {
	if a.Sign() == 0 || new(big.Int).Mod(a, f.Q).Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(f.Q, big.NewInt(1))
	exp.Rsh(exp, 1)
	r := f.Exp(a, exp)
	return r.Cmp(big.NewInt(1)) == 0
}

// Equal reports whether a and b are congruent mod q.
func (f *Field) Equal(a, b *big.Int) bool {
	return f.Elem(a).Cmp(f.Elem(b)) == 0
}

// Cmp compares the canonical (non-negative, reduced) residues of a and b,
// returning -1, 0, or +1. Used by the canonical cube-root selector, which
// needs a total order on Fq.
func (f *Field) Cmp(a, b *big.Int) int {
	return f.Elem(a).Cmp(f.Elem(b))
}
