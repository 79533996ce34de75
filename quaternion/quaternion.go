/*
Package quaternion implements immutable quaternions over float64.

A quaternion a + bi + cj + dk is a plain value; all operations return a
new quaternion and leave their operands untouched. Quaternions compare
with ==.

	q := quaternion.MustNew(1, 2, 3, 4)
	p := q.Times(quaternion.I).Plus(q.Conjugate())
	fmt.Println(p)

Multiplication is not commutative: I.Times(J) == K, but J.Times(I) == K.Scale(-1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package quaternion

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoefficient is returned if a quaternion is created with a NaN coefficient.
var ErrInvalidCoefficient = errors.New("coefficients cannot be NaN")

// Quaternion is an immutable value a + bi + cj + dk.
// The zero value is the zero quaternion.
type Quaternion struct {
	a, b, c, d float64
}

// Zero and the units of the imaginary axes.
var (
	Zero = Quaternion{}
	I    = Quaternion{b: 1}
	J    = Quaternion{c: 1}
	K    = Quaternion{d: 1}
)

// New creates a quaternion from its four coefficients. None of them may be NaN.
func New(a, b, c, d float64) (Quaternion, error) {
	for i, x := range [4]float64{a, b, c, d} {
		if math.IsNaN(x) {
			return Zero, fmt.Errorf("coefficient %c: %w", "abcd"[i], ErrInvalidCoefficient)
		}
	}
	return Quaternion{a: a, b: b, c: c, d: d}, nil
}

// MustNew is like New, but panics for NaN coefficients.
func MustNew(a, b, c, d float64) Quaternion {
	q, err := New(a, b, c, d)
	if err != nil {
		panic(fmt.Sprintf("quaternion: %v", err))
	}
	return q
}

// Coefficients returns [a, b, c, d].
func (q Quaternion) Coefficients() [4]float64 {
	return [4]float64{q.a, q.b, q.c, q.d}
}

// Conjugate returns a − bi − cj − dk.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{a: q.a, b: -q.b, c: -q.c, d: -q.d}
}

// Plus returns the component-wise sum q + p.
func (q Quaternion) Plus(p Quaternion) Quaternion {
	return Quaternion{
		a: q.a + p.a,
		b: q.b + p.b,
		c: q.c + p.c,
		d: q.d + p.d,
	}
}

// Times returns the Hamilton product q · p.
func (q Quaternion) Times(p Quaternion) Quaternion {
	return Quaternion{
		a: q.a*p.a - q.b*p.b - q.c*p.c - q.d*p.d,
		b: q.a*p.b + q.b*p.a + q.c*p.d - q.d*p.c,
		c: q.a*p.c - q.b*p.d + q.c*p.a + q.d*p.b,
		d: q.a*p.d + q.b*p.c - q.c*p.b + q.d*p.a,
	}
}

// Scale multiplies every coefficient with s.
func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{a: s * q.a, b: s * q.b, c: s * q.c, d: s * q.d}
}
