/*
Package shape implements a closed sum type of three-dimensional shapes.

	type Shape = Box w h d | Sphere r

Clients match on the variants with a type switch:

	switch s := x.(type) {
	case shape.Box:
	case shape.Sphere:
	}
*/
package shape

import (
	"fmt"
	"math"
)

// Shape is either a Box or a Sphere.
type Shape interface {
	isShape()
	fmt.Stringer
}

// Box is a cuboid of width W, height H and depth D.
type Box struct {
	W, H, D float64
}

// Sphere is a ball of radius R.
type Sphere struct {
	R float64
}

func (Box) isShape()    {}
func (Sphere) isShape() {}

// NewBox creates a box shape.
func NewBox(w, h, d float64) Shape {
	return Box{W: w, H: h, D: d}
}

// NewSphere creates a sphere shape.
func NewSphere(r float64) Shape {
	return Sphere{R: r}
}

func (b Box) String() string {
	return fmt.Sprintf("Box(%g,%g,%g)", b.W, b.H, b.D)
}

func (s Sphere) String() string {
	return fmt.Sprintf("Sphere(%g)", s.R)
}

// SurfaceArea returns the area of the surface of s.
func SurfaceArea(s Shape) float64 {
	switch x := s.(type) {
	case Box:
		return 2 * (x.W*x.H + x.W*x.D + x.H*x.D)
	case Sphere:
		return 4 * math.Pi * x.R * x.R
	}
	panic(fmt.Sprintf("shape: unknown variant %#v", s))
}

// Volume returns the volume of s.
func Volume(s Shape) float64 {
	switch x := s.(type) {
	case Box:
		return x.W * x.H * x.D
	case Sphere:
		return 4.0 / 3.0 * math.Pi * x.R * x.R * x.R
	}
	panic(fmt.Sprintf("shape: unknown variant %#v", s))
}

// Equal is true if a and b are the same variant with the same dimensions.
func Equal(a, b Shape) bool {
	return a == b
}
