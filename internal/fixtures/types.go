// Package fixtures holds annotated types together with their generated
// interpolation methods. The generator's tests render these types and compare
// the result with lerp_gen.go.
package fixtures

import "github.com/teranos/lerp"

//go:generate go run github.com/teranos/lerp/cmd/lerpgen

// Data is a positional pair.
//
//lerp:derive
type Data [2]float64

//lerp:derive
type Mixed struct {
	A float64
	B float32
}

//lerp:derive
type Tagged struct {
	Pos   float64
	Label string `json:"label" lerp:"skip"`
	ID    int    `lerp:"ignore"`
}

//lerp:derive
type Vec2 struct {
	X, Y float64
}

// Meters interpolates with a float32 parameter.
type Meters float32

func (m Meters) Lerp(other Meters, t float32) Meters {
	return Meters(lerp.Lerp(float32(m), float32(other), t))
}

//lerp:derive
type Body struct {
	Pos    Vec2
	Height Meters `lerp:"float32"`
	Vel    *Vec2
	Trail  [3]float64
	Grid   [2][2]float32
	Name   string `lerp:"-"`
	//lerp:field skip
	Frame int
}

// Pair interpolates any two values that interpolate themselves.
//
//lerp:derive
type Pair[T lerp.Interpolator[T, float64]] struct {
	First, Second T
}
