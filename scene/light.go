package scene

import (
	"github.com/sghaida/sketchbook/linear"
)

// Color3 is an RGB color with components nominally in [0, 1].
type Color3 struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// White returns (1, 1, 1).
func White() Color3 { return Color3{R: 1, G: 1, B: 1} }

// Black returns (0, 0, 0).
func Black() Color3 { return Color3{} }

// Scale returns c with every component multiplied by f.
func (c Color3) Scale(f float64) Color3 { return Color3{R: c.R * f, G: c.G * f, B: c.B * f} }

// Lerp returns the linear blend c + (d - c) ⋅ t.
func (c Color3) Lerp(d Color3, t float64) Color3 {
	return Color3{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
	}
}

// HemisphericLight is an ambient-like light defined by a direction pointing
// towards the sky. Surfaces facing the direction receive Diffuse, surfaces
// facing away receive GroundColor, with a smooth blend in between.
type HemisphericLight struct {
	node

	// Direction points to the sky hemisphere. It is stored as given.
	Direction linear.Vector3
	// Intensity scales the light's contribution. Defaults to 1.
	Intensity float64
	// Diffuse is the sky color. Defaults to white.
	Diffuse Color3
	// Specular is the highlight color. Defaults to white.
	Specular Color3
	// GroundColor is the color received by surfaces facing away. Defaults to black.
	GroundColor Color3
}

// NewHemisphericLight creates a hemispheric light and adds it to s.
//
// It fails with ErrNilScene if s is nil and ErrSceneDisposed if s was disposed.
func NewHemisphericLight(name string, direction linear.Vector3, s *Scene) (*HemisphericLight, error) {
	if err := check(s); err != nil {
		return nil, err
	}
	l := &HemisphericLight{
		node:        node{name: name},
		Direction:   direction,
		Intensity:   1,
		Diffuse:     White(),
		Specular:    White(),
		GroundColor: Black(),
	}
	s.add(l)
	return l, nil
}

// Kind implements Node.
func (l *HemisphericLight) Kind() NodeKind { return KindHemisphericLight }

// Irradiance returns the light received by a surface with the given normal.
func (l *HemisphericLight) Irradiance(normal linear.Vector3) Color3 {
	ndl := normal.Normalize().Dot(l.Direction.Normalize())*0.5 + 0.5
	return l.GroundColor.Lerp(l.Diffuse, ndl).Scale(l.Intensity)
}
