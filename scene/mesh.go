package scene

import (
	"math"

	"github.com/sghaida/sketchbook/linear"
)

// Sphere defaults applied by CreateSphere to zero-valued options.
const (
	DefaultSphereDiameter = 1.0
	DefaultSphereSegments = 32
)

// VertexData is indexed triangle geometry.
type VertexData struct {
	Positions []linear.Vector3
	Normals   []linear.Vector3
	// UVs holds one (u, v) pair per vertex.
	UVs     [][2]float64
	Indices []uint32
}

// VertexCount returns the number of vertices.
func (d *VertexData) VertexCount() int { return len(d.Positions) }

// TriangleCount returns the number of triangles.
func (d *VertexData) TriangleCount() int { return len(d.Indices) / 3 }

// Bounds returns the component-wise minimum and maximum positions.
// Both are zero if d has no vertices.
func (d *VertexData) Bounds() (lo, hi linear.Vector3) {
	if len(d.Positions) == 0 {
		return
	}
	lo, hi = d.Positions[0], d.Positions[0]
	for _, p := range d.Positions[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return
}

// SphereOptions configures CreateSphere.
// Zero values select the defaults.
type SphereOptions struct {
	// Diameter of the sphere. Defaults to DefaultSphereDiameter.
	Diameter float64 `yaml:"diameter"`
	// DiameterX, DiameterY and DiameterZ override Diameter per axis.
	DiameterX float64 `yaml:"diameterX,omitempty"`
	DiameterY float64 `yaml:"diameterY,omitempty"`
	DiameterZ float64 `yaml:"diameterZ,omitempty"`
	// Segments is the number of horizontal segments. Defaults to DefaultSphereSegments.
	Segments int `yaml:"segments,omitempty"`
	// Arc is the fraction of the circumference swept around Y, in (0, 1]. Defaults to 1.
	Arc float64 `yaml:"arc,omitempty"`
	// Slice is the fraction of the height swept from the top, in (0, 1]. Defaults to 1.
	Slice float64 `yaml:"slice,omitempty"`
}

// resolve validates o and fills defaults.
func (o SphereOptions) resolve(name string) (SphereOptions, error) {
	invalid := func(opt string, v float64) error {
		return &InvalidOptionError{Node: name, Option: opt, Value: v}
	}

	for _, d := range []struct {
		opt string
		v   float64
	}{
		{"diameter", o.Diameter},
		{"diameterX", o.DiameterX},
		{"diameterY", o.DiameterY},
		{"diameterZ", o.DiameterZ},
	} {
		if d.v < 0 || math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return o, invalid(d.opt, d.v)
		}
	}
	if o.Segments < 0 {
		return o, invalid("segments", float64(o.Segments))
	}
	if o.Arc < 0 || o.Arc > 1 || math.IsNaN(o.Arc) {
		return o, invalid("arc", o.Arc)
	}
	if o.Slice < 0 || o.Slice > 1 || math.IsNaN(o.Slice) {
		return o, invalid("slice", o.Slice)
	}

	if o.Diameter == 0 {
		o.Diameter = DefaultSphereDiameter
	}
	if o.DiameterX == 0 {
		o.DiameterX = o.Diameter
	}
	if o.DiameterY == 0 {
		o.DiameterY = o.Diameter
	}
	if o.DiameterZ == 0 {
		o.DiameterZ = o.Diameter
	}
	if o.Segments == 0 {
		o.Segments = DefaultSphereSegments
	}
	if o.Arc == 0 {
		o.Arc = 1
	}
	if o.Slice == 0 {
		o.Slice = 1
	}
	return o, nil
}

// Mesh is a named piece of geometry owned by a scene.
type Mesh struct {
	node

	// Shape names the builder that produced the geometry (e.g. "sphere").
	Shape string
	// Options holds the resolved options the geometry was built from.
	Options SphereOptions
	// Position is the mesh origin in scene space.
	Position linear.Vector3
	// Geometry is the tessellated surface.
	Geometry VertexData

	boundsMin, boundsMax linear.Vector3
}

// Kind implements Node.
func (m *Mesh) Kind() NodeKind { return KindMesh }

// Diameter returns the resolved uniform diameter.
func (m *Mesh) Diameter() float64 { return m.Options.Diameter }

// Bounds returns the local-space bounding box computed at construction.
func (m *Mesh) Bounds() (lo, hi linear.Vector3) { return m.boundsMin, m.boundsMax }

// CreateSphere builds a UV sphere and adds it to s.
//
// It fails with ErrNilScene if s is nil, ErrSceneDisposed if s was disposed,
// and *InvalidOptionError if an option is out of range.
func CreateSphere(name string, opts SphereOptions, s *Scene) (*Mesh, error) {
	if err := check(s); err != nil {
		return nil, err
	}
	o, err := opts.resolve(name)
	if err != nil {
		return nil, err
	}

	m := &Mesh{
		node:     node{name: name},
		Shape:    "sphere",
		Options:  o,
		Geometry: sphereVertexData(o),
	}
	m.boundsMin, m.boundsMax = m.Geometry.Bounds()
	s.add(m)
	return m, nil
}

// sphereVertexData tessellates a sphere with Segments+2 latitude steps and
// twice as many longitude steps. Each ring repeats its first vertex at the
// seam so UVs stay continuous.
func sphereVertexData(o SphereOptions) VertexData {
	radius := linear.NewVector3(o.DiameterX/2, o.DiameterY/2, o.DiameterZ/2)

	zSteps := 2 + o.Segments
	ySteps := 2 * zSteps
	ring := ySteps + 1

	d := VertexData{
		Positions: make([]linear.Vector3, 0, (zSteps+1)*ring),
		Normals:   make([]linear.Vector3, 0, (zSteps+1)*ring),
		UVs:       make([][2]float64, 0, (zSteps+1)*ring),
		Indices:   make([]uint32, 0, zSteps*ySteps*6),
	}

	for z := 0; z <= zSteps; z++ {
		nz := float64(z) / float64(zSteps)
		angleZ := nz * math.Pi * o.Slice
		sinZ, cosZ := math.Sincos(angleZ)

		for y := 0; y <= ySteps; y++ {
			ny := float64(y) / float64(ySteps)
			angleY := ny * 2 * math.Pi * o.Arc
			sinY, cosY := math.Sincos(angleY)

			// Up rotated by -angleZ about Z, then by angleY about Y.
			unit := linear.NewVector3(sinZ*cosY, cosZ, -sinZ*sinY)

			d.Positions = append(d.Positions, unit.Mul(radius))
			d.Normals = append(d.Normals, normalOnEllipsoid(unit, radius))
			d.UVs = append(d.UVs, [2]float64{ny, nz})
		}

		if z > 0 {
			first := uint32(len(d.Positions) - 2*ring)
			for i := 0; i < ySteps; i++ {
				a := first + uint32(i)
				b := a + uint32(ring)
				d.Indices = append(d.Indices,
					a, a+1, b,
					b, a+1, b+1,
				)
			}
		}
	}
	return d
}

func normalOnEllipsoid(unit, radius linear.Vector3) linear.Vector3 {
	n := linear.NewVector3(unit.X/radius.X, unit.Y/radius.Y, unit.Z/radius.Z)
	return n.Normalize()
}
