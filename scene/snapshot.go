package scene

import (
	"fmt"
	"strings"

	"github.com/sghaida/sketchbook/linear"
	"gopkg.in/yaml.v3"
)

// Snapshot is a serializable summary of a scene.
// Geometry is summarized by counts and bounds, not dumped.
type Snapshot struct {
	Name     string         `yaml:"name"`
	Disposed bool           `yaml:"disposed,omitempty"`
	Children []NodeSnapshot `yaml:"children"`
}

// NodeSnapshot summarizes one child. Fields that do not apply to the node's
// kind are omitted.
type NodeSnapshot struct {
	ID   uint64   `yaml:"id"`
	Kind NodeKind `yaml:"kind"`
	Name string   `yaml:"name"`

	// hemispheric light
	Direction   *linear.Vector3 `yaml:"direction,omitempty"`
	Intensity   *float64        `yaml:"intensity,omitempty"`
	Diffuse     *Color3         `yaml:"diffuse,omitempty"`
	GroundColor *Color3         `yaml:"groundColor,omitempty"`

	// mesh
	Shape     string          `yaml:"shape,omitempty"`
	Options   *SphereOptions  `yaml:"options,omitempty"`
	Vertices  int             `yaml:"vertices,omitempty"`
	Triangles int             `yaml:"triangles,omitempty"`
	BoundsMin *linear.Vector3 `yaml:"boundsMin,omitempty"`
	BoundsMax *linear.Vector3 `yaml:"boundsMax,omitempty"`
}

// Snapshot captures the current children of s.
func (s *Scene) Snapshot() Snapshot {
	snap := Snapshot{
		Name:     s.name,
		Disposed: s.disposed,
		Children: make([]NodeSnapshot, 0, len(s.children)),
	}
	for _, c := range s.children {
		snap.Children = append(snap.Children, snapshotNode(c))
	}
	return snap
}

func snapshotNode(n Node) NodeSnapshot {
	ns := NodeSnapshot{ID: n.ID(), Kind: n.Kind(), Name: n.Name()}

	switch v := n.(type) {
	case *HemisphericLight:
		dir, intensity, diffuse, ground := v.Direction, v.Intensity, v.Diffuse, v.GroundColor
		ns.Direction = &dir
		ns.Intensity = &intensity
		ns.Diffuse = &diffuse
		ns.GroundColor = &ground
	case *Mesh:
		opts := v.Options
		lo, hi := v.Bounds()
		ns.Shape = v.Shape
		ns.Options = &opts
		ns.Vertices = v.Geometry.VertexCount()
		ns.Triangles = v.Geometry.TriangleCount()
		ns.BoundsMin = &lo
		ns.BoundsMax = &hi
	}
	return ns
}

// YAML encodes the snapshot as a YAML document.
func (s Snapshot) YAML() ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("scene: encode snapshot %q: %w", s.Name, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("scene: encode snapshot %q: %w", s.Name, err)
	}
	return []byte(sb.String()), nil
}

// Text renders a short human-readable listing, one child per line.
func (s Snapshot) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "scene %q (%d children)\n", s.Name, len(s.Children))
	for _, c := range s.Children {
		fmt.Fprintf(&sb, "  #%d %s %q", c.ID, c.Kind, c.Name)
		switch c.Kind {
		case KindHemisphericLight:
			fmt.Fprintf(&sb, " direction=%s intensity=%g", c.Direction, *c.Intensity)
		case KindMesh:
			fmt.Fprintf(&sb, " shape=%s diameter=%g segments=%d vertices=%d triangles=%d",
				c.Shape, c.Options.Diameter, c.Options.Segments, c.Vertices, c.Triangles)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
