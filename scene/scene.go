// Package scene provides the in-memory scene model that sketches populate.
//
// A Scene is a mutable, ordered container of nodes (lights and meshes). Nodes are
// created by the constructors in this package, which register the new node on the
// scene passed to them:
//
//	s := scene.New("demo")
//	light, err := scene.NewHemisphericLight("light1", linear.NewVector3(1, 1, 0), s)
//	sphere, err := scene.CreateSphere("sphere", scene.SphereOptions{Diameter: 0.25}, s)
//
// The scene owns every node added to it. Node names are labels, not keys: adding
// two nodes with the same name yields two distinct children.
//
// A Scene is not safe for concurrent mutation. Callers that share one across
// goroutines must arbitrate access themselves.
package scene

import (
	"errors"
	"strconv"
)

var (
	// ErrNilScene is returned by constructors when the target scene is nil.
	ErrNilScene = errors.New("scene: nil scene")

	// ErrSceneDisposed is returned by constructors when the target scene was disposed.
	ErrSceneDisposed = errors.New("scene: scene disposed")
)

// NodeKind identifies the concrete type of a Node.
type NodeKind string

const (
	KindHemisphericLight NodeKind = "hemisphericLight"
	KindMesh             NodeKind = "mesh"
)

// Node is a child of a Scene.
//
// Only types defined in this package implement Node.
type Node interface {
	// ID returns the scene-unique identifier assigned when the node was added.
	ID() uint64
	// Name returns the label the node was created with.
	Name() string
	// Kind returns the node's concrete kind.
	Kind() NodeKind

	base() *node
}

// node holds the fields shared by every Node.
type node struct {
	id   uint64
	name string
}

func (n *node) ID() uint64   { return n.id }
func (n *node) Name() string { return n.name }
func (n *node) base() *node  { return n }

// Scene is a container of lights and meshes.
type Scene struct {
	name     string
	nextID   uint64
	children []Node
	disposed bool
}

// New creates an empty scene.
func New(name string) *Scene { return &Scene{name: name} }

// Name returns the scene's name.
func (s *Scene) Name() string { return s.name }

// Len returns the number of children.
func (s *Scene) Len() int { return len(s.children) }

// Children returns the scene's children in insertion order.
// The returned slice is a copy; the nodes are shared.
func (s *Scene) Children() []Node {
	out := make([]Node, len(s.children))
	copy(out, s.children)
	return out
}

// Lights returns the hemispheric lights in insertion order.
func (s *Scene) Lights() []*HemisphericLight {
	var out []*HemisphericLight
	for _, c := range s.children {
		if l, ok := c.(*HemisphericLight); ok {
			out = append(out, l)
		}
	}
	return out
}

// Meshes returns the meshes in insertion order.
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, c := range s.children {
		if m, ok := c.(*Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// FindByName returns every child labeled name, in insertion order.
func (s *Scene) FindByName(name string) []Node {
	var out []Node
	for _, c := range s.children {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// Dispose releases every child. Constructors targeting s fail afterwards
// with ErrSceneDisposed. Dispose is idempotent.
func (s *Scene) Dispose() {
	s.children = nil
	s.disposed = true
}

// Disposed reports whether Dispose was called.
func (s *Scene) Disposed() bool { return s.disposed }

// check validates s as a constructor target.
func check(s *Scene) error {
	if s == nil {
		return ErrNilScene
	}
	if s.disposed {
		return ErrSceneDisposed
	}
	return nil
}

// add assigns n the next ID and appends it. Callers must check(s) first.
func (s *Scene) add(n Node) {
	s.nextID++
	n.base().id = s.nextID
	s.children = append(s.children, n)
}

// InvalidOptionError is returned when a constructor option is out of range.
type InvalidOptionError struct {
	// Node is the name of the node being constructed.
	Node string
	// Option is the option name (e.g. "segments").
	Option string
	// Value is the rejected value.
	Value float64
}

// Error implements the error interface.
func (e *InvalidOptionError) Error() string {
	// Example: scene: invalid option "segments" (0) for "sphere"
	return "scene: invalid option " + strconv.Quote(e.Option) +
		" (" + strconv.FormatFloat(e.Value, 'g', -1, 64) + ") for " + strconv.Quote(e.Node)
}
