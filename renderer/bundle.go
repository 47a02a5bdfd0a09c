package renderer

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/sghaida/sketchbook/linear"
	"github.com/sghaida/sketchbook/scene"
)

// Vector3Func constructs a 3-vector value. It has no side effects.
type Vector3Func func(x, y, z float64) linear.Vector3

// HemisphericLightFunc constructs a hemispheric light and registers it on s.
type HemisphericLightFunc func(name string, direction linear.Vector3, s *scene.Scene) (*scene.HemisphericLight, error)

// MeshBuilder creates meshes and registers them on a scene.
type MeshBuilder interface {
	CreateSphere(name string, opts scene.SphereOptions, s *scene.Scene) (*scene.Mesh, error)
}

// Context is the capability bundle handed to a sketch's setup function.
//
// Sketches use these capabilities instead of importing constructors directly,
// so the renderer (or a test) decides what "create a light" means.
type Context struct {
	Scene            *scene.Scene
	Vector3          Vector3Func
	HemisphericLight HemisphericLightFunc
	MeshBuilder      MeshBuilder
}

// sceneMeshBuilder is the MeshBuilder backed by the scene package.
type sceneMeshBuilder struct{}

func (sceneMeshBuilder) CreateSphere(name string, opts scene.SphereOptions, s *scene.Scene) (*scene.Mesh, error) {
	return scene.CreateSphere(name, opts, s)
}

// SceneMeshBuilder returns the MeshBuilder backed by scene.CreateSphere.
func SceneMeshBuilder() MeshBuilder { return sceneMeshBuilder{} }

// CapabilityKey identifies a capability recorded in a Bundle.
type CapabilityKey string

// Capability keys. Every key is required by Bundle.Context.
const (
	KeyVector3          CapabilityKey = "Vector3"
	KeyHemisphericLight CapabilityKey = "HemisphericLight"
	KeyMeshBuilder      CapabilityKey = "MeshBuilder"
)

var requiredKeys = []CapabilityKey{KeyVector3, KeyHemisphericLight, KeyMeshBuilder}

// ErrNilBundle is returned when an injector is applied to a nil bundle.
var ErrNilBundle = errors.New("renderer: nil bundle")

// DuplicateCapabilityError is returned when a capability key is provided twice.
type DuplicateCapabilityError struct{ Key CapabilityKey }

// Error implements the error interface.
func (e DuplicateCapabilityError) Error() string {
	// Example: renderer: duplicate capability "MeshBuilder"
	return "renderer: duplicate capability " + strconv.Quote(string(e.Key))
}

// MissingCapabilityError is returned by Bundle.Context when a required capability
// was never provided.
type MissingCapabilityError struct{ Key CapabilityKey }

// Error implements the error interface.
func (e MissingCapabilityError) Error() string {
	// Example: renderer: capability "Vector3" missing
	return "renderer: capability " + strconv.Quote(string(e.Key)) + " missing"
}

// NilCapabilityError is returned when an injector is created with a nil capability.
type NilCapabilityError struct{ Key CapabilityKey }

// Error implements the error interface.
func (e NilCapabilityError) Error() string {
	// Example: renderer: nil capability for key "HemisphericLight"
	return "renderer: nil capability for key " + strconv.Quote(string(e.Key))
}

// Bundle assembles a Context from explicitly provided capabilities.
//
// The scene is fixed at construction; capabilities are attached with injectors
// and recorded by key so wiring mistakes (duplicates, omissions) surface as
// typed errors instead of nil function calls inside a sketch.
type Bundle struct {
	ctx      Context
	provided map[CapabilityKey]bool
	override bool
}

// NewBundle creates an empty bundle targeting s. A nil s is allowed; the
// capabilities decide what happens when a sketch uses it.
func NewBundle(s *scene.Scene) *Bundle {
	return &Bundle{ctx: Context{Scene: s}, provided: make(map[CapabilityKey]bool)}
}

// Default returns a bundle with the scene package's constructors provided.
func Default(s *scene.Scene) *Bundle {
	b := NewBundle(s)
	// cannot fail on a fresh bundle
	_, _ = b.WithAll(
		ProvideVector3(linear.NewVector3),
		ProvideHemisphericLight(scene.NewHemisphericLight),
		ProvideMeshBuilder(SceneMeshBuilder()),
	)
	return b
}

// Injector attaches one capability to a Bundle.
type Injector func(*Bundle) error

// With applies a single injector. A nil injector is a no-op.
func (b *Bundle) With(inj Injector) (*Bundle, error) {
	if inj == nil {
		return b, nil
	}
	if err := inj(b); err != nil {
		return b, err
	}
	return b, nil
}

// WithAll applies injectors in order and stops at the first error.
func (b *Bundle) WithAll(injs ...Injector) (*Bundle, error) {
	for _, inj := range injs {
		if _, err := b.With(inj); err != nil {
			return b, err
		}
	}
	return b, nil
}

// Has reports whether a capability was provided for key.
func (b *Bundle) Has(key CapabilityKey) bool {
	if b == nil {
		return false
	}
	return b.provided[key]
}

// Scene returns the bundle's target scene.
func (b *Bundle) Scene() *scene.Scene { return b.ctx.Scene }

// Context returns the assembled capability bundle.
//
// It fails with MissingCapabilityError naming the first required key that was
// not provided, in the order Vector3, HemisphericLight, MeshBuilder.
func (b *Bundle) Context() (Context, error) {
	if b == nil {
		return Context{}, ErrNilBundle
	}
	for _, k := range requiredKeys {
		if !b.provided[k] {
			return Context{}, MissingCapabilityError{Key: k}
		}
	}
	return b.ctx, nil
}

// providing builds an injector that records key and calls set.
func providing(key CapabilityKey, isNil bool, set func(*Context)) Injector {
	return func(b *Bundle) error {
		if b == nil {
			return ErrNilBundle
		}
		if isNil {
			return NilCapabilityError{Key: key}
		}
		if b.provided == nil {
			b.provided = make(map[CapabilityKey]bool)
		}
		if b.provided[key] && !b.override {
			return DuplicateCapabilityError{Key: key}
		}
		b.provided[key] = true
		set(&b.ctx)
		return nil
	}
}

// ProvideVector3 provides the Vector3 capability.
func ProvideVector3(fn Vector3Func) Injector {
	return providing(KeyVector3, fn == nil, func(c *Context) { c.Vector3 = fn })
}

// ProvideHemisphericLight provides the HemisphericLight capability.
func ProvideHemisphericLight(fn HemisphericLightFunc) Injector {
	return providing(KeyHemisphericLight, fn == nil, func(c *Context) { c.HemisphericLight = fn })
}

// ProvideMeshBuilder provides the MeshBuilder capability. A typed nil pointer
// counts as nil.
func ProvideMeshBuilder(mb MeshBuilder) Injector {
	return providing(KeyMeshBuilder, isNilMeshBuilder(mb), func(c *Context) { c.MeshBuilder = mb })
}

func isNilMeshBuilder(mb MeshBuilder) bool {
	if mb == nil {
		return true
	}
	v := reflect.ValueOf(mb)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Override lets inj replace a capability that was already provided. It is
// meant for tests and instrumentation that wrap the default constructors.
// Override(nil) is nil, so With treats it as a no-op.
func Override(inj Injector) Injector {
	if inj == nil {
		return nil
	}
	return func(b *Bundle) error {
		if b == nil {
			return ErrNilBundle
		}
		b.override = true
		defer func() { b.override = false }()
		return inj(b)
	}
}
