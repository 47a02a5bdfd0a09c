package renderer

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrCatalogPanic is returned by Resolve if a catalog lookup panics internally.
var ErrCatalogPanic = errors.New("renderer: panic during catalog resolve")

// UnknownSketchError is returned by Resolve when no sketch is registered under Name.
type UnknownSketchError struct{ Name string }

// Error implements the error interface.
func (e UnknownSketchError) Error() string {
	// Example: renderer: unknown sketch "2024-11-10/sketch-9"
	return "renderer: unknown sketch " + strconv.Quote(e.Name)
}

// Catalog maps sketch names to sketches.
//
// It is populated once, in a composition root, and read afterwards:
//
//	cat := renderer.NewCatalog().
//		Register("2024-11-10/sketch-2", blog.SphereAndLight)
//	sk, err := cat.Resolve("2024-11-10/sketch-2")
type Catalog struct {
	items map[string]*Sketch
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{items: map[string]*Sketch{}}
}

// Register stores sk under name and returns the catalog for chaining.
//
// It panics if sk is nil or name is already registered: both are wiring bugs
// that should fail at startup rather than at lookup.
func (c *Catalog) Register(name string, sk *Sketch) *Catalog {
	if sk == nil {
		panic(fmt.Errorf("renderer: nil sketch for %q", name))
	}
	if _, exists := c.items[name]; exists {
		panic(fmt.Errorf("renderer: sketch %q registered twice", name))
	}
	c.items[name] = sk
	return c
}

// Lookup returns the sketch registered under name.
func (c *Catalog) Lookup(name string) (*Sketch, bool) {
	sk, ok := c.items[name]
	return sk, ok
}

// MustLookup returns the sketch or panics with a helpful message.
func (c *Catalog) MustLookup(name string) *Sketch {
	sk, ok := c.items[name]
	if !ok {
		panic(UnknownSketchError{Name: name})
	}
	return sk
}

// Resolve returns the sketch registered under name or UnknownSketchError.
// Panics inside the lookup are converted into ErrCatalogPanic.
func (c *Catalog) Resolve(name string) (sk *Sketch, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			sk = nil
			err = fmt.Errorf("%w: %v", ErrCatalogPanic, rec)
		}
	}()

	sk, ok := c.items[name]
	if !ok {
		return nil, UnknownSketchError{Name: name}
	}
	return sk, nil
}

// Names returns the registered names in lexical order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.items))
	for name := range c.items {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered sketches.
func (c *Catalog) Len() int { return len(c.items) }
