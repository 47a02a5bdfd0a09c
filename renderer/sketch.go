package renderer

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/sghaida/sketchbook/scene"
)

// SetupFunc declares the contents of a scene using the capabilities in c.
//
// It runs synchronously. Errors returned by capabilities are expected to be
// returned as-is; the renderer does not translate them.
type SetupFunc func(c Context) error

// Sketch is a registered setup function.
type Sketch struct {
	setup SetupFunc
}

// DefineSketch registers setup as a sketch. It panics if setup is nil, since
// sketches are defined in package-level variables and a nil setup is a
// programming error.
func DefineSketch(setup SetupFunc) *Sketch {
	if setup == nil {
		panic("renderer: DefineSketch called with nil setup")
	}
	return &Sketch{setup: setup}
}

// Setup invokes the sketch's setup function with c and returns its error
// unchanged. Panics raised by capabilities are not recovered.
func (sk *Sketch) Setup(c Context) error {
	return sk.setup(c)
}

type runConfig struct {
	logger    *log.Logger
	injectors []Injector
	repeat    int
}

// RunOption configures Sketch.Run.
type RunOption func(*runConfig)

// WithLogger sets the logger used to report run progress. Defaults to a
// discarding logger.
func WithLogger(l *log.Logger) RunOption {
	return func(rc *runConfig) {
		if l != nil {
			rc.logger = l
		}
	}
}

// WithCapabilities applies extra injectors on top of the default bundle.
// Use Override to replace a default capability.
func WithCapabilities(injs ...Injector) RunOption {
	return func(rc *runConfig) { rc.injectors = append(rc.injectors, injs...) }
}

// WithRepeat invokes setup n times against the same scene. Values below 1
// are treated as 1.
func WithRepeat(n int) RunOption {
	return func(rc *runConfig) { rc.repeat = n }
}

// Run creates a fresh scene named name, assembles the default capability
// bundle plus any configured injectors, and invokes the sketch.
//
// ctx is checked before each setup invocation; setup itself is not
// interruptible. Setup errors are returned unwrapped, alongside the
// partially populated scene.
func (sk *Sketch) Run(ctx context.Context, name string, opts ...RunOption) (*scene.Scene, error) {
	rc := runConfig{logger: log.New(io.Discard, "", 0), repeat: 1}
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.repeat < 1 {
		rc.repeat = 1
	}

	s := scene.New(name)
	b, err := Default(s).WithAll(rc.injectors...)
	if err != nil {
		return nil, fmt.Errorf("renderer: assemble bundle for %q: %w", name, err)
	}
	c, err := b.Context()
	if err != nil {
		return nil, fmt.Errorf("renderer: assemble bundle for %q: %w", name, err)
	}

	for i := 0; i < rc.repeat; i++ {
		if err := ctx.Err(); err != nil {
			return s, fmt.Errorf("renderer: run %q: %w", name, err)
		}
		rc.logger.Printf("sketch %q: setup %d/%d", name, i+1, rc.repeat)
		if err := sk.Setup(c); err != nil {
			rc.logger.Printf("sketch %q: setup failed: %v", name, err)
			return s, err
		}
	}
	rc.logger.Printf("sketch %q: %d children", name, s.Len())
	return s, nil
}
