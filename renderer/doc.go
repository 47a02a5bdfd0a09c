// Package renderer runs sketches against the in-memory scene model.
//
// A sketch is a setup function that receives a capability bundle (Context)
// rather than importing constructors itself:
//
//   - Scene: the scene being populated
//   - Vector3: pure 3-vector constructor
//   - HemisphericLight: creates a light and registers it on a scene
//   - MeshBuilder: creates meshes (CreateSphere) and registers them on a scene
//
// Bundles are assembled explicitly with injectors (ProvideVector3,
// ProvideHemisphericLight, ProvideMeshBuilder). Default wires the scene
// package's constructors; tests can build a bundle from fakes instead.
//
// Errors raised by capabilities are never caught or translated on the way back
// from a sketch. What a sketch returns is what its caller sees.
//
// Import
//
//	"github.com/sghaida/sketchbook/renderer"
package renderer
