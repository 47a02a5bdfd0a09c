// Package sketchbook holds the 3D sketches that illustrate blog posts, plus the
// small renderer they run against.
//
// A sketch is a setup function that receives a capability bundle (scene,
// Vector3, HemisphericLight, MeshBuilder) instead of importing constructors, so
// wiring stays explicit and tests can swap any capability for a fake.
//
// See subpackages:
//   - linear: Vector3 value type
//   - scene: scene model (hemispheric lights, sphere meshes, YAML snapshots)
//   - renderer: capability bundles, DefineSketch, sketch catalog
//   - blog: the published sketches
//   - config: CLI configuration (env + YAML file)
//   - cmd/sketch: list and run sketches
//   - cmd/sketchgen: generate sketch definitions from *.sketch.yaml files
package sketchbook
