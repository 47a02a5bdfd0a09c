// Package blog holds the sketches that illustrate blog posts.
//
// Each sketch is a package-level *renderer.Sketch named after what it draws,
// registered in Catalog under "<post date>/<sketch slug>".
package blog

import "github.com/sghaida/sketchbook/renderer"

//go:generate go run ../cmd/sketchgen -spec specs/sphere_and_light.sketch.yaml -out sphere_and_light.gen.go

// Catalog returns every published sketch.
func Catalog() *renderer.Catalog {
	return renderer.NewCatalog().
		Register(SketchSphereAndLight, SphereAndLight)
}
