package blog_test

import (
	"github.com/sghaida/sketchbook/linear"
	"github.com/sghaida/sketchbook/renderer"
	"github.com/sghaida/sketchbook/scene"
)

type lightCall struct {
	Name      string
	Direction linear.Vector3
	Scene     *scene.Scene
}

type sphereCall struct {
	Name    string
	Options scene.SphereOptions
	Scene   *scene.Scene
}

// recorder is a capability bundle that records every call and optionally
// fails with preset errors. It never touches the scene.
type recorder struct {
	vectors []linear.Vector3
	lights  []lightCall
	spheres []sphereCall

	lightErr  error
	sphereErr error
}

func (r *recorder) CreateSphere(name string, opts scene.SphereOptions, s *scene.Scene) (*scene.Mesh, error) {
	r.spheres = append(r.spheres, sphereCall{Name: name, Options: opts, Scene: s})
	if r.sphereErr != nil {
		return nil, r.sphereErr
	}
	return &scene.Mesh{}, nil
}

func (r *recorder) context(s *scene.Scene) renderer.Context {
	return renderer.Context{
		Scene: s,
		Vector3: func(x, y, z float64) linear.Vector3 {
			v := linear.NewVector3(x, y, z)
			r.vectors = append(r.vectors, v)
			return v
		},
		HemisphericLight: func(name string, dir linear.Vector3, s *scene.Scene) (*scene.HemisphericLight, error) {
			r.lights = append(r.lights, lightCall{Name: name, Direction: dir, Scene: s})
			if r.lightErr != nil {
				return nil, r.lightErr
			}
			return &scene.HemisphericLight{}, nil
		},
		MeshBuilder: r,
	}
}
