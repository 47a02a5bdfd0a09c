// Command sketchgen generates sketch definitions from declarative YAML files.
//
// A sketch file lists the scene contents in order:
//
//	package: blog
//	var: SphereAndLight
//	name: 2024-11-10/sketch-2
//	doc: lights a small sphere with a single hemispheric light.
//	steps:
//	  - light:  {name: light1, direction: [1, 1, 0]}
//	  - sphere: {name: sphere, diameter: 0.25}
//
// and sketchgen emits a gofmt'ed Go file defining the sketch with
// renderer.DefineSketch. Each step becomes one capability call; the first
// error from a capability is returned as-is.
//
// Typical go:generate usage:
//
//	//go:generate go run ../cmd/sketchgen -spec specs/sphere_and_light.sketch.yaml -out sphere_and_light.gen.go
//
// Import paths for the renderer and scene packages are inferred from the
// nearest go.mod above -out, unless set under imports: in the file.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"go/format"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type Imports struct {
	Renderer string `yaml:"renderer"`
	Scene    string `yaml:"scene"`
}

type LightStep struct {
	Name      string     `yaml:"name"`
	Direction [3]float64 `yaml:"direction"`
}

type SphereStep struct {
	Name      string  `yaml:"name"`
	Diameter  float64 `yaml:"diameter"`
	DiameterX float64 `yaml:"diameterX"`
	DiameterY float64 `yaml:"diameterY"`
	DiameterZ float64 `yaml:"diameterZ"`
	Segments  int     `yaml:"segments"`
	Arc       float64 `yaml:"arc"`
	Slice     float64 `yaml:"slice"`
}

// Step holds exactly one of its fields.
type Step struct {
	Light  *LightStep  `yaml:"light"`
	Sphere *SphereStep `yaml:"sphere"`
}

type SketchSpec struct {
	Package string `yaml:"package"`
	Var     string `yaml:"var"`

	// Name is the catalog name. When set, a Sketch<Var> constant is emitted.
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`

	Imports Imports `yaml:"imports"`
	Steps   []Step  `yaml:"steps"`
}

// field is one SphereOptions field rendered by the template.
type field struct {
	Name  string
	Value string
}

func run(args []string) error {
	fs := flag.NewFlagSet("sketchgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	specPath := fs.String("spec", "", "path to *.sketch.yaml")
	outPath := fs.String("out", "", "output .gen.go file path")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*outPath) == "" {
		return fmt.Errorf("missing -out")
	}
	if strings.TrimSpace(*specPath) == "" {
		return fmt.Errorf("missing -spec")
	}

	genSketch(*specPath, *outPath)
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		panic(err)
	}
}

func genSketch(specPath, outPath string) {
	raw := mustRead(specPath)

	var spec SketchSpec
	must(yaml.Unmarshal(raw, &spec))

	validateSketchSpec(&spec)
	inferImports(&spec, outPath)

	data := map[string]any{
		"Spec":      spec,
		"SpecPath":  filepath.ToSlash(specPath),
		"SpecHash":  sha256Hex(raw),
		"UsesScene": usesScene(spec.Steps),
	}

	src := mustExecTemplate(sketchTpl, data)
	writeFormatted(outPath, src)
}

func validateSketchSpec(s *SketchSpec) {
	req := func(name, v string) {
		if strings.TrimSpace(v) == "" {
			die("spec missing: " + name)
		}
	}
	req("package", s.Package)
	req("var", s.Var)

	if !isExported(s.Var) {
		die("spec var must be an exported identifier: " + s.Var)
	}
	if len(s.Steps) == 0 {
		die("spec steps must be non-empty")
	}
	for i, st := range s.Steps {
		at := "step " + strconv.Itoa(i)
		switch {
		case st.Light != nil && st.Sphere != nil:
			die(at + ": must set only one of light or sphere")
		case st.Light != nil:
			if st.Light.Name == "" {
				die(at + ": light must have name")
			}
			for _, v := range st.Light.Direction {
				if !isFinite(v) {
					die(at + ": light direction must be finite")
				}
			}
		case st.Sphere != nil:
			if st.Sphere.Name == "" {
				die(at + ": sphere must have name")
			}
			if st.Sphere.Diameter < 0 || st.Sphere.Segments < 0 {
				die(at + ": sphere diameter and segments must be >= 0")
			}
			sp := st.Sphere
			for _, v := range []float64{sp.Diameter, sp.DiameterX, sp.DiameterY, sp.DiameterZ, sp.Arc, sp.Slice} {
				if !isFinite(v) {
					die(at + ": sphere options must be finite")
				}
			}
		default:
			die(at + ": must set light or sphere")
		}
	}
}

// -------------------------
// Import inference
// -------------------------
//
// Explicit imports in the sketch file win. Otherwise both packages are assumed to
// live at the root of the module that contains -out.

func inferImports(s *SketchSpec, outPath string) {
	if strings.TrimSpace(s.Imports.Renderer) != "" && strings.TrimSpace(s.Imports.Scene) != "" {
		return
	}
	_, modPath, err := findModule(filepath.Dir(outPath))
	if err != nil {
		die("cannot infer imports: no imports in spec and cannot find go.mod: " + err.Error())
	}
	if strings.TrimSpace(s.Imports.Renderer) == "" {
		s.Imports.Renderer = modPath + "/renderer"
	}
	if strings.TrimSpace(s.Imports.Scene) == "" {
		s.Imports.Scene = modPath + "/scene"
	}
}

type cmdError struct{ msg string }

func (e *cmdError) Error() string { return e.msg }

// findModule walks up from startDir to the nearest go.mod and returns its
// directory and module path.
func findModule(startDir string) (modRoot string, modPath string, err error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", err
	}
	for {
		gomod := filepath.Join(dir, "go.mod")
		if fileExists(gomod) {
			b, rerr := os.ReadFile(gomod)
			if rerr != nil {
				return "", "", rerr
			}
			for _, line := range strings.Split(string(b), "\n") {
				line = strings.TrimSpace(line)
				if strings.HasPrefix(line, "module ") {
					return dir, strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "module ")), `"`), nil
				}
			}
			return "", "", &cmdError{msg: "module directive not found in " + filepath.ToSlash(gomod)}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", &cmdError{msg: "go.mod not found above " + filepath.ToSlash(startDir)}
		}
		dir = parent
	}
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// -------------------------
// Misc helpers
// -------------------------

func usesScene(steps []Step) bool {
	for _, st := range steps {
		if st.Sphere != nil {
			return true
		}
	}
	return false
}

func sphereFields(s *SphereStep) []field {
	var out []field
	addF := func(name string, v float64) {
		if v != 0 {
			out = append(out, field{Name: name, Value: formatFloat(v)})
		}
	}
	addF("Diameter", s.Diameter)
	addF("DiameterX", s.DiameterX)
	addF("DiameterY", s.DiameterY)
	addF("DiameterZ", s.DiameterZ)
	if s.Segments != 0 {
		out = append(out, field{Name: "Segments", Value: strconv.Itoa(s.Segments)})
	}
	addF("Arc", s.Arc)
	addF("Slice", s.Slice)
	return out
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func isExported(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func mustRead(path string) []byte {
	b, err := os.ReadFile(path)
	must(err)
	return b
}

func mustExecTemplate(tpl *template.Template, data any) []byte {
	var sb strings.Builder
	must(tpl.Execute(&sb, data))
	return []byte(sb.String())
}

func writeFormatted(out string, src []byte) {
	fmtSrc, err := format.Source(src)
	if err != nil {
		_ = os.WriteFile(out, src, 0o644)
		die("gofmt/format failed: " + err.Error())
	}
	must(os.WriteFile(out, fmtSrc, 0o644))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func die(msg string) {
	panic(msg)
}

// -------------------------
// Templates
// -------------------------

var sketchTpl = template.Must(
	template.New("sketch").
		Funcs(template.FuncMap{
			"quote":        strconv.Quote,
			"float":        formatFloat,
			"sphereFields": sphereFields,
		}).
		Parse(`// Code generated by sketchgen; DO NOT EDIT.
// Spec: {{.SpecPath}}
// Spec-SHA256: {{.SpecHash}}

package {{.Spec.Package}}

import (
	"{{.Spec.Imports.Renderer}}"
{{- if .UsesScene }}
	"{{.Spec.Imports.Scene}}"
{{- end }}
)

{{- if .Spec.Name }}

// Sketch{{.Spec.Var}} is the catalog name of {{.Spec.Var}}.
const Sketch{{.Spec.Var}} = {{ quote .Spec.Name }}
{{- end }}

{{ if .Spec.Doc }}// {{.Spec.Var}} {{.Spec.Doc}}
{{ end -}}
var {{.Spec.Var}} = renderer.DefineSketch(func(c renderer.Context) error {
{{- range .Spec.Steps }}
{{- if .Light }}
	if _, err := c.HemisphericLight({{ quote .Light.Name }}, c.Vector3({{ float (index .Light.Direction 0) }}, {{ float (index .Light.Direction 1) }}, {{ float (index .Light.Direction 2) }}), c.Scene); err != nil {
		return err
	}
{{- else }}
	if _, err := c.MeshBuilder.CreateSphere({{ quote .Sphere.Name }}, scene.SphereOptions{ {{- range $i, $f := sphereFields .Sphere }}{{ if $i }}, {{ end }}{{ $f.Name }}: {{ $f.Value }}{{ end -}} }, c.Scene); err != nil {
		return err
	}
{{- end }}
{{- end }}
	return nil
})
`),
)
