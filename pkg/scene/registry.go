package scene

import (
	"fmt"
	"sort"
)

// Integrator names understood by the renderer front end
const (
	IntegratorPath    = "path"
	IntegratorWhitted = "whitted"
)

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	Integrator  string // Integrator the scene is designed for
	Build       func() *Scene
}

var builtins = map[string]Info{
	"default": {
		Name:        "default",
		Description: "Diffuse, hollow glass and fuzzy metal spheres with depth of field",
		Integrator:  IntegratorPath,
		Build:       NewDefaultScene,
	},
	"bouncing": {
		Name:        "bouncing",
		Description: "Field of small random spheres with motion blur over a checkered ground",
		Integrator:  IntegratorPath,
		Build:       NewBouncingSpheresScene,
	},
	"cornell-smoke": {
		Name:        "cornell-smoke",
		Description: "Cornell box with two rotated blocks of smoke and fog",
		Integrator:  IntegratorPath,
		Build:       NewCornellSmokeScene,
	},
	"whitted": {
		Name:        "whitted",
		Description: "Phong shaded scene with point lights, nested glass and a CSG lens",
		Integrator:  IntegratorWhitted,
		Build:       NewWhittedScene,
	},
	"globe": {
		Name:        "globe",
		Description: "Sphere textured with an embedded planet map",
		Integrator:  IntegratorPath,
		Build:       NewGlobeScene,
	},
	"perlin": {
		Name:        "perlin",
		Description: "Marble Perlin noise spheres beside a gradient panel light",
		Integrator:  IntegratorPath,
		Build:       NewPerlinScene,
	},
	"shapes": {
		Name:        "shapes",
		Description: "Cylinder, cone, cube, triangle and mesh primitives under an area light",
		Integrator:  IntegratorPath,
		Build:       NewShapesScene,
	},
}

// List returns every built-in scene sorted by name
func List() []Info {
	infos := make([]Info, 0, len(builtins))
	for _, info := range builtins {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Lookup returns the description of a built-in scene
func Lookup(name string) (Info, error) {
	info, ok := builtins[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return info, nil
}

// New builds the named scene. The scene is not yet preprocessed so callers
// can override its camera and sampling configuration first.
func New(name string) (*Scene, error) {
	info, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	s := info.Build()
	s.Name = info.Name
	return s, nil
}
