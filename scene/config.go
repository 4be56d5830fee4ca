package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom2d"
)

var (
	// ErrUnknownFormat is returned by LoadFile for an unsupported file extension.
	ErrUnknownFormat = errors.New("scene: unknown file format")

	// ErrUnknownKind is returned for a shape kind the scene does not support.
	ErrUnknownKind = errors.New("scene: unknown shape kind")

	// ErrBadVector is returned when a point or vector does not have exactly two components.
	ErrBadVector = errors.New("scene: vector must have two components")

	// ErrRayAim is returned when a ray sets both or neither of direction and toward.
	ErrRayAim = errors.New("scene: ray needs exactly one of direction or toward")

	// ErrBadTransform is returned when a transform step sets zero or several operations.
	ErrBadTransform = errors.New("scene: transform step needs exactly one operation")

	// ErrDuplicateName is returned when two rays or two shapes share a name.
	ErrDuplicateName = errors.New("scene: duplicate name")
)

// Config is the file representation of a scene. It decodes from YAML or
// TOML. Points and vectors are written as two-element lists.
type Config struct {
	Rays   []RayConfig   `yaml:"rays" toml:"rays"`
	Shapes []ShapeConfig `yaml:"shapes" toml:"shapes"`
	Query  QueryConfig   `yaml:"query" toml:"query"`
}

// RayConfig describes one ray. Exactly one of Direction and Toward is set.
type RayConfig struct {
	Name      string    `yaml:"name" toml:"name"`
	Origin    []float64 `yaml:"origin" toml:"origin"`
	Direction []float64 `yaml:"direction,omitempty" toml:"direction,omitempty"`
	Toward    []float64 `yaml:"toward,omitempty" toml:"toward,omitempty"`
}

// ShapeConfig describes one shape. Kind selects which fields are read:
//
//	rect      min, max
//	circle    center, radius
//	segment   a, b
//	polygon   points (closed)
//	polyline  points (open)
//	entity    transform, meshes
type ShapeConfig struct {
	Name      string            `yaml:"name" toml:"name"`
	Kind      string            `yaml:"kind" toml:"kind"`
	Min       []float64         `yaml:"min,omitempty" toml:"min,omitempty"`
	Max       []float64         `yaml:"max,omitempty" toml:"max,omitempty"`
	Center    []float64         `yaml:"center,omitempty" toml:"center,omitempty"`
	Radius    float64           `yaml:"radius,omitempty" toml:"radius,omitempty"`
	A         []float64         `yaml:"a,omitempty" toml:"a,omitempty"`
	B         []float64         `yaml:"b,omitempty" toml:"b,omitempty"`
	Points    [][]float64       `yaml:"points,omitempty" toml:"points,omitempty"`
	Transform []TransformConfig `yaml:"transform,omitempty" toml:"transform,omitempty"`
	Meshes    []MeshConfig      `yaml:"meshes,omitempty" toml:"meshes,omitempty"`
}

// TransformConfig is one step of an entity transform. Steps apply to mesh
// vertices in the order listed. Rotate is in degrees.
type TransformConfig struct {
	Translate []float64 `yaml:"translate,omitempty" toml:"translate,omitempty"`
	Scale     []float64 `yaml:"scale,omitempty" toml:"scale,omitempty"`
	Rotate    *float64  `yaml:"rotate,omitempty" toml:"rotate,omitempty"`
	Shear     []float64 `yaml:"shear,omitempty" toml:"shear,omitempty"`
}

// MeshConfig holds mesh vertices in local space and faces as index loops.
type MeshConfig struct {
	Vertices [][]float64 `yaml:"vertices" toml:"vertices"`
	Faces    [][]int     `yaml:"faces" toml:"faces"`
}

// QueryConfig holds default query options for every ray of the scene.
// Zero values mean no restriction.
type QueryConfig struct {
	MaxDistance float64 `yaml:"max_distance,omitempty" toml:"max_distance,omitempty"`
	Limit       int     `yaml:"limit,omitempty" toml:"limit,omitempty"`
}

// LoadYAML loads a scene config from a YAML reader.
// Unknown fields are rejected.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("scene: decode yaml: %w", err)
	}
	return &c, nil
}

// LoadTOML loads a scene config from a TOML reader.
// Unknown fields are rejected.
func LoadTOML(r io.Reader) (*Config, error) {
	var c Config
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("scene: decode toml: %w", err)
	}
	return &c, nil
}

// LoadFile loads a scene config, picking the format from the extension
// (.yaml, .yml or .toml).
func LoadFile(path string) (*Config, error) {
	var load func(io.Reader) (*Config, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".toml":
		load = LoadTOML
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	geom2d.Logger().Info("scene: loaded",
		slog.String("path", path),
		slog.Int("rays", len(c.Rays)),
		slog.Int("shapes", len(c.Shapes)))
	return c, nil
}

// Options returns the query options described by the config.
func (q QueryConfig) Options() []geom2d.QueryOption {
	var opts []geom2d.QueryOption
	if q.MaxDistance > 0 {
		opts = append(opts, geom2d.WithMaxDistance(q.MaxDistance))
	}
	if q.Limit > 0 {
		opts = append(opts, geom2d.WithLimit(q.Limit))
	}
	return opts
}

// Build validates the config and constructs the scene. Unnamed rays and
// shapes are named after their kind and position.
func (c *Config) Build() (*Scene, error) {
	rays := make([]NamedRay, 0, len(c.Rays))
	seen := make(map[string]bool)
	for i, rc := range c.Rays {
		name := rc.Name
		if name == "" {
			name = fmt.Sprintf("ray%d", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("ray %q: %w", name, ErrDuplicateName)
		}
		seen[name] = true

		r, err := rc.ray()
		if err != nil {
			return nil, fmt.Errorf("ray %q: %w", name, err)
		}
		rays = append(rays, NamedRay{Name: name, Ray: r})
	}

	shapes := make([]Shape, 0, len(c.Shapes))
	clear(seen)
	for i, sc := range c.Shapes {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("%s%d", strings.ToLower(sc.Kind), i)
		}
		if seen[name] {
			return nil, fmt.Errorf("shape %q: %w", name, ErrDuplicateName)
		}
		seen[name] = true

		s, err := sc.shape(name)
		if err != nil {
			geom2d.Logger().Warn("scene: rejected shape", slog.String("shape", name), slog.Any("err", err))
			return nil, fmt.Errorf("shape %q: %w", name, err)
		}
		shapes = append(shapes, s)
	}

	return New(rays, shapes, c.Query.Options()...), nil
}

func (rc RayConfig) ray() (geom2d.Ray, error) {
	origin, err := point("origin", rc.Origin)
	if err != nil {
		return geom2d.Ray{}, err
	}

	var r geom2d.Ray
	switch {
	case rc.Direction != nil && rc.Toward == nil:
		d, err := point("direction", rc.Direction)
		if err != nil {
			return geom2d.Ray{}, err
		}
		r = geom2d.NewRay(origin, d)
	case rc.Toward != nil && rc.Direction == nil:
		to, err := point("toward", rc.Toward)
		if err != nil {
			return geom2d.Ray{}, err
		}
		r = geom2d.RayFromPoints(origin, to)
	default:
		return geom2d.Ray{}, ErrRayAim
	}

	if err := geom2d.ValidateRay(r); err != nil {
		return geom2d.Ray{}, err
	}
	return r, nil
}

func (sc ShapeConfig) shape(name string) (Shape, error) {
	switch strings.ToLower(sc.Kind) {
	case "rect":
		lo, err := point("min", sc.Min)
		if err != nil {
			return nil, err
		}
		hi, err := point("max", sc.Max)
		if err != nil {
			return nil, err
		}
		s := NewRectShape(name, lo, hi)
		if err := geom2d.ValidateRect(s.Rect); err != nil {
			return nil, err
		}
		return s, nil

	case "circle":
		center, err := point("center", sc.Center)
		if err != nil {
			return nil, err
		}
		if err := geom2d.ValidateCircle(sc.Radius); err != nil {
			return nil, err
		}
		return NewCircleShape(name, center, sc.Radius), nil

	case "segment":
		a, err := point("a", sc.A)
		if err != nil {
			return nil, err
		}
		b, err := point("b", sc.B)
		if err != nil {
			return nil, err
		}
		if err := geom2d.ValidateSegment(a, b); err != nil {
			return nil, err
		}
		return NewSegmentShape(name, a, b), nil

	case "polygon", "polyline":
		pts, err := points("points", sc.Points)
		if err != nil {
			return nil, err
		}
		if len(pts) < 2 {
			return nil, fmt.Errorf("%d points: %w", len(pts), geom2d.ErrShortFace)
		}
		if strings.EqualFold(sc.Kind, "polyline") {
			return NewPolylineShape(name, pts...), nil
		}
		return NewPolygonShape(name, pts...), nil

	case "entity":
		m, err := transform(sc.Transform)
		if err != nil {
			return nil, err
		}
		e := geom2d.NewEntity(m)
		for i, mc := range sc.Meshes {
			verts, err := points(fmt.Sprintf("meshes[%d].vertices", i), mc.Vertices)
			if err != nil {
				return nil, err
			}
			e.Meshes = append(e.Meshes, &geom2d.Mesh{Vertices: verts, Faces: mc.Faces})
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		return NewEntityShape(name, e), nil
	}
	return nil, fmt.Errorf("%q: %w", sc.Kind, ErrUnknownKind)
}

// transform composes the steps so that the first listed step is applied
// to vertices first.
func transform(steps []TransformConfig) (geom2d.Matrix, error) {
	m := geom2d.Identity()
	for i, st := range steps {
		var step geom2d.Matrix
		n := 0
		if st.Translate != nil {
			v, err := point(fmt.Sprintf("transform[%d].translate", i), st.Translate)
			if err != nil {
				return m, err
			}
			step = geom2d.Translate(v.X, v.Y)
			n++
		}
		if st.Scale != nil {
			v, err := point(fmt.Sprintf("transform[%d].scale", i), st.Scale)
			if err != nil {
				return m, err
			}
			step = geom2d.Scale(v.X, v.Y)
			n++
		}
		if st.Rotate != nil {
			step = geom2d.Rotate(*st.Rotate * math.Pi / 180)
			n++
		}
		if st.Shear != nil {
			v, err := point(fmt.Sprintf("transform[%d].shear", i), st.Shear)
			if err != nil {
				return m, err
			}
			step = geom2d.Shear(v.X, v.Y)
			n++
		}
		if n != 1 {
			return m, fmt.Errorf("transform[%d] has %d operations: %w", i, n, ErrBadTransform)
		}
		m = step.Multiply(m)
	}
	return m, nil
}

func point(field string, v []float64) (geom2d.Point, error) {
	if len(v) != 2 {
		return geom2d.Point{}, fmt.Errorf("%s has %d components: %w", field, len(v), ErrBadVector)
	}
	return geom2d.Pt(v[0], v[1]), nil
}

func points(field string, vs [][]float64) ([]geom2d.Point, error) {
	out := make([]geom2d.Point, 0, len(vs))
	for i, v := range vs {
		p, err := point(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
