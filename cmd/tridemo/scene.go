package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"github.com/gogpu/tilerast"
)

// Scene is a TOML scene description.
//
//	width = 256
//	height = 256
//	cull = "back"
//	clear = "#202030"
//
//	[[triangle]]
//	v = [[10.0, 10.0], [240.0, 30.0], [60.0, 220.0]]
//	color = "tomato"
type Scene struct {
	Width     int        `toml:"width"`
	Height    int        `toml:"height"`
	Workers   int        `toml:"workers"`
	Cull      string     `toml:"cull"`
	FrontFace string     `toml:"front_face"`
	Clear     string     `toml:"clear"`
	Output    string     `toml:"output"`
	Scissor   *Rect      `toml:"scissor"`
	Clip      []Clip     `toml:"clip"`
	Triangles []Triangle `toml:"triangle"`
}

// Rect is a pixel rectangle.
type Rect struct {
	Min [2]int `toml:"min"`
	Max [2]int `toml:"max"`
}

// Clip is a clip half-plane a*x + b*y + c > 0.
type Clip struct {
	A int32 `toml:"a"`
	B int32 `toml:"b"`
	C int32 `toml:"c"`
}

// Triangle is one filled triangle.
type Triangle struct {
	V       [3][2]float32 `toml:"v"`
	Color   string        `toml:"color"`
	Discard bool          `toml:"discard"`
}

// LoadScene decodes a scene, rejecting unknown keys.
func LoadScene(r io.Reader) (*Scene, error) {
	var s Scene
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene: invalid size %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// Options converts the scene settings to renderer options.
func (s *Scene) Options() ([]tilerast.Option, error) {
	var opts []tilerast.Option
	if s.Workers > 0 {
		opts = append(opts, tilerast.WithWorkers(s.Workers))
	}

	switch strings.ToLower(s.Cull) {
	case "", "none":
		opts = append(opts, tilerast.WithCullMode(gputypes.CullModeNone))
	case "front":
		opts = append(opts, tilerast.WithCullMode(gputypes.CullModeFront))
	case "back":
		opts = append(opts, tilerast.WithCullMode(gputypes.CullModeBack))
	default:
		return nil, fmt.Errorf("scene: unknown cull mode %q", s.Cull)
	}

	switch strings.ToLower(s.FrontFace) {
	case "", "ccw":
		opts = append(opts, tilerast.WithFrontFace(gputypes.FrontFaceCCW))
	case "cw":
		opts = append(opts, tilerast.WithFrontFace(gputypes.FrontFaceCW))
	default:
		return nil, fmt.Errorf("scene: unknown front face %q", s.FrontFace)
	}

	if s.Clear != "" {
		c, err := parseColor(s.Clear)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tilerast.WithClearColor(c))
	}
	if s.Scissor != nil {
		opts = append(opts, tilerast.WithScissor(image.Rect(
			s.Scissor.Min[0], s.Scissor.Min[1], s.Scissor.Max[0], s.Scissor.Max[1])))
	}
	for _, c := range s.Clip {
		opts = append(opts, tilerast.WithClipPlanes(tilerast.ClipPlane{A: c.A, B: c.B, C: c.C}))
	}
	return opts, nil
}

// Render draws the scene with the given extra options and returns the
// canvas and the renderer statistics.
func (s *Scene) Render(ctx context.Context, extra ...tilerast.Option) (*image.RGBA, tilerast.Stats, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, tilerast.Stats{}, err
	}
	r, err := tilerast.New(s.Width, s.Height, append(opts, extra...)...)
	if err != nil {
		return nil, tilerast.Stats{}, err
	}
	defer r.Close()

	for i, t := range s.Triangles {
		c, err := parseColor(t.Color)
		if err != nil {
			return nil, tilerast.Stats{}, fmt.Errorf("triangle %d: %w", i, err)
		}
		id, err := r.DrawTriangle(
			tilerast.Pt(t.V[0][0], t.V[0][1]),
			tilerast.Pt(t.V[1][0], t.V[1][1]),
			tilerast.Pt(t.V[2][0], t.V[2][1]),
			c)
		if err != nil {
			return nil, tilerast.Stats{}, fmt.Errorf("triangle %d: %w", i, err)
		}
		if t.Discard && id != tilerast.NoTriangle {
			if err := r.Discard(id); err != nil {
				return nil, tilerast.Stats{}, fmt.Errorf("triangle %d: %w", i, err)
			}
		}
	}

	if err := r.FlushContext(ctx); err != nil {
		return nil, tilerast.Stats{}, err
	}
	return r.Image(), r.Stats(), nil
}

// parseColor accepts an SVG color name, "#rrggbb" or "#rrggbbaa". The
// empty string is opaque white.
func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("scene: invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("scene: invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
