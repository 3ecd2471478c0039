package main

import (
	"fmt"
	"math"
)

// demoScene returns a fan of triangles around the canvas center with a
// back-facing triangle that is culled and one that is discarded.
func demoScene() *Scene {
	const (
		size   = 512
		spokes = 24
		radius = 230
	)
	s := &Scene{
		Width:  size,
		Height: size,
		Cull:   "back",
		Clear:  "#101018",
	}

	cx, cy := float32(size/2), float32(size/2)
	for i := range spokes {
		a0 := 2 * math.Pi * float64(i) / spokes
		a1 := 2 * math.Pi * float64(i+1) / spokes
		// Increasing angle is counter-clockwise on screen.
		s.Triangles = append(s.Triangles, Triangle{
			V: [3][2]float32{
				{cx, cy},
				{cx + radius*float32(math.Cos(a0)), cy - radius*float32(math.Sin(a0))},
				{cx + radius*float32(math.Cos(a1)), cy - radius*float32(math.Sin(a1))},
			},
			Color: fmt.Sprintf("#%02x%02x%02x", 40+i*8, 200-i*6, 120+i*5),
		})
	}

	s.Triangles = append(s.Triangles,
		// Clockwise: culled.
		Triangle{V: [3][2]float32{{20, 20}, {200, 20}, {20, 200}}, Color: "red"},
		// Discarded before drawing.
		Triangle{V: [3][2]float32{{300, 300}, {300, 500}, {500, 300}}, Color: "yellow", Discard: true},
	)
	return s
}
