// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Circle is a SVG circle.
type Circle struct {
	NodeBase

	// Pos is the position of the center of the circle.
	Pos math32.Vector2

	// Radius is the radius of the circle.
	Radius float32
}

func (g *Circle) SVGName() string { return "circle" }

func (g *Circle) LocalBBox() math32.Box2 {
	return math32.B2(g.Pos.X-g.Radius, g.Pos.Y-g.Radius, g.Pos.X+g.Radius, g.Pos.Y+g.Radius)
}
