// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Ellipse is a SVG ellipse.
type Ellipse struct {
	NodeBase

	// Pos is the position of the center of the ellipse.
	Pos math32.Vector2

	// Radii is the radii of the ellipse in the horizontal, vertical axes.
	Radii math32.Vector2
}

func (g *Ellipse) SVGName() string { return "ellipse" }

func (g *Ellipse) LocalBBox() math32.Box2 {
	return math32.B2(g.Pos.X-g.Radii.X, g.Pos.Y-g.Radii.Y, g.Pos.X+g.Radii.X, g.Pos.Y+g.Radii.Y)
}
