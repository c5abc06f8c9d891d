// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Rect is a SVG rectangle, optionally with rounded corners.
type Rect struct {
	NodeBase

	// Pos is the position of the top-left of the rectangle.
	Pos math32.Vector2

	// Size is the size of the rectangle.
	Size math32.Vector2

	// Radius is the radii for curved corners. Ignored for bounds purposes.
	Radius math32.Vector2
}

func (g *Rect) SVGName() string { return "rect" }

func (g *Rect) LocalBBox() math32.Box2 {
	return math32.B2(g.Pos.X, g.Pos.Y, g.Pos.X+g.Size.X, g.Pos.Y+g.Size.Y)
}
