// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Line is a SVG line.
type Line struct {
	NodeBase

	// Start is the position of the start of the line.
	Start math32.Vector2

	// End is the position of the end of the line.
	End math32.Vector2
}

func (g *Line) SVGName() string { return "line" }

func (g *Line) LocalBBox() math32.Box2 {
	return math32.Box2{Min: g.Start, Max: g.End}.Canon()
}

// Length returns the length of the line, for stroke-draw animation sizing.
func (g *Line) Length() float32 {
	return g.Start.DistanceTo(g.End)
}
