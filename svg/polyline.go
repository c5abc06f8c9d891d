// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Polyline is a SVG multi-line shape.
type Polyline struct {
	NodeBase

	// Points are the coordinates to draw: a moveto on the first,
	// then lineto for all the rest.
	Points []math32.Vector2
}

func (g *Polyline) SVGName() string { return "polyline" }

// LocalBBox returns the envelope over all points.
// Fewer than 2 points means no defined bounds.
func (g *Polyline) LocalBBox() math32.Box2 {
	bb := math32.B2Empty()
	if len(g.Points) < 2 {
		return bb
	}
	bb.SetFromPoints(g.Points)
	return bb
}

// Length returns the cumulative segment length, for stroke-draw
// animation sizing.
func (g *Polyline) Length() float32 {
	var tot float32
	for i := 1; i < len(g.Points); i++ {
		tot += g.Points[i-1].DistanceTo(g.Points[i])
	}
	return tot
}
