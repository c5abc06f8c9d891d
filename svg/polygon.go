// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Polygon is a SVG polygon: a closed polyline.
type Polygon struct {
	Polyline
}

func (g *Polygon) SVGName() string { return "polygon" }

// Length returns the cumulative segment length including the closing
// segment back to the first point.
func (g *Polygon) Length() float32 {
	tot := g.Polyline.Length()
	if np := len(g.Points); np > 2 {
		tot += g.Points[np-1].DistanceTo(g.Points[0])
	}
	return tot
}
