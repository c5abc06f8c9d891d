// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svgprep/core/math32"
)

func TestShapeBBoxes(t *testing.T) {
	rect := &Rect{Pos: math32.Vec2(10, 10), Size: math32.Vec2(20, 30)}
	assert.Equal(t, math32.B2(10, 10, 30, 40), rect.LocalBBox())

	circle := &Circle{Pos: math32.Vec2(50, 50), Radius: 10}
	assert.Equal(t, math32.B2(40, 40, 60, 60), circle.LocalBBox())

	ellipse := &Ellipse{Pos: math32.Vec2(0, 0), Radii: math32.Vec2(4, 2)}
	assert.Equal(t, math32.B2(-4, -2, 4, 2), ellipse.LocalBBox())

	line := &Line{Start: math32.Vec2(5, 9), End: math32.Vec2(1, 3)}
	assert.Equal(t, math32.B2(1, 3, 5, 9), line.LocalBBox())
}

func TestZeroSizeBBoxNotEmpty(t *testing.T) {
	// a zero-size box is defined bounds, distinct from no bounds
	rect := &Rect{Pos: math32.Vec2(5, 5)}
	assert.False(t, rect.LocalBBox().IsEmpty())
	assert.Equal(t, math32.Vector2{}, rect.LocalBBox().Size())
}

func TestPolylineBBox(t *testing.T) {
	pl := &Polyline{Points: []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}
	assert.Equal(t, math32.B2(0, 0, 10, 10), pl.LocalBBox())
	assert.InDelta(t, 20, pl.Length(), 1e-4)

	// fewer than two points has no defined bounds
	single := &Polyline{Points: []math32.Vector2{{X: 3, Y: 3}}}
	assert.True(t, single.LocalBBox().IsEmpty())
	assert.Equal(t, float32(0), single.Length())
}

func TestPolygonLength(t *testing.T) {
	pg := &Polygon{}
	pg.Points = []math32.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	// polyline length plus the implicit closing segment back to the start
	assert.InDelta(t, 20+math32.Hypot(10, 10), pg.Length(), 1e-4)
}

func TestGroupBBoxUnion(t *testing.T) {
	gp := &Group{}
	gp.AddChild(&Rect{Pos: math32.Vec2(0, 0), Size: math32.Vec2(10, 10)})
	gp.AddChild(&Circle{Pos: math32.Vec2(50, 50), Radius: 5})
	assert.Equal(t, math32.B2(0, 0, 55, 55), gp.LocalBBox())
}

func TestGroupBBoxEmpty(t *testing.T) {
	gp := &Group{}
	assert.True(t, gp.LocalBBox().IsEmpty())

	// a group whose only children lack bounds also has none
	gp.AddChild(&Polyline{})
	assert.True(t, gp.LocalBBox().IsEmpty())
}

func TestWalkDown(t *testing.T) {
	outer := &Group{}
	inner := &Group{}
	r1 := &Rect{}
	r1.SetName("r1")
	r2 := &Rect{}
	r2.SetName("r2")
	inner.AddChild(r2)
	outer.AddChild(r1)
	outer.AddChild(inner)

	var order []string
	WalkDown(outer, func(sn Node) bool {
		order = append(order, sn.SVGName()+":"+sn.AsNodeBase().Name)
		return Continue
	})
	assert.Equal(t, []string{"g:", "rect:r1", "g:", "rect:r2"}, order)
}

func TestNodeProperties(t *testing.T) {
	nb := &NodeBase{}
	assert.Equal(t, "", nb.Stroke())
	nb.SetProperty("stroke", "#000")
	nb.SetProperty("fill", "none")
	assert.Equal(t, "#000", nb.Stroke())
	assert.Equal(t, "none", nb.Fill())
	nb.DeleteProperty("stroke")
	assert.Equal(t, "", nb.Stroke())
}
