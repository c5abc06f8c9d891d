// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/svgprep/core/math32"
)

// ViewBox is used in SVG to define the region of document coordinate
// space mapped onto the visible rendering area.
type ViewBox struct {

	// Min is the offset or starting point of the viewbox.
	Min math32.Vector2

	// Size is the size of the viewbox.
	Size math32.Vector2
}

// Defaults returns viewbox to defaults.
func (vb *ViewBox) Defaults() {
	vb.Min = math32.Vector2{}
	vb.Size = math32.Vector2{}
}

// Valid returns whether the viewbox has a positive size.
func (vb ViewBox) Valid() bool {
	return vb.Size.X > 0 && vb.Size.Y > 0
}

// AspectRatio returns width / height of the viewbox,
// or 0 for an invalid viewbox.
func (vb ViewBox) AspectRatio() float32 {
	if !vb.Valid() {
		return 0
	}
	return vb.Size.X / vb.Size.Y
}

// Box2 returns the viewbox as a [math32.Box2].
func (vb ViewBox) Box2() math32.Box2 {
	return math32.Box2{Min: vb.Min, Max: vb.Min.Add(vb.Size)}
}

// SetString sets the viewbox from a whitespace / comma separated
// 4-number attribute string; anything else is an error.
func (vb *ViewBox) SetString(val string) error {
	pts := math32.ReadPoints(val)
	if len(pts) != 4 {
		return fmt.Errorf("svg.ViewBox: expected 4 numbers, got %d in %q", len(pts), val)
	}
	vb.Min.Set(pts[0], pts[1])
	vb.Size.Set(pts[2], pts[3])
	return nil
}

// String returns the 4-number attribute form of the viewbox.
func (vb ViewBox) String() string {
	return fmt.Sprintf("%g %g %g %g", vb.Min.X, vb.Min.Y, vb.Size.X, vb.Size.Y)
}
