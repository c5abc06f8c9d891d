// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Path is a SVG path, rendering arbitrary shape data.
type Path struct {
	NodeBase

	// Data is the compiled path data: commands and numbers serialized
	// in source order, with each command specifying the number of
	// floating-point data values that follow.
	Data []PathData

	// DataStr is the string version of the path data.
	DataStr string
}

func (g *Path) SVGName() string { return "path" }

// SetData sets the path data to given string, parsing it into the
// compiled form used for geometry computation.
func (g *Path) SetData(data string) error {
	g.DataStr = data
	var err error
	g.Data, err = PathDataParse(data)
	return err
}

// UpdatePathString sets the path string from the Data.
func (g *Path) UpdatePathString() {
	g.DataStr = PathDataString(g.Data)
}

func (g *Path) LocalBBox() math32.Box2 {
	return PathDataBBox(g.Data)
}

// Length returns the estimated stroke length of the path,
// per [PathDataLength].
func (g *Path) Length() float32 {
	return PathDataLength(g.Data)
}
