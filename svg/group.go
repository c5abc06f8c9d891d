// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Group groups together SVG elements. It doesn't do much but provide a
// locus for shared properties and an aggregation point for bounds.
type Group struct {
	NodeBase

	// Children are the elements inside this group, in document order.
	Children []Node
}

func (g *Group) SVGName() string { return "g" }

// AddChild appends the given node to this group's children.
func (g *Group) AddChild(n Node) {
	g.Children = append(g.Children, n)
}

// LocalBBox returns the union envelope of the children's boxes.
// A group with no bounded children has no defined bounds.
func (g *Group) LocalBBox() math32.Box2 {
	bb := math32.B2Empty()
	for _, kid := range g.Children {
		kb := kid.LocalBBox()
		if kb.IsEmpty() {
			continue
		}
		bb.ExpandByBox(kb)
	}
	return bb
}
