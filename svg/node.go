// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/svgprep/core/math32"
)

// Node is the interface for all SVG nodes.
type Node interface {

	// AsNodeBase returns the [NodeBase] for our node, which gives
	// access to all the base-level data structures and methods
	// without requiring interface methods.
	AsNodeBase() *NodeBase

	// SVGName returns the SVG element name (e.g., "rect", "path" etc).
	SVGName() string

	// LocalBBox returns the axis-aligned bounding box of the node in
	// document coordinates. A box for which [math32.Box2.IsEmpty] is true
	// means the node has no defined bounds and must be excluded from
	// any aggregation, which is different from a zero-size box.
	LocalBBox() math32.Box2
}

// Walk function return values, for readability.
const (
	// Continue = true can be returned from tree walking functions to continue
	// processing down the tree.
	Continue = true

	// Break = false can be returned from tree walking functions to stop
	// processing the children of the current node.
	Break = false
)

// NodeBase is the base type for all elements within an SVG tree.
// It implements the [Node] interface and contains the core functionality.
type NodeBase struct {

	// Name is the id of the element. Elements parsed without an id are
	// assigned one deterministically from their tag and document position,
	// because downstream animation code binds to these ids.
	Name string

	// Class contains user-defined class name(s), used primarily for
	// attaching CSS styles to different display elements.
	Class string

	// Properties are the presentation and other non-geometry attributes
	// of the element (stroke, fill, stroke-width, dash settings, etc),
	// carried as opaque strings.
	Properties map[string]any
}

func (g *NodeBase) AsNodeBase() *NodeBase { return g }
func (g *NodeBase) SVGName() string       { return "base" }

func (g *NodeBase) LocalBBox() math32.Box2 { return math32.B2Empty() }

// SetName sets the element id.
func (g *NodeBase) SetName(nm string) { g.Name = nm }

// SetProperty sets the given property to the given value.
func (g *NodeBase) SetProperty(key string, val any) {
	if g.Properties == nil {
		g.Properties = map[string]any{}
	}
	g.Properties[key] = val
}

// Property returns the string value of the given property,
// or "" if it is not set.
func (g *NodeBase) Property(key string) string {
	if g.Properties == nil {
		return ""
	}
	v, has := g.Properties[key]
	if !has {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// DeleteProperty removes the given property.
func (g *NodeBase) DeleteProperty(key string) {
	delete(g.Properties, key)
}

// Stroke returns the stroke color property, or "" if not set.
func (g *NodeBase) Stroke() string { return g.Property("stroke") }

// Fill returns the fill color property, or "" if not set.
func (g *NodeBase) Fill() string { return g.Property("fill") }

// WalkDown calls the given function on the node and then recursively on
// all of its children (in document order for groups), depth first.
// The function returns [Continue] to continue into a node's children,
// [Break] to skip them.
func WalkDown(n Node, fun func(sn Node) bool) {
	if !fun(n) {
		return
	}
	if gp, isgp := n.(*Group); isgp {
		for _, kid := range gp.Children {
			WalkDown(kid, fun)
		}
	}
}
