// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "github.com/svgprep/core/svg"

// FlattenGroups returns a copy of the document tree with every
// single-child group collapsed into its child, bottom-up. A collapsed
// group's id transfers to the child when the child has none, so element
// addressing survives the rewrite. The input tree is not mutated; the
// aggregate bounding box of the result is identical to the input's.
func FlattenGroups(root *svg.Group) *svg.Group {
	return flattenGroup(root)
}

func flattenGroup(gp *svg.Group) *svg.Group {
	ng := &svg.Group{NodeBase: gp.NodeBase}
	for _, kid := range gp.Children {
		ng.AddChild(flattenNode(kid))
	}
	return ng
}

func flattenNode(n svg.Node) svg.Node {
	gp, isgp := n.(*svg.Group)
	if !isgp {
		return n
	}
	ng := flattenGroup(gp)
	if len(ng.Children) != 1 {
		return ng
	}
	only := ng.Children[0]
	if ng.Name == "" || only.AsNodeBase().Name != "" {
		return only
	}
	return renamedCopy(only, ng.Name)
}

// renamedCopy returns a shallow copy of the node carrying the given id,
// leaving the original untouched.
func renamedCopy(n svg.Node, id string) svg.Node {
	var cp svg.Node
	switch nd := n.(type) {
	case *svg.Group:
		c := *nd
		cp = &c
	case *svg.Rect:
		c := *nd
		cp = &c
	case *svg.Circle:
		c := *nd
		cp = &c
	case *svg.Ellipse:
		c := *nd
		cp = &c
	case *svg.Line:
		c := *nd
		cp = &c
	case *svg.Polygon:
		c := *nd
		cp = &c
	case *svg.Polyline:
		c := *nd
		cp = &c
	case *svg.Path:
		c := *nd
		cp = &c
	default:
		return n
	}
	cp.AsNodeBase().SetName(id)
	return cp
}
