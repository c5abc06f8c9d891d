// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"

	"github.com/svgprep/core/math32"
)

// SVG is an SVG document: the parsed shape tree plus document-level
// geometry. All values are constructed fresh per document; an SVG holds
// no shared mutable state, so independent documents can be processed
// concurrently.
type SVG struct {

	// Name is the name of the SVG -- e.g., the filename if loaded.
	Name string

	// Title is the title of the svg.
	Title string `xml:"title"`

	// Desc is the description of the svg.
	Desc string `xml:"desc"`

	// ViewBox defines the coordinate system of the document.
	// Invalid (zero size) if the source did not declare one.
	ViewBox ViewBox

	// PhysicalWidth is the declared width attribute of the document,
	// 0 if absent.
	PhysicalWidth float32

	// PhysicalHeight is the declared height attribute of the document,
	// 0 if absent.
	PhysicalHeight float32

	// PreserveAspectRatio is the declared preserveAspectRatio attribute,
	// "" if absent.
	PreserveAspectRatio string

	// Root is the root of the shape tree. The root group itself carries
	// no geometry; its children are the document's top-level elements.
	Root *Group
}

// NewSVG returns a new, empty SVG document.
func NewSVG() *SVG {
	sv := &SVG{}
	sv.Root = &Group{}
	return sv
}

// DeleteAll deletes all content in the document, retaining
// document-level attributes.
func (sv *SVG) DeleteAll() {
	sv.Root = &Group{}
}

// ContentBounds returns the aggregate bounding box of all shapes in the
// document (flattening groups): the fold of [Node.LocalBBox] over every
// element. The result is empty if no element has defined bounds. The
// union fold is associative and commutative, so per-shape boxes may be
// computed independently and reduced in any order.
func (sv *SVG) ContentBounds() math32.Box2 {
	return sv.Root.LocalBBox()
}

// FindByID returns the first node with the given id in document order,
// or nil if none.
func (sv *SVG) FindByID(id string) Node {
	var fnd Node
	WalkDown(sv.Root, func(sn Node) bool {
		if sn.AsNodeBase().Name == id {
			fnd = sn
			return Break
		}
		return Continue
	})
	if fnd == sv.Root {
		return nil
	}
	return fnd
}

// EnsureIDs assigns a deterministic id to every shape element that does
// not already have one, as a pure function of the element's tag and its
// ordinal position in document order (groups included in the numbering).
// Repeated parses of identical input therefore produce identical ids,
// which downstream animation code depends on. No randomness and no
// wall-clock input, ever.
func (sv *SVG) EnsureIDs() {
	ordinal := 0
	WalkDown(sv.Root, func(sn Node) bool {
		if sn == Node(sv.Root) {
			return Continue
		}
		ordinal++
		nb := sn.AsNodeBase()
		if nb.Name != "" {
			return Continue
		}
		if _, isss := sn.(*StyleSheet); isss {
			return Continue
		}
		nb.Name = fmt.Sprintf("%s-%d", sn.SVGName(), ordinal)
		return Continue
	})
}
