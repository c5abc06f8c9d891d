// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pivot maps pointer locations in display space to document
// coordinates and element-relative pivot descriptors, used as rotation
// and scale origins for animated elements.
package pivot

import (
	"errors"
	"fmt"

	"github.com/svgprep/core/math32"
	"github.com/svgprep/core/svg"
)

var (
	// ErrDegenerateGeometry means the target element's bounding box has
	// zero width or height, so a relative position is undefined on that
	// axis. Pivot placement for that element is refused, not retried.
	ErrDegenerateGeometry = errors.New("pivot: degenerate element bounds")

	// ErrUnresolvedTarget means the document point does not fall within
	// any element's bounds: there is no element at that point.
	ErrUnresolvedTarget = errors.New("pivot: no element at point")
)

// Mapper converts between display coordinates (device pixels) and
// document coordinates, assuming the uniform-affine mapping defined by
// the viewBox (no rotation or skew). A Mapper captures one layout
// state: construct a fresh one from the current container geometry on
// every resize instead of caching scale factors.
type Mapper struct {

	// ViewBox is the document's effective viewBox.
	ViewBox svg.ViewBox

	// DisplaySize is the rendered size of the document, in device pixels.
	DisplaySize math32.Vector2

	// DisplayOrigin is the display-space location of the document's
	// top-left corner (e.g., the container offset within the window).
	DisplayOrigin math32.Vector2
}

// Scale returns the per-axis document-units-per-pixel scale factors.
func (mp *Mapper) Scale() math32.Vector2 {
	return mp.ViewBox.Size.Div(mp.DisplaySize)
}

// DisplayToDocument converts a display-space point (e.g., a pointer
// click) to document coordinates.
func (mp *Mapper) DisplayToDocument(display math32.Vector2) math32.Vector2 {
	return display.Sub(mp.DisplayOrigin).Mul(mp.Scale()).Add(mp.ViewBox.Min)
}

// DocumentToDisplay converts a document-space point back to display
// coordinates, e.g., for rendering a crosshair at a stored pivot.
// It is the exact inverse of [Mapper.DisplayToDocument].
func (mp *Mapper) DocumentToDisplay(doc math32.Vector2) math32.Vector2 {
	return doc.Sub(mp.ViewBox.Min).Div(mp.Scale()).Add(mp.DisplayOrigin)
}

// Point is a resolved pivot: a document-space location bound to an
// element, with the location normalized against the element's bounds.
type Point struct {

	// Document is the pivot location in document coordinates.
	Document math32.Vector2

	// ElementID is the id of the element the pivot is bound to.
	ElementID string

	// Relative is the pivot location normalized against the element's
	// bounding box, each axis in [0,1].
	Relative math32.Vector2

	// Origin is the CSS transform-origin style percentage descriptor
	// derived from Relative, e.g. "50.0% 50.0%".
	Origin string
}

// PivotAt maps the given display-space point into the document and
// resolves it to an element-relative pivot. The target is the first
// shape in document order whose bounding box contains the point;
// overlapping later elements are not considered. Returns
// [ErrUnresolvedTarget] when no element contains the point, and
// [ErrDegenerateGeometry] when the matched element's bounds have no
// extent on an axis.
func (mp *Mapper) PivotAt(sv *svg.SVG, display math32.Vector2) (*Point, error) {
	doc := mp.DisplayToDocument(display)
	var target svg.Node
	svg.WalkDown(sv.Root, func(sn svg.Node) bool {
		if target != nil {
			return svg.Break
		}
		if _, isgp := sn.(*svg.Group); isgp {
			return svg.Continue
		}
		bb := sn.LocalBBox()
		if bb.IsEmpty() || !bb.ContainsPoint(doc) {
			return svg.Continue
		}
		target = sn
		return svg.Break
	})
	if target == nil {
		return nil, fmt.Errorf("%w: document point (%g, %g)", ErrUnresolvedTarget, doc.X, doc.Y)
	}
	return PivotOn(target, doc)
}

// PivotOn normalizes a document-space point against the given element's
// bounding box, returning the element-relative pivot. The relative
// position is clamped to [0,1] per axis, so points on or outside the
// boundary still produce a valid origin descriptor.
func PivotOn(n svg.Node, doc math32.Vector2) (*Point, error) {
	bb := n.LocalBBox()
	id := n.AsNodeBase().Name
	sz := bb.Size()
	if bb.IsEmpty() || sz.X == 0 || sz.Y == 0 {
		return nil, fmt.Errorf("%w: element %q", ErrDegenerateGeometry, id)
	}
	rel := doc.Sub(bb.Min).Div(sz)
	rel.Clamp(math32.Vector2{}, math32.Vec2(1, 1))
	return &Point{
		Document:  doc,
		ElementID: id,
		Relative:  rel,
		Origin:    fmt.Sprintf("%.1f%% %.1f%%", rel.X*100, rel.Y*100),
	}, nil
}
