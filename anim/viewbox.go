// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"github.com/svgprep/core/math32"
	"github.com/svgprep/core/svg"
)

// DefaultViewBoxSize is the fallback viewBox size used when a document
// has no declared geometry and no element with defined bounds.
const DefaultViewBoxSize = 100

// SynthesizeViewBox returns a content-fitting viewBox for the document.
// A declared viewBox is returned as-is, and declared positive width /
// height attributes become the viewBox "0 0 w h", so running this on
// its own output changes nothing. Otherwise the aggregate bounding box
// of all shapes is padded symmetrically by 5% of its larger dimension
// (5 absolute units when the bounds have no extent), with all four
// numbers rounded to two decimal places so the emitted markup stays
// stable and diffable. A document with no bounded shapes gets the
// default box "0 0 100 100". Never fails: any geometry anomaly degrades
// to the default box.
func SynthesizeViewBox(sv *svg.SVG) svg.ViewBox {
	if sv.ViewBox.Valid() {
		return sv.ViewBox
	}
	if sv.PhysicalWidth > 0 && sv.PhysicalHeight > 0 {
		vb := svg.ViewBox{}
		vb.Size.Set(sv.PhysicalWidth, sv.PhysicalHeight)
		return vb
	}
	bb := sv.ContentBounds()
	if bb.IsEmpty() {
		vb := svg.ViewBox{}
		vb.Size.Set(DefaultViewBoxSize, DefaultViewBoxSize)
		return vb
	}
	sz := bb.Size()
	pad := math32.Max(0.05*sz.X, 0.05*sz.Y)
	if pad == 0 {
		pad = 5
	}
	vb := svg.ViewBox{}
	vb.Min.Set(math32.RoundDecimals(bb.Min.X-pad, 2), math32.RoundDecimals(bb.Min.Y-pad, 2))
	vb.Size.Set(math32.RoundDecimals(sz.X+2*pad, 2), math32.RoundDecimals(sz.Y+2*pad, 2))
	return vb
}
