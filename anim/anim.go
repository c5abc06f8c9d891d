// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim prepares parsed SVG documents for animation: it
// synthesizes a content-fitting viewBox, computes per-element stroke
// lengths, and configures stroke-dash attributes for draw-on reveal
// effects. All operations are pure computations over an in-memory
// document; independent documents can be prepared concurrently.
package anim

import (
	"fmt"

	"github.com/svgprep/core/math32"
	"github.com/svgprep/core/svg"
)

// Options are the preparation steps to apply. Each flag independently
// enables one step; there are no interaction effects between them.
type Options struct {

	// EnsureViewBox synthesizes a content-fitting viewBox when the
	// document does not already declare one (see [SynthesizeViewBox]).
	EnsureViewBox bool

	// RemoveFixedDimensions drops declared width / height attributes so
	// the output scales to its container.
	RemoveFixedDimensions bool

	// AddAspectRatioHint sets preserveAspectRatio to "xMidYMid meet"
	// when the document does not declare one.
	AddAspectRatioHint bool

	// ComputeStrokeLengths estimates the stroke length of every
	// measurable element and reports them in [Result.Lengths].
	ComputeStrokeLengths bool

	// SetupDrawOnDashing sets stroke-dasharray and stroke-dashoffset on
	// every measurable element to its estimated length, so animating the
	// offset to zero reveals exactly one full stroke traversal.
	// Implies length computation for the affected elements.
	SetupDrawOnDashing bool
}

// DefaultOptions returns the default preparation options,
// with every step enabled.
func DefaultOptions() *Options {
	return &Options{
		EnsureViewBox:         true,
		RemoveFixedDimensions: true,
		AddAspectRatioHint:    true,
		ComputeStrokeLengths:  true,
		SetupDrawOnDashing:    true,
	}
}

// StrokeLength records the estimated stroke length of one element,
// keyed by its stable id.
type StrokeLength struct {
	ElementID string
	Length    float32
}

// Result is the output of [Prepare]: the updated markup plus the data
// that downstream animation code generators consume.
type Result struct {

	// Markup is the updated SVG markup text.
	Markup string

	// Lengths are the per-element stroke lengths, in document order.
	// Nil unless length computation was enabled.
	Lengths []StrokeLength

	// ViewBox is the effective viewBox of the output document.
	ViewBox svg.ViewBox
}

// measurer is implemented by elements with an estimable stroke length
// (paths, lines, polylines, polygons).
type measurer interface {
	Length() float32
}

// Prepare parses the given SVG markup and applies the enabled
// preparation steps, returning the updated markup and per-element
// stroke lengths. The only hard failure is an unparseable document
// ([svg.ErrInvalidDocument]); per-element anomalies degrade to skipped
// elements during the parse. With all options off, the output is the
// input document unchanged except for id assignment, which always runs
// so that results are addressable.
func Prepare(markup string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	sv := svg.NewSVG()
	if err := sv.ReadXMLString(markup); err != nil {
		return nil, err
	}
	res := PrepareSVG(sv, opts)
	res.Markup = sv.String()
	return res, nil
}

// PrepareSVG applies the enabled preparation steps to an
// already-parsed document, modifying it in place. [Prepare] is the
// string-to-string wrapper around this.
func PrepareSVG(sv *svg.SVG, opts *Options) *Result {
	res := &Result{}
	if opts.EnsureViewBox {
		sv.ViewBox = SynthesizeViewBox(sv)
	}
	if opts.RemoveFixedDimensions {
		sv.PhysicalWidth = 0
		sv.PhysicalHeight = 0
	}
	if opts.AddAspectRatioHint && sv.PreserveAspectRatio == "" {
		sv.PreserveAspectRatio = "xMidYMid meet"
	}
	if opts.ComputeStrokeLengths || opts.SetupDrawOnDashing {
		svg.WalkDown(sv.Root, func(sn svg.Node) bool {
			ms, ok := sn.(measurer)
			if !ok {
				return svg.Continue
			}
			l := ms.Length()
			if opts.ComputeStrokeLengths {
				res.Lengths = append(res.Lengths, StrokeLength{
					ElementID: sn.AsNodeBase().Name,
					Length:    l,
				})
			}
			if opts.SetupDrawOnDashing {
				dash := fmt.Sprintf("%g", math32.RoundDecimals(l, 2))
				nb := sn.AsNodeBase()
				nb.SetProperty("stroke-dasharray", dash)
				nb.SetProperty("stroke-dashoffset", dash)
			}
			return svg.Continue
		})
	}
	res.ViewBox = sv.ViewBox
	return res
}
