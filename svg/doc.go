// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides the geometry model for SVG documents produced by
// raster-to-vector tracing: a typed tree of shape primitives parsed from
// markup, per-shape and aggregate bounding boxes, the path command data
// model with an approximate stroke-length estimator, and markup output
// with stable, deterministic element ids.
//
// The package is purely computational: it performs no rendering and holds
// no shared mutable state, so independent documents can be processed
// concurrently without locking.
package svg
