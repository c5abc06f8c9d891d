// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathLength(t *testing.T, d string) float32 {
	t.Helper()
	pd, err := PathDataParse(d)
	require.NoError(t, err)
	return PathDataLength(pd)
}

func TestPathLengthLines(t *testing.T) {
	assert.InDelta(t, 20, pathLength(t, "M 0,0 L 10,0 L 10,10"), 1e-4)
	assert.InDelta(t, 20, pathLength(t, "M 0,0 l 10,0 l 0,10"), 1e-4)
	assert.InDelta(t, 20, pathLength(t, "M 0,0 H 10 V 10"), 1e-4)
	assert.InDelta(t, 20, pathLength(t, "M 0,0 h 10 v 10"), 1e-4)
	// 3-4-5 diagonal
	assert.InDelta(t, 5, pathLength(t, "M 0,0 L 3,4"), 1e-4)
}

func TestPathLengthClose(t *testing.T) {
	// unit square: Z adds the return segment
	assert.InDelta(t, 4, pathLength(t, "M 0,0 h 1 v 1 h -1 Z"), 1e-4)
}

func TestPathLengthCubic(t *testing.T) {
	// degenerate cubic with a 10-unit chord: 10 * 1.2
	assert.InDelta(t, 12, pathLength(t, "M 0,0 C 0,0 10,0 10,0"), 1e-4)
	assert.InDelta(t, 12, pathLength(t, "M 0,0 c 0,0 10,0 10,0"), 1e-4)
	// smooth variant uses the same factor
	assert.InDelta(t, 12, pathLength(t, "M 0,0 S 10,0 10,0"), 1e-4)
}

func TestPathLengthQuadratic(t *testing.T) {
	assert.InDelta(t, 11.5, pathLength(t, "M 0,0 Q 5,0 10,0"), 1e-4)
	assert.InDelta(t, 11.5, pathLength(t, "M 0,0 T 10,0"), 1e-4)
}

func TestPathLengthArc(t *testing.T) {
	// chord 10 dominates the radius bound (avg radius 5 * 0.5 = 2.5)
	assert.InDelta(t, 10, pathLength(t, "M 0,0 A 5,5 0 0 1 10,0"), 1e-4)
	// short chord: radius bound dominates (avg radius 100 * 0.5 = 50)
	assert.InDelta(t, 50, pathLength(t, "M 0,0 A 100,100 0 1 1 1,0"), 1e-4)
}

func TestPathLengthImplicitLineto(t *testing.T) {
	// extra M coordinate pairs are implicit linetos
	assert.InDelta(t, 20, pathLength(t, "M 0,0 10,0 10,10"), 1e-4)
}

func TestPathLengthMultiSubpath(t *testing.T) {
	// moveto between subpaths contributes nothing
	assert.InDelta(t, 10, pathLength(t, "M 0,0 h 5 M 100,100 h 5"), 1e-4)
}

func TestPathLengthEmpty(t *testing.T) {
	assert.Equal(t, float32(0), PathDataLength(nil))
}
