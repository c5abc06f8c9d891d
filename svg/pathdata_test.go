// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgprep/core/math32"
)

func TestPathDataParse(t *testing.T) {
	pd, err := PathDataParse("M 10,20 L 30,40 h 5 Z")
	require.NoError(t, err)

	i := 0
	cmd, n := PathDataNextCmd(pd, &i)
	assert.Equal(t, PcM, cmd)
	assert.Equal(t, 2, n)
	assert.Equal(t, float32(10), PathDataNext(pd, &i))
	assert.Equal(t, float32(20), PathDataNext(pd, &i))

	cmd, n = PathDataNextCmd(pd, &i)
	assert.Equal(t, PcL, cmd)
	assert.Equal(t, 2, n)
	i += n

	cmd, n = PathDataNextCmd(pd, &i)
	assert.Equal(t, Pch, cmd)
	assert.Equal(t, 1, n)
	i += n

	cmd, n = PathDataNextCmd(pd, &i)
	assert.Equal(t, PcZ, cmd)
	assert.Equal(t, 0, n)
	assert.Equal(t, len(pd), i)
}

func TestPathDataParseCompact(t *testing.T) {
	// no spaces around command letters, negative numbers as delimiters,
	// exponents inside numbers
	pd, err := PathDataParse("M1e1-2L-3.5.5")
	require.NoError(t, err)

	i := 0
	cmd, n := PathDataNextCmd(pd, &i)
	assert.Equal(t, PcM, cmd)
	assert.Equal(t, 2, n)
	assert.Equal(t, float32(10), PathDataNext(pd, &i))
	assert.Equal(t, float32(-2), PathDataNext(pd, &i))

	cmd, n = PathDataNextCmd(pd, &i)
	assert.Equal(t, PcL, cmd)
	assert.Equal(t, 2, n)
	assert.Equal(t, float32(-3.5), PathDataNext(pd, &i))
	assert.Equal(t, float32(0.5), PathDataNext(pd, &i))
}

func TestPathDataParseErrors(t *testing.T) {
	_, err := PathDataParse("M 10,20 X 5")
	assert.Error(t, err)

	_, err = PathDataParse("M 10,#")
	assert.Error(t, err)
}

func TestPathDataString(t *testing.T) {
	orig := "M 10,20 L 30,40 h 5 v -2.5 Z"
	pd, err := PathDataParse(orig)
	require.NoError(t, err)
	str := PathDataString(pd)
	assert.Equal(t, "M10,20 L30,40 h5 v-2.5 Z", str)

	// re-parsing the string form is stable
	pd2, err := PathDataParse(str)
	require.NoError(t, err)
	assert.Equal(t, pd, pd2)
}

func TestPathDataBBox(t *testing.T) {
	pd, err := PathDataParse("M 0,0 L 10,0 L 10,10 Z")
	require.NoError(t, err)
	bb := PathDataBBox(pd)
	assert.Equal(t, float32(0), bb.Min.X)
	assert.Equal(t, float32(0), bb.Min.Y)
	assert.Equal(t, float32(10), bb.Max.X)
	assert.Equal(t, float32(10), bb.Max.Y)
}

func TestPathDataBBoxControlPoints(t *testing.T) {
	// control points extend the envelope beyond the endpoints
	pd, err := PathDataParse("M 0,0 C 5,-20 15,30 10,0")
	require.NoError(t, err)
	bb := PathDataBBox(pd)
	assert.Equal(t, float32(-20), bb.Min.Y)
	assert.Equal(t, float32(30), bb.Max.Y)
	assert.Equal(t, float32(15), bb.Max.X)
}

func TestPathDataBBoxArcFlags(t *testing.T) {
	// arc radii, rotation and flags are not coordinates
	pd, err := PathDataParse("M 0,0 A 100,100 0 0 1 10,10")
	require.NoError(t, err)
	bb := PathDataBBox(pd)
	assert.Equal(t, float32(10), bb.Max.X)
	assert.Equal(t, float32(10), bb.Max.Y)
}

func TestPathDataBBoxEmpty(t *testing.T) {
	bb := PathDataBBox(nil)
	assert.True(t, bb.IsEmpty())
}

func TestPathDataParseLongRun(t *testing.T) {
	// a single lineto followed by 150 coordinate pairs exceeds the
	// single-byte parameter count and must split into repeated commands
	var sb strings.Builder
	sb.WriteString("M 0,0 L")
	for i := 1; i <= 150; i++ {
		fmt.Fprintf(&sb, " %d,%d", i, i)
	}
	pd, err := PathDataParse(sb.String())
	require.NoError(t, err)

	var cmds []PathCmds
	for i := 0; i < len(pd); {
		cmd, n := PathDataNextCmd(pd, &i)
		assert.LessOrEqual(t, n, PathDataMaxParams)
		cmds = append(cmds, cmd)
		i += n
	}
	assert.Equal(t, []PathCmds{PcM, PcL, PcL}, cmds)

	bb := PathDataBBox(pd)
	assert.Equal(t, float32(150), bb.Max.X)
	assert.Equal(t, float32(150), bb.Max.Y)
	assert.InDelta(t, 150*math32.Sqrt2, PathDataLength(pd), 1e-2)

	// the split string form reparses to identical data
	pd2, err := PathDataParse(PathDataString(pd))
	require.NoError(t, err)
	assert.Equal(t, pd, pd2)
}

func TestPathDataParseLongMoveto(t *testing.T) {
	// extra moveto pairs are implicit linetos, so a split moveto run
	// must continue as a lineto, not start a new subpath
	var sb strings.Builder
	sb.WriteString("m 0,0")
	for i := 0; i < 150; i++ {
		sb.WriteString(" 1,1")
	}
	pd, err := PathDataParse(sb.String())
	require.NoError(t, err)

	i := 0
	cmd, n := PathDataNextCmd(pd, &i)
	assert.Equal(t, Pcm, cmd)
	i += n
	cmd, _ = PathDataNextCmd(pd, &i)
	assert.Equal(t, Pcl, cmd)

	bb := PathDataBBox(pd)
	assert.Equal(t, float32(150), bb.Max.X)
	assert.InDelta(t, 150*math32.Sqrt2, PathDataLength(pd), 1e-2)
}

func TestPathDataRelative(t *testing.T) {
	pd, err := PathDataParse("m 5,5 l 10,0 l 0,10")
	require.NoError(t, err)
	bb := PathDataBBox(pd)
	assert.Equal(t, float32(5), bb.Min.X)
	assert.Equal(t, float32(5), bb.Min.Y)
	assert.Equal(t, float32(15), bb.Max.X)
	assert.Equal(t, float32(15), bb.Max.Y)
}
