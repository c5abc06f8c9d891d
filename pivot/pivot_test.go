// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pivot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgprep/core/math32"
	"github.com/svgprep/core/svg"
)

func unitMapper() *Mapper {
	mp := &Mapper{DisplaySize: math32.Vec2(200, 200)}
	mp.ViewBox.Size.Set(100, 100)
	return mp
}

func TestDisplayToDocument(t *testing.T) {
	mp := unitMapper()
	// display (50,50) in a 200x200 viewport over viewBox (0,0,100,100)
	doc := mp.DisplayToDocument(math32.Vec2(50, 50))
	assert.Equal(t, math32.Vec2(25, 25), doc)
}

func TestDisplayToDocumentOffset(t *testing.T) {
	mp := unitMapper()
	mp.DisplayOrigin.Set(10, 20)
	mp.ViewBox.Min.Set(5, 5)
	doc := mp.DisplayToDocument(math32.Vec2(50, 60))
	assert.Equal(t, math32.Vec2(25, 25), doc)
}

func TestRoundTrip(t *testing.T) {
	mp := unitMapper()
	mp.DisplayOrigin.Set(13, 7)
	mp.ViewBox.Min.Set(-4, 9)
	mp.DisplaySize.Set(640, 480)

	disp := math32.Vec2(123, 456)
	back := mp.DocumentToDisplay(mp.DisplayToDocument(disp))
	assert.InDelta(t, disp.X, back.X, 1e-3)
	assert.InDelta(t, disp.Y, back.Y, 1e-3)
}

func testDoc(t *testing.T) *svg.SVG {
	t.Helper()
	sv := svg.NewSVG()
	doc := `<svg viewBox="0 0 100 100">
  <rect id="box" x="10" y="10" width="20" height="30"/>
  <rect id="overlap" x="10" y="10" width="20" height="30"/>
  <circle id="dot" cx="80" cy="80" r="5"/>
</svg>`
	require.NoError(t, sv.ReadXMLString(doc))
	return sv
}

func TestPivotAt(t *testing.T) {
	mp := unitMapper()
	sv := testDoc(t)

	// midpoint of the first rect: display (40,50) -> document (20,25)
	pt, err := mp.PivotAt(sv, math32.Vec2(40, 50))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(20, 25), pt.Document)
	assert.Equal(t, "box", pt.ElementID)
	assert.Equal(t, math32.Vec2(0.5, 0.5), pt.Relative)
	assert.Equal(t, "50.0% 50.0%", pt.Origin)
}

func TestPivotAtFirstMatchWins(t *testing.T) {
	mp := unitMapper()
	sv := testDoc(t)

	// "box" and "overlap" cover the same area; document order decides
	pt, err := mp.PivotAt(sv, math32.Vec2(30, 30))
	require.NoError(t, err)
	assert.Equal(t, "box", pt.ElementID)
}

func TestPivotAtUnresolved(t *testing.T) {
	mp := unitMapper()
	sv := testDoc(t)

	_, err := mp.PivotAt(sv, math32.Vec2(199, 1))
	assert.ErrorIs(t, err, ErrUnresolvedTarget)
}

func TestPivotAtCorners(t *testing.T) {
	mp := unitMapper()
	sv := testDoc(t)

	// top-left corner of the rect
	pt, err := mp.PivotAt(sv, math32.Vec2(20, 20))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(0, 0), pt.Relative)
	assert.Equal(t, "0.0% 0.0%", pt.Origin)

	// bottom-right corner
	pt, err = mp.PivotAt(sv, math32.Vec2(60, 80))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(1, 1), pt.Relative)
	assert.Equal(t, "100.0% 100.0%", pt.Origin)
}

func TestPivotOnDegenerate(t *testing.T) {
	line := &svg.Line{Start: math32.Vec2(0, 0), End: math32.Vec2(10, 0)}
	line.SetName("flat")
	_, err := PivotOn(line, math32.Vec2(5, 0))
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestPivotOnClamps(t *testing.T) {
	rect := &svg.Rect{Pos: math32.Vec2(0, 0), Size: math32.Vec2(10, 10)}
	rect.SetName("r")
	pt, err := PivotOn(rect, math32.Vec2(50, -50))
	require.NoError(t, err)
	assert.Equal(t, math32.Vec2(1, 0), pt.Relative)
	assert.Equal(t, "100.0% 0.0%", pt.Origin)
}
