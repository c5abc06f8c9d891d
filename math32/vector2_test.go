// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.12)
	assert.Equal(t, Vector2{8.12, 8.12}, v)

	v.SetFromPoint(image.Pt(8, 9))
	assert.Equal(t, Vector2{8, 9}, v)
}

func TestVector2Ops(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, 2)

	assert.Equal(t, Vec2(4, 6), a.Add(b))
	assert.Equal(t, Vec2(2, 2), a.Sub(b))
	assert.Equal(t, Vec2(3, 8), a.Mul(b))
	assert.Equal(t, Vec2(3, 2), a.Div(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(1.5, 2), a.DivScalar(2))
	assert.Equal(t, Vector2{}, a.DivScalar(0))

	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(25), a.LengthSquared())
	assert.Equal(t, float32(11), a.Dot(b))
	assert.Equal(t, float32(0), a.DistanceTo(a))

	c := Vec2(0, 0)
	assert.Equal(t, float32(5), c.DistanceTo(a))

	assert.Equal(t, Vec2(1, 2), a.Min(b))
	assert.Equal(t, Vec2(3, 4), a.Max(b))
	assert.Equal(t, Vec2(-3, -4), a.Negate())
	assert.Equal(t, Vec2(3, 4), a.Negate().Abs())

	m := Vec2(2, 3)
	m.Clamp(Vec2(0, 0), Vec2(1, 1))
	assert.Equal(t, Vec2(1, 1), m)

	assert.Equal(t, Vec2(2, 3), Vec2(1, 2).Lerp(Vec2(3, 4), 0.5))
}

func TestVector2Convert(t *testing.T) {
	v := Vec2(2.7, -1.2)
	assert.Equal(t, image.Pt(2, -2), v.ToPointFloor())
	assert.Equal(t, image.Pt(3, -1), v.ToPointCeil())
	assert.Equal(t, image.Pt(3, -1), v.ToPointRound())

	f := Vec2(8, 3).ToFixed()
	assert.Equal(t, fixed.P(8, 3), f)
}
