// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat32(t *testing.T) {
	f, err := ParseFloat32("3.25")
	assert.NoError(t, err)
	assert.Equal(t, float32(3.25), f)

	f, err = ParseFloat32("120px")
	assert.NoError(t, err)
	assert.Equal(t, float32(120), f)

	f, err = ParseFloat32(" 14pt ")
	assert.NoError(t, err)
	assert.Equal(t, float32(14), f)

	_, err = ParseFloat32("auto")
	assert.Error(t, err)
}

func TestReadPoints(t *testing.T) {
	assert.Equal(t, []float32{0, 0, 100, 100}, ReadPoints("0 0 100 100"))
	assert.Equal(t, []float32{1.5, 2, 3, 4}, ReadPoints("1.5,2 3,4"))
	assert.Nil(t, ReadPoints(""))
	// scan stops at the first malformed entry
	assert.Equal(t, []float32{1, 2}, ReadPoints("1 2 x 4"))
}

func TestRoundDecimals(t *testing.T) {
	assert.Equal(t, float32(8.5), RoundDecimals(8.4999999, 2))
	assert.Equal(t, float32(3.33), RoundDecimals(10.0/3.0, 2))
	assert.Equal(t, float32(-1.25), RoundDecimals(-1.249999, 2))
}
