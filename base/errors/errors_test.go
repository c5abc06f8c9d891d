// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := New("test error")
	assert.Equal(t, err, Log(err))
	assert.Equal(t, 3, Log1(3, err))
}

func TestWrap(t *testing.T) {
	base := New("base")
	w := Wrap(base, "context %d", 42)
	assert.True(t, Is(w, base))
	assert.Equal(t, "context 42: base", w.Error())
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("boom")) })
	assert.Equal(t, "v", Must1("v", nil))
}
