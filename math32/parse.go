// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFloat32 parses a float32 number from the given string,
// stripping any trailing unit suffix (px, pt, em, %, etc) first.
// SVG attribute values frequently carry such suffixes.
func ParseFloat32(pstr string) (float32, error) {
	pstr = strings.TrimSpace(pstr)
	end := len(pstr)
	for end > 0 {
		c := pstr[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	if end == 0 {
		return 0, fmt.Errorf("math32.ParseFloat32: no number in %q", pstr)
	}
	f, err := strconv.ParseFloat(pstr[:end], 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

// ReadPoints reads a set of comma or space separated numbers from the
// given string, as in SVG points and viewBox attributes. Malformed
// entries terminate the scan and return what was read so far.
func ReadPoints(pstr string) []float32 {
	fields := strings.FieldsFunc(pstr, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	var pts []float32
	for _, fd := range fields {
		f, err := strconv.ParseFloat(fd, 32)
		if err != nil {
			return pts
		}
		pts = append(pts, float32(f))
	}
	return pts
}
