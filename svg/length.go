// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import "github.com/svgprep/core/math32"

// Curve length approximation factors. Exact Bezier / arc length requires
// numerical integration; scaling the endpoint chord by a fixed factor is
// cheap and good enough for animation timing. These are empirical
// constants: animation timing in existing exported presets depends on
// their magnitude, so change them only deliberately.
var (
	// CubicLengthFactor scales the chord length of a cubic Bezier segment.
	CubicLengthFactor float32 = 1.2

	// QuadraticLengthFactor scales the chord length of a quadratic
	// Bezier segment.
	QuadraticLengthFactor float32 = 1.15

	// ArcRadiusFactor scales the average radius of an elliptical arc
	// segment, as a lower bound on its length when the chord is short
	// (e.g., a nearly-full arc returning close to its start point).
	ArcRadiusFactor float32 = 0.5
)

// PathDataLength traverses the path data and returns the estimated total
// stroke length, tracking the current point and the start point of each
// subpath (restored by close-path). Line segments contribute their exact
// length; curve segments contribute their endpoint chord scaled by the
// fixed factors above. The result is non-negative, and is used to size
// stroke-dasharray / stroke-dashoffset so that a draw-on reveal animation
// completes exactly one full stroke traversal.
func PathDataLength(data []PathData) float32 {
	var tot float32
	sz := len(data)
	if sz == 0 {
		return 0
	}
	var cur, st math32.Vector2
	for i := 0; i < sz; {
		cmd, n := PathDataNextCmd(data, &i)
		switch cmd {
		case PcM:
			cur = PathDataNextVector(data, &i)
			st = cur
			for np := 1; np < n/2; np++ { // implicit linetos
				nxt := PathDataNextVector(data, &i)
				tot += cur.DistanceTo(nxt)
				cur = nxt
			}
		case Pcm:
			cur.SetAdd(PathDataNextVector(data, &i))
			st = cur
			for np := 1; np < n/2; np++ {
				d := PathDataNextVector(data, &i)
				tot += d.Length()
				cur.SetAdd(d)
			}
		case PcL:
			for np := 0; np < n/2; np++ {
				nxt := PathDataNextVector(data, &i)
				tot += cur.DistanceTo(nxt)
				cur = nxt
			}
		case Pcl:
			for np := 0; np < n/2; np++ {
				d := PathDataNextVector(data, &i)
				tot += d.Length()
				cur.SetAdd(d)
			}
		case PcH:
			for np := 0; np < n; np++ {
				x := PathDataNext(data, &i)
				tot += math32.Abs(x - cur.X)
				cur.X = x
			}
		case Pch:
			for np := 0; np < n; np++ {
				dx := PathDataNext(data, &i)
				tot += math32.Abs(dx)
				cur.X += dx
			}
		case PcV:
			for np := 0; np < n; np++ {
				y := PathDataNext(data, &i)
				tot += math32.Abs(y - cur.Y)
				cur.Y = y
			}
		case Pcv:
			for np := 0; np < n; np++ {
				dy := PathDataNext(data, &i)
				tot += math32.Abs(dy)
				cur.Y += dy
			}
		case PcC:
			for np := 0; np < n/6; np++ {
				PathDataNextVector(data, &i) // control points occupy
				PathDataNextVector(data, &i) // parameter slots only
				end := PathDataNextVector(data, &i)
				tot += cur.DistanceTo(end) * CubicLengthFactor
				cur = end
			}
		case Pcc:
			for np := 0; np < n/6; np++ {
				PathDataNextVector(data, &i)
				PathDataNextVector(data, &i)
				d := PathDataNextVector(data, &i)
				tot += d.Length() * CubicLengthFactor
				cur.SetAdd(d)
			}
		case PcS:
			for np := 0; np < n/4; np++ {
				PathDataNextVector(data, &i)
				end := PathDataNextVector(data, &i)
				tot += cur.DistanceTo(end) * CubicLengthFactor
				cur = end
			}
		case Pcs:
			for np := 0; np < n/4; np++ {
				PathDataNextVector(data, &i)
				d := PathDataNextVector(data, &i)
				tot += d.Length() * CubicLengthFactor
				cur.SetAdd(d)
			}
		case PcQ:
			for np := 0; np < n/4; np++ {
				PathDataNextVector(data, &i)
				end := PathDataNextVector(data, &i)
				tot += cur.DistanceTo(end) * QuadraticLengthFactor
				cur = end
			}
		case Pcq:
			for np := 0; np < n/4; np++ {
				PathDataNextVector(data, &i)
				d := PathDataNextVector(data, &i)
				tot += d.Length() * QuadraticLengthFactor
				cur.SetAdd(d)
			}
		case PcT:
			for np := 0; np < n/2; np++ {
				end := PathDataNextVector(data, &i)
				tot += cur.DistanceTo(end) * QuadraticLengthFactor
				cur = end
			}
		case Pct:
			for np := 0; np < n/2; np++ {
				d := PathDataNextVector(data, &i)
				tot += d.Length() * QuadraticLengthFactor
				cur.SetAdd(d)
			}
		case PcA, Pca:
			for np := 0; np < n/7; np++ {
				rx := PathDataNext(data, &i)
				ry := PathDataNext(data, &i)
				PathDataNext(data, &i) // x-axis-rotation
				PathDataNext(data, &i) // large-arc-flag
				PathDataNext(data, &i) // sweep-flag
				var chord float32
				if cmd == PcA {
					end := PathDataNextVector(data, &i)
					chord = cur.DistanceTo(end)
					cur = end
				} else {
					d := PathDataNextVector(data, &i)
					chord = d.Length()
					cur.SetAdd(d)
				}
				// deliberately coarse bound, not a precise arc-length formula
				avgRadius := (rx + ry) / 2
				tot += math32.Max(chord, avgRadius*ArcRadiusFactor)
			}
		case PcZ, Pcz:
			tot += cur.DistanceTo(st)
			cur = st
		}
	}
	return tot
}
