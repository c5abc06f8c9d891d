// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/svgprep/core/math32"
)

// PathCmds are the commands within the path SVG drawing data type.
// The original command letters are preserved, including relative and
// horizontal / vertical variants, because bounds and length estimation
// depend on the per-letter parameter layout.
type PathCmds byte

const (
	// move pen, abs coords
	PcM PathCmds = iota
	// move pen, rel coords
	Pcm
	// lineto, abs
	PcL
	// lineto, rel
	Pcl
	// horizontal lineto, abs
	PcH
	// horizontal lineto, rel
	Pch
	// vertical lineto, abs
	PcV
	// vertical lineto, rel
	Pcv
	// Bezier curveto, abs
	PcC
	// Bezier curveto, rel
	Pcc
	// smooth Bezier curveto, abs
	PcS
	// smooth Bezier curveto, rel
	Pcs
	// quadratic Bezier curveto, abs
	PcQ
	// quadratic Bezier curveto, rel
	Pcq
	// smooth quadratic Bezier curveto, abs
	PcT
	// smooth quadratic Bezier curveto, rel
	Pct
	// elliptical arc, abs
	PcA
	// elliptical arc, rel
	Pca
	// close path
	PcZ
	// close path
	Pcz
	// error -- invalid command
	PcErr
)

var pathCmdRunes = map[PathCmds]rune{
	PcM: 'M', Pcm: 'm', PcL: 'L', Pcl: 'l', PcH: 'H', Pch: 'h',
	PcV: 'V', Pcv: 'v', PcC: 'C', Pcc: 'c', PcS: 'S', Pcs: 's',
	PcQ: 'Q', Pcq: 'q', PcT: 'T', Pct: 't', PcA: 'A', Pca: 'a',
	PcZ: 'Z', Pcz: 'z',
}

// Rune returns the command letter for this path command.
func (pc PathCmds) Rune() rune {
	r, ok := pathCmdRunes[pc]
	if !ok {
		return '?'
	}
	return r
}

// PathDecodeCmd decodes rune into corresponding command.
func PathDecodeCmd(r rune) PathCmds {
	switch r {
	case 'M':
		return PcM
	case 'm':
		return Pcm
	case 'L':
		return PcL
	case 'l':
		return Pcl
	case 'H':
		return PcH
	case 'h':
		return Pch
	case 'V':
		return PcV
	case 'v':
		return Pcv
	case 'C':
		return PcC
	case 'c':
		return Pcc
	case 'S':
		return PcS
	case 's':
		return Pcs
	case 'Q':
		return PcQ
	case 'q':
		return Pcq
	case 'T':
		return PcT
	case 't':
		return Pct
	case 'A':
		return PcA
	case 'a':
		return Pca
	case 'Z':
		return PcZ
	case 'z':
		return Pcz
	}
	return PcErr
}

// PathData encodes the svg path data, using 32-bit floats which are
// converted into int32 for path commands. The command itself lives in the
// lowest byte, and the number of subsequent data values for that command
// in the next byte up. Commands and numbers are serialized in the exact
// order they appeared in the source path data.
type PathData float32

// Cmd decodes path data as a command and a number of subsequent values
// for that command.
func (pd PathData) Cmd() (PathCmds, int) {
	iv := int32(pd)
	cmd := PathCmds(iv & 0xFF)
	n := int((iv & 0xFF00) >> 8)
	return cmd, n
}

// EncCmd encodes command and n into PathData.
func (pc PathCmds) EncCmd(n int) PathData {
	nb := int32(n << 8) // n up-shifted
	return PathData(int32(pc) | nb)
}

// PathDataNext gets the next path data point, incrementing the index.
func PathDataNext(data []PathData, i *int) float32 {
	pd := data[*i]
	(*i)++
	return float32(pd)
}

// PathDataNextVector gets the next 2 path data points as a vector,
// incrementing the index.
func PathDataNextVector(data []PathData, i *int) math32.Vector2 {
	v := math32.Vec2(float32(data[*i]), float32(data[*i+1]))
	(*i) += 2
	return v
}

// PathDataNextCmd gets the next path data command, incrementing the index.
func PathDataNextCmd(data []PathData, i *int) (PathCmds, int) {
	pd := data[*i]
	(*i)++
	return pd.Cmd()
}

// PathDataMaxParams is the most parameter values one encoded command
// can carry: the count is packed into a single byte, and 252 is the
// largest value under 256 divisible by every command's parameter group
// size (1, 2, 4, 6 and 7), so a split always lands on a group boundary.
const PathDataMaxParams = 252

// pathContCmd returns the command that continues a split parameter run.
// Extra moveto coordinate pairs are implicit linetos, so a moveto run
// continues as a lineto; every other command repeats its own letter.
func pathContCmd(cmd PathCmds) PathCmds {
	switch cmd {
	case PcM:
		return PcL
	case Pcm:
		return Pcl
	}
	return cmd
}

// PathDataParse parses a string representation of the path data into
// compiled path data. The first malformed command or number aborts the
// parse with an error; the caller is expected to skip the element and
// continue with the rest of the document. A command letter followed by
// more than [PathDataMaxParams] values (routine in traced output) is
// split into repeated commands with identical geometry.
func PathDataParse(d string) ([]PathData, error) {
	var pd []PathData
	lstCmd := -1
	sz := len(d)
	i := 0
	for i < sz {
		c := d[i]
		switch {
		case c == ' ' || c == ',' || c == '\t' || c == '\n' || c == '\r':
			i++
		case (c >= 'A' && c <= 'Z' && c != 'E') || (c >= 'a' && c <= 'z' && c != 'e'):
			cmd := PathDecodeCmd(rune(c))
			if cmd == PcErr {
				return nil, fmt.Errorf("svg.PathDataParse: invalid command %q in path data", c)
			}
			if lstCmd >= 0 { // update number of args for previous command
				lcm, _ := pd[lstCmd].Cmd()
				pd[lstCmd] = lcm.EncCmd(len(pd) - lstCmd - 1)
			}
			lstCmd = len(pd)
			pd = append(pd, cmd.EncCmd(0)) // encode with 0 length to start
			i++
		default:
			st := i
			if c == '-' || c == '+' {
				i++
			}
			gotDec := false
			gotExp := false
			for i < sz {
				r := d[i]
				if r >= '0' && r <= '9' {
					i++
					continue
				}
				// an additional decimal point acts as a delimiter --
				// some crazy paths actually leverage that
				if r == '.' && !gotDec && !gotExp {
					gotDec = true
					i++
					continue
				}
				if (r == 'e' || r == 'E') && !gotExp {
					gotExp = true
					i++
					if i < sz && (d[i] == '-' || d[i] == '+') {
						i++
					}
					continue
				}
				break
			}
			if i == st {
				return nil, fmt.Errorf("svg.PathDataParse: invalid character %q in path data", c)
			}
			f, err := strconv.ParseFloat(d[st:i], 32)
			if err != nil {
				return nil, fmt.Errorf("svg.PathDataParse: could not parse number %q: %w", d[st:i], err)
			}
			if lstCmd >= 0 && len(pd)-lstCmd-1 >= PathDataMaxParams {
				// run is full: close it out and continue under a new command
				lcm, _ := pd[lstCmd].Cmd()
				pd[lstCmd] = lcm.EncCmd(len(pd) - lstCmd - 1)
				lstCmd = len(pd)
				pd = append(pd, pathContCmd(lcm).EncCmd(0))
			}
			pd = append(pd, PathData(f))
		}
	}
	if lstCmd >= 0 {
		lcm, _ := pd[lstCmd].Cmd()
		pd[lstCmd] = lcm.EncCmd(len(pd) - lstCmd - 1)
	}
	return pd, nil
}

// PathDataString returns the string representation of the path data,
// as it would appear in a d attribute.
func PathDataString(data []PathData) string {
	var sb strings.Builder
	sz := len(data)
	for i := 0; i < sz; {
		cmd, n := PathDataNextCmd(data, &i)
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(cmd.Rune())
		for np := 0; np < n; np++ {
			if np > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(float64(PathDataNext(data, &i)), 'g', -1, 32))
		}
	}
	return sb.String()
}

// PathDataBBox traverses the path data and returns the envelope of all
// coordinate values appearing in the command parameters. Curve control
// points are included even though they may lie outside the true rendered
// curve: this is an intentional speed / precision trade-off, not an exact
// curve extremum computation. Arc radii, rotation and flags are not
// coordinates and do not contribute.
func PathDataBBox(data []PathData) math32.Box2 {
	bb := math32.B2Empty()
	sz := len(data)
	if sz == 0 {
		return bb
	}
	var cur, st math32.Vector2
	for i := 0; i < sz; {
		cmd, n := PathDataNextCmd(data, &i)
		switch cmd {
		case PcM:
			cur = PathDataNextVector(data, &i)
			st = cur
			bb.ExpandByPoint(cur)
			for np := 1; np < n/2; np++ { // implicit linetos
				cur = PathDataNextVector(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pcm:
			cur.SetAdd(PathDataNextVector(data, &i))
			st = cur
			bb.ExpandByPoint(cur)
			for np := 1; np < n/2; np++ {
				cur.SetAdd(PathDataNextVector(data, &i))
				bb.ExpandByPoint(cur)
			}
		case PcL, PcT:
			for np := 0; np < n/2; np++ {
				cur = PathDataNextVector(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pcl, Pct:
			for np := 0; np < n/2; np++ {
				cur.SetAdd(PathDataNextVector(data, &i))
				bb.ExpandByPoint(cur)
			}
		case PcH:
			for np := 0; np < n; np++ {
				cur.X = PathDataNext(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pch:
			for np := 0; np < n; np++ {
				cur.X += PathDataNext(data, &i)
				bb.ExpandByPoint(cur)
			}
		case PcV:
			for np := 0; np < n; np++ {
				cur.Y = PathDataNext(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pcv:
			for np := 0; np < n; np++ {
				cur.Y += PathDataNext(data, &i)
				bb.ExpandByPoint(cur)
			}
		case PcC:
			for np := 0; np < n/6; np++ {
				bb.ExpandByPoint(PathDataNextVector(data, &i))
				bb.ExpandByPoint(PathDataNextVector(data, &i))
				cur = PathDataNextVector(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pcc:
			for np := 0; np < n/6; np++ {
				bb.ExpandByPoint(cur.Add(PathDataNextVector(data, &i)))
				bb.ExpandByPoint(cur.Add(PathDataNextVector(data, &i)))
				cur.SetAdd(PathDataNextVector(data, &i))
				bb.ExpandByPoint(cur)
			}
		case PcS, PcQ:
			for np := 0; np < n/4; np++ {
				bb.ExpandByPoint(PathDataNextVector(data, &i))
				cur = PathDataNextVector(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pcs, Pcq:
			for np := 0; np < n/4; np++ {
				bb.ExpandByPoint(cur.Add(PathDataNextVector(data, &i)))
				cur.SetAdd(PathDataNextVector(data, &i))
				bb.ExpandByPoint(cur)
			}
		case PcA:
			for np := 0; np < n/7; np++ {
				PathDataNext(data, &i) // rx
				PathDataNext(data, &i) // ry
				PathDataNext(data, &i) // x-axis-rotation
				PathDataNext(data, &i) // large-arc-flag
				PathDataNext(data, &i) // sweep-flag
				cur = PathDataNextVector(data, &i)
				bb.ExpandByPoint(cur)
			}
		case Pca:
			for np := 0; np < n/7; np++ {
				PathDataNext(data, &i)
				PathDataNext(data, &i)
				PathDataNext(data, &i)
				PathDataNext(data, &i)
				PathDataNext(data, &i)
				cur.SetAdd(PathDataNextVector(data, &i))
				bb.ExpandByPoint(cur)
			}
		case PcZ, Pcz:
			cur = st
		}
	}
	return bb
}
