// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// svg parsing is adapted from github.com/srwiley/oksvg:
//
// Copyright 2017 The oksvg Authors. All rights reserved.

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/svgprep/core/base/errors"
	"github.com/svgprep/core/math32"
	"golang.org/x/net/html/charset"
)

// this file contains all the IO-related parsing routines,
// using standard XML unmarshal with an SVG-specific element switch.

var (
	// ErrInvalidDocument means the input has no parseable svg root
	// element; the whole conversion step fails in that case. Anomalies
	// below the root degrade to skipped elements instead.
	ErrInvalidDocument = errors.New("svg: invalid document: no parseable svg root element")
)

// OpenXML opens XML-formatted SVG input from given file.
func (sv *SVG) OpenXML(fname string) error {
	fp, err := os.Open(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	sv.Name = fname
	return sv.ReadXML(bufio.NewReader(fp))
}

// OpenFS opens XML-formatted SVG input from given file in filesystem fsys.
func (sv *SVG) OpenFS(fsys fs.FS, fname string) error {
	fp, err := fsys.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	sv.Name = fname
	return sv.ReadXML(bufio.NewReader(fp))
}

// ReadXMLString reads XML-formatted SVG input from the given string.
func (sv *SVG) ReadXMLString(markup string) error {
	return sv.ReadXML(strings.NewReader(markup))
}

// ReadXML reads XML-formatted SVG input from io.Reader, and uses
// xml.Decoder to create the SVG shape tree. Removes any existing content
// in SVG first. Elements that fail to parse are skipped with a logged
// diagnostic; only the absence of a parseable root element is an error
// ([ErrInvalidDocument]). After a successful read, every shape element
// has an id (see [SVG.EnsureIDs]).
func (sv *SVG) ReadXML(reader io.Reader) error {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			if err != io.EOF {
				log.Printf("SVG parsing error: %v\n", err)
			}
			return ErrInvalidDocument
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "svg" {
			log.Printf("SVG parsing error: root element is %q, not svg\n", se.Name.Local)
			return ErrInvalidDocument
		}
		err = sv.UnmarshalXML(decoder, se)
		if err != nil && err != io.EOF {
			return err
		}
		sv.EnsureIDs()
		return nil
	}
}

// UnmarshalXML unmarshals the svg using xml.Decoder, starting from the
// given svg root element.
func (sv *SVG) UnmarshalXML(decoder *xml.Decoder, se xml.StartElement) error {
	sv.DeleteAll()

	sv.unmarshalRootAttrs(se.Attr)

	curPar := sv.Root // current parent node into which elements are created
	parStack := []*Group{}
	inTitle := false
	inDesc := false
	var curCSS *StyleSheet

	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			// the token stream cannot be resynchronized after a markup
			// error, so this fails the whole conversion step
			log.Printf("SVG parsing error: %v\n", err)
			return fmt.Errorf("%w: markup error after document root: %v", ErrInvalidDocument, err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			nm := se.Name.Local
			switch nm {
			case "g":
				gp := &Group{}
				unmarshalGroup(gp, se.Attr)
				curPar.AddChild(gp)
				parStack = append(parStack, curPar)
				curPar = gp
			case "rect":
				if rect, err := unmarshalRect(se.Attr); err == nil {
					curPar.AddChild(rect)
				} else {
					log.Printf("SVG rect skipped: %v\n", err)
				}
			case "circle":
				if circle, err := unmarshalCircle(se.Attr); err == nil {
					curPar.AddChild(circle)
				} else {
					log.Printf("SVG circle skipped: %v\n", err)
				}
			case "ellipse":
				if ellipse, err := unmarshalEllipse(se.Attr); err == nil {
					curPar.AddChild(ellipse)
				} else {
					log.Printf("SVG ellipse skipped: %v\n", err)
				}
			case "line":
				if line, err := unmarshalLine(se.Attr); err == nil {
					curPar.AddChild(line)
				} else {
					log.Printf("SVG line skipped: %v\n", err)
				}
			case "polygon":
				pl := &Polygon{}
				if err := unmarshalPoints(&pl.Polyline, se.Attr, "polygon"); err == nil {
					curPar.AddChild(pl)
				} else {
					log.Printf("SVG polygon skipped: %v\n", err)
				}
			case "polyline":
				pl := &Polyline{}
				if err := unmarshalPoints(pl, se.Attr, "polyline"); err == nil {
					curPar.AddChild(pl)
				} else {
					log.Printf("SVG polyline skipped: %v\n", err)
				}
			case "path":
				if path, err := unmarshalPath(se.Attr); err == nil {
					curPar.AddChild(path)
				} else {
					log.Printf("SVG path skipped: %v\n", err)
				}
			case "style":
				sty := &StyleSheet{}
				for _, attr := range se.Attr {
					setStandardAttr(&sty.NodeBase, attr.Name.Local, attr.Value)
				}
				curPar.AddChild(sty)
				curCSS = sty
				// style code shows up in CharData below
			case "title":
				inTitle = true
			case "desc":
				inDesc = true
			default:
				// unknown tags are ignored; their children, if any,
				// parse into the current parent
				log.Printf("svg: element %q not handled, skipping\n", nm)
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "svg":
				return nil
			case "g":
				if np := len(parStack); np > 0 {
					curPar = parStack[np-1]
					parStack = parStack[:np-1]
				}
			case "title":
				inTitle = false
			case "desc":
				inDesc = false
			case "style":
				curCSS = nil
			}
		case xml.CharData:
			trspc := strings.TrimSpace(string(se))
			switch {
			case inTitle:
				sv.Title += trspc
			case inDesc:
				sv.Desc += trspc
			case curCSS != nil && trspc != "":
				curCSS.ParseString(trspc)
			}
		}
	}
}

func (sv *SVG) unmarshalRootAttrs(attrs []xml.Attr) {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err := sv.ViewBox.SetString(attr.Value); err != nil {
				log.Printf("SVG viewBox ignored: %v\n", err)
				sv.ViewBox.Defaults()
			}
		case "width":
			sv.PhysicalWidth = dimValue(attr.Value)
		case "height":
			sv.PhysicalHeight = dimValue(attr.Value)
		case "preserveAspectRatio":
			sv.PreserveAspectRatio = attr.Value
		case "xmlns":
			// implied on write
		default:
			sv.Root.SetProperty(attr.Name.Local, attr.Value)
		}
	}
}

// dimValue parses a width / height attribute, returning 0 for anything
// unusable (percentages, auto) so the dimension reads as "not declared".
func dimValue(val string) float32 {
	if strings.HasSuffix(val, "%") {
		return 0
	}
	f, err := math32.ParseFloat32(val)
	if err != nil {
		return 0
	}
	return f
}

// setStandardAttr sets standard attributes of node given XML-style
// name / value (e.g., from parsing SVG files); returns true if handled.
func setStandardAttr(nb *NodeBase, name, val string) bool {
	switch name {
	case "id":
		nb.SetName(val)
		return true
	case "class":
		nb.Class = val
		return true
	case "style":
		SetStyleProperties(nb, val)
		return true
	}
	return false
}

func unmarshalGroup(gp *Group, attrs []xml.Attr) {
	for _, attr := range attrs {
		if setStandardAttr(&gp.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		gp.SetProperty(attr.Name.Local, attr.Value)
	}
}

func unmarshalRect(attrs []xml.Attr) (*Rect, error) {
	rect := &Rect{}
	var x, y, w, h, rx, ry float32
	var err error
	for _, attr := range attrs {
		if setStandardAttr(&rect.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		switch attr.Name.Local {
		case "x":
			x, err = math32.ParseFloat32(attr.Value)
		case "y":
			y, err = math32.ParseFloat32(attr.Value)
		case "width":
			w, err = math32.ParseFloat32(attr.Value)
		case "height":
			h, err = math32.ParseFloat32(attr.Value)
		case "rx":
			rx, err = math32.ParseFloat32(attr.Value)
		case "ry":
			ry, err = math32.ParseFloat32(attr.Value)
		default:
			rect.SetProperty(attr.Name.Local, attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	rect.Pos.Set(x, y)
	rect.Size.Set(w, h)
	rect.Radius.Set(rx, ry)
	return rect, nil
}

func unmarshalCircle(attrs []xml.Attr) (*Circle, error) {
	circle := &Circle{}
	var cx, cy, r float32
	var err error
	for _, attr := range attrs {
		if setStandardAttr(&circle.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		switch attr.Name.Local {
		case "cx":
			cx, err = math32.ParseFloat32(attr.Value)
		case "cy":
			cy, err = math32.ParseFloat32(attr.Value)
		case "r":
			r, err = math32.ParseFloat32(attr.Value)
		default:
			circle.SetProperty(attr.Name.Local, attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	circle.Pos.Set(cx, cy)
	circle.Radius = r
	return circle, nil
}

func unmarshalEllipse(attrs []xml.Attr) (*Ellipse, error) {
	ellipse := &Ellipse{}
	var cx, cy, rx, ry float32
	var err error
	for _, attr := range attrs {
		if setStandardAttr(&ellipse.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		switch attr.Name.Local {
		case "cx":
			cx, err = math32.ParseFloat32(attr.Value)
		case "cy":
			cy, err = math32.ParseFloat32(attr.Value)
		case "rx":
			rx, err = math32.ParseFloat32(attr.Value)
		case "ry":
			ry, err = math32.ParseFloat32(attr.Value)
		default:
			ellipse.SetProperty(attr.Name.Local, attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	ellipse.Pos.Set(cx, cy)
	ellipse.Radii.Set(rx, ry)
	return ellipse, nil
}

func unmarshalLine(attrs []xml.Attr) (*Line, error) {
	line := &Line{}
	var x1, y1, x2, y2 float32
	var err error
	for _, attr := range attrs {
		if setStandardAttr(&line.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		switch attr.Name.Local {
		case "x1":
			x1, err = math32.ParseFloat32(attr.Value)
		case "y1":
			y1, err = math32.ParseFloat32(attr.Value)
		case "x2":
			x2, err = math32.ParseFloat32(attr.Value)
		case "y2":
			y2, err = math32.ParseFloat32(attr.Value)
		default:
			line.SetProperty(attr.Name.Local, attr.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	line.Start.Set(x1, y1)
	line.End.Set(x2, y2)
	return line, nil
}

func unmarshalPoints(pl *Polyline, attrs []xml.Attr, tag string) error {
	for _, attr := range attrs {
		if setStandardAttr(&pl.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		switch attr.Name.Local {
		case "points":
			pts := math32.ReadPoints(attr.Value)
			sz := len(pts)
			if sz%2 != 0 {
				return fmt.Errorf("SVG %s has an odd number of points: %v str: %v", tag, sz, attr.Value)
			}
			pvec := make([]math32.Vector2, sz/2)
			for ci := 0; ci < sz/2; ci++ {
				pvec[ci].Set(pts[ci*2], pts[ci*2+1])
			}
			pl.Points = pvec
		default:
			pl.SetProperty(attr.Name.Local, attr.Value)
		}
	}
	return nil
}

func unmarshalPath(attrs []xml.Attr) (*Path, error) {
	path := &Path{}
	for _, attr := range attrs {
		if setStandardAttr(&path.NodeBase, attr.Name.Local, attr.Value) {
			continue
		}
		switch attr.Name.Local {
		case "d":
			if err := path.SetData(attr.Value); err != nil {
				return nil, err
			}
		default:
			path.SetProperty(attr.Name.Local, attr.Value)
		}
	}
	return path, nil
}
