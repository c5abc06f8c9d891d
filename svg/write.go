// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/svgprep/core/base/errors"
	"github.com/svgprep/core/math32"
)

// SaveXML saves the SVG to a XML-encoded file, using WriteXML.
func (sv *SVG) SaveXML(fname string) error {
	fp, err := os.Create(fname)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = sv.WriteXML(bw, true)
	if err != nil {
		return errors.Log(err)
	}
	return bw.Flush()
}

// String returns the document as XML-encoded SVG markup, without
// extra indentation.
func (sv *SVG) String() string {
	var b bytes.Buffer
	sv.WriteXML(&b, false)
	return b.String()
}

// WriteXML writes XML-formatted SVG output to the given writer.
// Attribute order is fixed (id, geometry, class, then remaining
// properties sorted by name), so identical documents always produce
// byte-identical markup.
func (sv *SVG) WriteXML(wr io.Writer, indent bool) error {
	enc := xml.NewEncoder(wr)
	if indent {
		enc.Indent("", "  ")
	}
	err := sv.marshalXML(enc)
	if err != nil {
		return err
	}
	return enc.Flush()
}

// xmlAttr appends a name=value attribute.
func xmlAttr(attrs *[]xml.Attr, name, val string) {
	*attrs = append(*attrs, xml.Attr{Name: xml.Name{Local: name}, Value: val})
}

// xmlFloatAttr appends a float-valued attribute in minimal %g form.
func xmlFloatAttr(attrs *[]xml.Attr, name string, val float32) {
	xmlAttr(attrs, name, fmt.Sprintf("%g", val))
}

// baseAttrs appends the shared id / class / property attributes for the
// node, with properties in sorted order for deterministic output.
func baseAttrs(attrs *[]xml.Attr, nb *NodeBase) {
	if nb.Class != "" {
		xmlAttr(attrs, "class", nb.Class)
	}
	if len(nb.Properties) == 0 {
		return
	}
	keys := make([]string, 0, len(nb.Properties))
	for k := range nb.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		xmlAttr(attrs, k, fmt.Sprintf("%v", nb.Properties[k]))
	}
}

func (sv *SVG) marshalXML(enc *xml.Encoder) error {
	var attrs []xml.Attr
	xmlAttr(&attrs, "xmlns", "http://www.w3.org/2000/svg")
	if sv.PhysicalWidth > 0 {
		xmlFloatAttr(&attrs, "width", sv.PhysicalWidth)
	}
	if sv.PhysicalHeight > 0 {
		xmlFloatAttr(&attrs, "height", sv.PhysicalHeight)
	}
	if sv.ViewBox.Valid() {
		xmlAttr(&attrs, "viewBox", sv.ViewBox.String())
	}
	if sv.PreserveAspectRatio != "" {
		xmlAttr(&attrs, "preserveAspectRatio", sv.PreserveAspectRatio)
	}
	baseAttrs(&attrs, &sv.Root.NodeBase)
	se := xml.StartElement{Name: xml.Name{Local: "svg"}, Attr: attrs}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if sv.Title != "" {
		if err := encodeTextElement(enc, "title", sv.Title); err != nil {
			return err
		}
	}
	if sv.Desc != "" {
		if err := encodeTextElement(enc, "desc", sv.Desc); err != nil {
			return err
		}
	}
	for _, kid := range sv.Root.Children {
		if err := marshalNodeXML(enc, kid); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}

func encodeTextElement(enc *xml.Encoder, tag, text string) error {
	se := xml.StartElement{Name: xml.Name{Local: tag}}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if err := enc.EncodeToken(xml.CharData(text)); err != nil {
		return err
	}
	return enc.EncodeToken(se.End())
}

func marshalNodeXML(enc *xml.Encoder, n Node) error {
	nb := n.AsNodeBase()
	var attrs []xml.Attr
	if nb.Name != "" {
		xmlAttr(&attrs, "id", nb.Name)
	}
	switch nd := n.(type) {
	case *Group:
		baseAttrs(&attrs, nb)
		se := xml.StartElement{Name: xml.Name{Local: "g"}, Attr: attrs}
		if err := enc.EncodeToken(se); err != nil {
			return err
		}
		for _, kid := range nd.Children {
			if err := marshalNodeXML(enc, kid); err != nil {
				return err
			}
		}
		return enc.EncodeToken(se.End())
	case *Rect:
		xmlFloatAttr(&attrs, "x", nd.Pos.X)
		xmlFloatAttr(&attrs, "y", nd.Pos.Y)
		xmlFloatAttr(&attrs, "width", nd.Size.X)
		xmlFloatAttr(&attrs, "height", nd.Size.Y)
		if nd.Radius.X > 0 {
			xmlFloatAttr(&attrs, "rx", nd.Radius.X)
		}
		if nd.Radius.Y > 0 {
			xmlFloatAttr(&attrs, "ry", nd.Radius.Y)
		}
		return encodeShape(enc, "rect", attrs, nb)
	case *Circle:
		xmlFloatAttr(&attrs, "cx", nd.Pos.X)
		xmlFloatAttr(&attrs, "cy", nd.Pos.Y)
		xmlFloatAttr(&attrs, "r", nd.Radius)
		return encodeShape(enc, "circle", attrs, nb)
	case *Ellipse:
		xmlFloatAttr(&attrs, "cx", nd.Pos.X)
		xmlFloatAttr(&attrs, "cy", nd.Pos.Y)
		xmlFloatAttr(&attrs, "rx", nd.Radii.X)
		xmlFloatAttr(&attrs, "ry", nd.Radii.Y)
		return encodeShape(enc, "ellipse", attrs, nb)
	case *Line:
		xmlFloatAttr(&attrs, "x1", nd.Start.X)
		xmlFloatAttr(&attrs, "y1", nd.Start.Y)
		xmlFloatAttr(&attrs, "x2", nd.End.X)
		xmlFloatAttr(&attrs, "y2", nd.End.Y)
		return encodeShape(enc, "line", attrs, nb)
	case *Polygon:
		xmlAttr(&attrs, "points", pointsString(nd.Points))
		return encodeShape(enc, "polygon", attrs, nb)
	case *Polyline:
		xmlAttr(&attrs, "points", pointsString(nd.Points))
		return encodeShape(enc, "polyline", attrs, nb)
	case *Path:
		if nd.DataStr == "" && len(nd.Data) > 0 {
			nd.UpdatePathString()
		}
		xmlAttr(&attrs, "d", nd.DataStr)
		return encodeShape(enc, "path", attrs, nb)
	case *StyleSheet:
		se := xml.StartElement{Name: xml.Name{Local: "style"}, Attr: attrs}
		if err := enc.EncodeToken(se); err != nil {
			return err
		}
		if nd.Sheet != nil {
			if err := enc.EncodeToken(xml.CharData(nd.Sheet.String())); err != nil {
				return err
			}
		}
		return enc.EncodeToken(se.End())
	default:
		log.Printf("svg: element %q not handled in write, skipping\n", n.SVGName())
		return nil
	}
}

func encodeShape(enc *xml.Encoder, tag string, attrs []xml.Attr, nb *NodeBase) error {
	baseAttrs(&attrs, nb)
	se := xml.StartElement{Name: xml.Name{Local: tag}, Attr: attrs}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	return enc.EncodeToken(se.End())
}

func pointsString(pts []math32.Vector2) string {
	var sb strings.Builder
	for i, p := range pts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g,%g", p.X, p.Y)
	}
	return sb.String()
}
