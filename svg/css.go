// Copyright (c) 2024, The Svgprep Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// StyleSheet is a node that contains a CSS stylesheet from a <style>
// element. Property values contained in the sheet can be looked up by
// type, .class, and #id selectors.
type StyleSheet struct {
	NodeBase
	Sheet *css.Stylesheet
}

func (ss *StyleSheet) SVGName() string { return "style" }

// ParseString parses the string into a stylesheet of rules,
// which can then be used for extracting properties.
func (ss *StyleSheet) ParseString(str string) error {
	pss, err := parser.Parse(str)
	if err != nil {
		log.Printf("svg.StyleSheet ParseString parser error: %v\n", err)
		return err
	}
	ss.Sheet = pss
	return nil
}

// CSSProperties returns the properties for each of the rules in this
// style sheet, suitable for aggregating into node properties.
func (ss *StyleSheet) CSSProperties() map[string]any {
	if ss.Sheet == nil {
		return nil
	}
	sz := len(ss.Sheet.Rules)
	if sz == 0 {
		return nil
	}
	pr := map[string]any{}
	for _, r := range ss.Sheet.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		nd := len(r.Declarations)
		if nd == 0 {
			continue
		}
		dp := map[string]any{}
		for _, d := range r.Declarations {
			dp[d.Property] = d.Value
		}
		for _, sel := range r.Selectors {
			pr[strings.TrimSpace(sel)] = dp
		}
	}
	return pr
}

// SetStyleProperties parses an inline style="..." attribute value into
// individual properties on the given node.
func SetStyleProperties(nb *NodeBase, style string) {
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		log.Printf("svg inline style parse error: %v\n", err)
		return
	}
	for _, d := range decls {
		nb.SetProperty(d.Property, d.Value)
	}
}
