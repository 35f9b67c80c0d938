// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

var (
	// parser extension for GitHub Flavored Markdown & Frontmatter support
	extensions = []goldmark.Extender{
		extension.GFM,
		meta.Meta,
	}
	// goldmark.Markdown parser with GFM extensions
	gmParser = goldmark.New(goldmark.WithExtensions(extensions...))
)

// Parse markdown content and returns AST node or error. The front
// matter of the document is available as the document meta
func Parse(source []byte) (ast.Node, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(reader, parser.WithContext(context))
	fmb, err := meta.TryGet(context)
	if err != nil {
		return nil, fmt.Errorf("invalid front matter: %w", err)
	}
	if d, ok := doc.(*ast.Document); ok {
		d.SetMeta(fmb)
	}
	return doc, nil
}

// Metadata holds the document properties relevant for navigation
type Metadata struct {
	// Title is the front matter title if set, else the text of the first
	// heading. Empty for documents with neither
	Title string
	// Weight is the front matter weight, nil if not set
	Weight *int
}

// ReadMetadata parses source and extracts its Metadata
func ReadMetadata(source []byte) (*Metadata, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	md := &Metadata{}
	if d, ok := doc.(*ast.Document); ok {
		fm := d.Meta()
		if title, ok := fm["title"].(string); ok {
			md.Title = strings.TrimSpace(title)
		}
		md.Weight = weight(fm["weight"])
	}
	if md.Title != "" {
		return md, nil
	}
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			md.Title = strings.TrimSpace(nodeText(heading, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return md, err
}

// Title returns the document title, see Metadata
func Title(source []byte) (string, error) {
	md, err := ReadMetadata(source)
	if err != nil {
		return "", err
	}
	return md.Title, nil
}

func weight(v interface{}) *int {
	var w int
	switch n := v.(type) {
	case int:
		w = n
	case int64:
		w = int(n)
	case uint64:
		w = int(n)
	case float64:
		w = int(n)
	default:
		return nil
	}
	return &w
}

// nodeText concatenates the text segments below n
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := child.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
