// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package render turns a navigation tree into the sidebar documents
// consumed by documentation site generators.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kyma-project/docnav/pkg/navigation"
)

// Renderer renders a navigation tree into one document
type Renderer interface {
	// Render writes the document to w. Entries are rendered in
	// declaration order
	Render(w io.Writer, tree navigation.Tree) error
	// FileName is the name of the rendered document
	FileName() string
}

const (
	// FormatMarkdown is a docsify _sidebar.md
	FormatMarkdown = "markdown"
	// FormatHTML is a nav element with nested lists
	FormatHTML = "html"
	// FormatText is an indented plain text tree
	FormatText = "text"
	// FormatHugo is a Hugo menu configuration
	FormatHugo = "hugo"
)

// ErrUnknownFormat is returned by New for unsupported formats
var ErrUnknownFormat = errors.New("unknown render format")

// Options configures renderers
type Options struct {
	// Hugo configures the hugo menu renderer
	Hugo HugoOptions
}

// Formats returns the supported render formats
func Formats() []string {
	formats := []string{FormatMarkdown, FormatHTML, FormatText, FormatHugo}
	for _, f := range navigation.Formats {
		formats = append(formats, string(f))
	}
	return formats
}

// New creates the renderer for format
func New(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md":
		return &Markdown{}, nil
	case FormatHTML:
		return &HTML{}, nil
	case FormatText, "txt":
		return &Text{}, nil
	case FormatHugo:
		return NewHugo(opts.Hugo), nil
	}
	if f, err := navigation.ParseFormat(format); err == nil {
		return &Document{Format: f}, nil
	}
	return nil, fmt.Errorf("%w: %s, must be one of %v", ErrUnknownFormat, format, Formats())
}

// Document renders the tree in one of the navigation document formats
type Document struct {
	Format navigation.Format
}

// Render implements Renderer
func (d *Document) Render(w io.Writer, tree navigation.Tree) error {
	return navigation.Encode(w, tree, d.Format)
}

// FileName implements Renderer
func (d *Document) FileName() string {
	return "_sidebar" + d.Format.Extension()
}
