// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kyma-project/docnav/pkg/navigation"
)

// Markdown renders a docsify sidebar, a nested list of links.
// Markdown has no notion of collapsed groups so the hint is dropped
type Markdown struct{}

// Render implements Renderer
func (m *Markdown) Render(w io.Writer, tree navigation.Tree) error {
	bw := bufio.NewWriter(w)
	err := tree.Walk(func(e *navigation.Entry, depth int, _ []int) error {
		_, err := fmt.Fprintf(bw, "%s- [%s](%s)\n", strings.Repeat("  ", depth), escapeLinkText(e.Text), escapeLinkDestination(e.Link))
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// FileName implements Renderer
func (m *Markdown) FileName() string {
	return "_sidebar.md"
}

var (
	linkTextEscaper        = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)
	linkDestinationEscaper = strings.NewReplacer(` `, `%20`, `(`, `%28`, `)`, `%29`)
)

func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}

func escapeLinkDestination(s string) string {
	return linkDestinationEscaper.Replace(s)
}
