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

// Text renders an indented tree, one entry per line
type Text struct{}

// Render implements Renderer
func (t *Text) Render(w io.Writer, tree navigation.Tree) error {
	bw := bufio.NewWriter(w)
	err := tree.Walk(func(e *navigation.Entry, depth int, _ []int) error {
		marker := ""
		if e.IsGroup() && e.IsCollapsed() {
			marker = " [collapsed]"
		}
		_, err := fmt.Fprintf(bw, "%s%s -> %s%s\n", strings.Repeat("  ", depth), e.Text, e.Link, marker)
		return err
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// FileName implements Renderer
func (t *Text) FileName() string {
	return "_sidebar.txt"
}
