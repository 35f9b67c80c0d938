// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"html/template"
	"io"

	"github.com/kyma-project/docnav/pkg/internal/must"
	"github.com/kyma-project/docnav/pkg/navigation"
)

const htmlSidebar = `{{define "entries"}}<ul>
{{range .}}{{if .IsGroup}}<li><details{{if not .IsCollapsed}} open{{end}}><summary><a href="{{.Link}}">{{.Text}}</a></summary>
{{template "entries" .Items}}</details></li>
{{else}}<li><a href="{{.Link}}">{{.Text}}</a></li>
{{end}}{{end}}</ul>
{{end}}<nav class="sidebar">
{{template "entries" .}}</nav>
`

var htmlTemplate = must.Succeed(template.New("sidebar").Parse(htmlSidebar))

// HTML renders a nav element. Groups are details elements, open
// unless the group is collapsed
type HTML struct{}

// Render implements Renderer
func (h *HTML) Render(w io.Writer, tree navigation.Tree) error {
	return htmlTemplate.Execute(w, tree)
}

// FileName implements Renderer
func (h *HTML) FileName() string {
	return "_sidebar.html"
}
