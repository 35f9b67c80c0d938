// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kyma-project/docnav/pkg/internal/link"
	"github.com/kyma-project/docnav/pkg/navigation"
	"gopkg.in/yaml.v3"
)

const defaultHugoMenu = "docs"

// HugoOptions configures the Hugo menu renderer
type HugoOptions struct {
	// Menu is the name of the Hugo menu, "docs" if empty
	Menu string
	// PrettyURLs indicates if the site serves documents with pretty URLs.
	// Example: (source) sample.md -> (build) sample/index.html -> (runtime) /sample/
	PrettyURLs bool
	// BaseURL is prepended to the rewritten relative links, "/" if empty
	BaseURL string
	// SectionFiles are file names served as the index of their directory
	SectionFiles []string
}

// Hugo renders a Hugo menu configuration. Weights follow the declaration
// order and groups become parents of their items
type Hugo struct {
	opts HugoOptions
}

type hugoMenuEntry struct {
	Identifier string                 `yaml:"identifier"`
	Name       string                 `yaml:"name"`
	URL        string                 `yaml:"url"`
	Weight     int                    `yaml:"weight"`
	Parent     string                 `yaml:"parent,omitempty"`
	Params     map[string]interface{} `yaml:"params,omitempty"`
}

type hugoMenus struct {
	Menu map[string][]*hugoMenuEntry `yaml:"menu"`
}

// NewHugo creates a Hugo menu renderer
func NewHugo(opts HugoOptions) *Hugo {
	if opts.Menu == "" {
		opts.Menu = defaultHugoMenu
	}
	if opts.BaseURL == "" {
		opts.BaseURL = "/"
	}
	return &Hugo{opts: opts}
}

// Render implements Renderer
func (h *Hugo) Render(w io.Writer, tree navigation.Tree) error {
	entries := []*hugoMenuEntry{}
	err := tree.Walk(func(e *navigation.Entry, _ int, path []int) error {
		url, err := h.url(e.Link)
		if err != nil {
			return fmt.Errorf("entry %q: %w", e.Text, err)
		}
		entry := &hugoMenuEntry{
			Identifier: identifier(path),
			Name:       e.Text,
			URL:        url,
			Weight:     (path[len(path)-1] + 1) * 10,
		}
		if len(path) > 1 {
			entry.Parent = identifier(path[:len(path)-1])
		}
		if e.Collapsed != nil {
			entry.Params = map[string]interface{}{"collapsed": *e.Collapsed}
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&hugoMenus{Menu: map[string][]*hugoMenuEntry{h.opts.Menu: entries}}); err != nil {
		return fmt.Errorf("can't encode hugo menu: %w", err)
	}
	return encoder.Close()
}

// FileName implements Renderer
func (h *Hugo) FileName() string {
	return "menus.yaml"
}

func (h *Hugo) url(l string) (string, error) {
	if link.IsAbsolute(l) {
		return l, nil
	}
	rewritten := link.Ugly(l, h.opts.SectionFiles)
	if h.opts.PrettyURLs {
		rewritten = link.Pretty(l, h.opts.SectionFiles)
	}
	return link.Build(h.opts.BaseURL, rewritten)
}

func identifier(path []int) string {
	segments := make([]string, len(path))
	for i, p := range path {
		segments[i] = strconv.Itoa(p)
	}
	return "nav-" + strings.Join(segments, "-")
}
