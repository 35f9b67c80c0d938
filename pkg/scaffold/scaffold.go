// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package scaffold proposes a navigation tree for a documentation
// directory laid out the way Kyma modules ship their user docs
package scaffold

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/kyma-project/docnav/pkg/markdown"
	"github.com/kyma-project/docnav/pkg/navigation"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"
)

// DefaultSectionFile is the file that turns a directory into a group
const DefaultSectionFile = "README.md"

var orderPrefix = regexp.MustCompile(`^(\d+-)+`)

// Options configures Build
type Options struct {
	// SectionFile names the landing document of a directory. Defaults to
	// DefaultSectionFile
	SectionFile string
	// Collapsed is the initial state of the generated groups
	Collapsed bool
}

// Build walks fsys from its root and proposes a navigation tree. The
// result satisfies navigation.Validate
func Build(fsys fs.FS, opts Options) (navigation.Tree, error) {
	if opts.SectionFile == "" {
		opts.SectionFile = DefaultSectionFile
	}
	b := &builder{fsys: fsys, opts: opts, caser: cases.Title(language.English)}
	tree, err := b.dir(".")
	if err != nil {
		return nil, err
	}
	if tree == nil {
		tree = navigation.Tree{}
	}
	return tree, nil
}

type builder struct {
	fsys  fs.FS
	opts  Options
	caser cases.Caser
}

type candidate struct {
	name   string
	weight int
	entry  *navigation.Entry
}

func (b *builder) dir(dir string) (navigation.Tree, error) {
	des, err := fs.ReadDir(b.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s fails: %w", dir, err)
	}
	var candidates []candidate
	for _, de := range des {
		name := de.Name()
		if skip(name) {
			continue
		}
		p := path.Join(dir, name)
		var c *candidate
		if de.IsDir() {
			c, err = b.group(p)
		} else if strings.EqualFold(path.Ext(name), ".md") && !strings.EqualFold(name, b.opts.SectionFile) {
			c, err = b.leaf(p)
		}
		if err != nil {
			return nil, err
		}
		if c != nil {
			candidates = append(candidates, *c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight < candidates[j].weight
		}
		return candidates[i].name < candidates[j].name
	})
	var tree navigation.Tree
	for _, c := range candidates {
		tree = append(tree, c.entry)
	}
	return tree, nil
}

func (b *builder) leaf(p string) (*candidate, error) {
	md, err := b.metadata(p)
	if err != nil {
		return nil, err
	}
	return &candidate{
		name:   path.Base(p),
		weight: weightOf(md),
		entry: &navigation.Entry{
			Text: b.title(md, path.Base(p)),
			Link: "./" + p,
		},
	}, nil
}

func (b *builder) group(dir string) (*candidate, error) {
	section := path.Join(dir, b.opts.SectionFile)
	if _, err := fs.Stat(b.fsys, section); err != nil {
		klog.Warningf("skipping directory %s without %s", dir, b.opts.SectionFile)
		return nil, nil
	}
	md, err := b.metadata(section)
	if err != nil {
		return nil, err
	}
	items, err := b.dir(dir)
	if err != nil {
		return nil, err
	}
	entry := &navigation.Entry{
		Text: b.title(md, path.Base(dir)),
		Link: "./" + strings.TrimSuffix(section, path.Ext(section)),
	}
	if len(items) > 0 {
		entry.Collapsed = ptr.To(b.opts.Collapsed)
		entry.Items = items
	}
	return &candidate{name: path.Base(dir), weight: weightOf(md), entry: entry}, nil
}

func (b *builder) metadata(p string) (*markdown.Metadata, error) {
	source, err := fs.ReadFile(b.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s fails: %w", p, err)
	}
	md, err := markdown.ReadMetadata(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return md, nil
}

func (b *builder) title(md *markdown.Metadata, name string) string {
	if md.Title != "" {
		return md.Title
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	if trimmed := orderPrefix.ReplaceAllString(name, ""); trimmed != "" {
		name = trimmed
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return b.caser.String(name)
}

func weightOf(md *markdown.Metadata) int {
	if md.Weight == nil {
		return math.MaxInt
	}
	return *md.Weight
}

func skip(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_sidebar.")
}
