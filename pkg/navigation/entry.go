// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"bytes"
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrStopWalk can be returned by a WalkFunc to end the walk early without an error
var ErrStopWalk = errors.New("stop walk")

// Entry is a single node of the sidebar navigation. It is a leaf link
// or, when it has Items, a group rendering its items as a submenu
type Entry struct {
	// Text is the label displayed in the sidebar
	Text string `yaml:"text" json:"text"`
	// Link points to the document resource, usually a relative path
	// with or without extension
	Link string `yaml:"link" json:"link"`
	// Collapsed is the initial UI state of a group. Nil means not specified
	Collapsed *bool `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	// Items of a group, in render order
	Items []*Entry `yaml:"items,omitempty" json:"items,omitempty"`
}

// entryWithItems is Entry with items written even when empty, so a
// group declared with no items stays invalid after a round trip
type entryWithItems struct {
	Text      string   `yaml:"text" json:"text"`
	Link      string   `yaml:"link" json:"link"`
	Collapsed *bool    `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []*Entry `yaml:"items" json:"items"`
}

// plainEntry drops the marshaler methods of Entry
type plainEntry Entry

// MarshalYAML omits items only when they are nil
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.Items != nil {
		return entryWithItems(e), nil
	}
	return plainEntry(e), nil
}

// MarshalJSON omits items only when they are nil. HTML characters in
// text and link are kept as they are
func (e Entry) MarshalJSON() ([]byte, error) {
	var (
		buf bytes.Buffer
		err error
	)
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if e.Items != nil {
		err = encoder.Encode(entryWithItems(e))
	} else {
		err = encoder.Encode(plainEntry(e))
	}
	if err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Tree is the ordered top level of the navigation
type Tree []*Entry

// WalkFunc is called for each entry visited by Walk. path holds the
// index of the entry at every level starting from the top level
type WalkFunc func(entry *Entry, depth int, path []int) error

// IsGroup returns true if the entry has nested items
func (e *Entry) IsGroup() bool {
	return len(e.Items) > 0
}

// IsCollapsed returns true only if collapsed is explicitly set to true
func (e *Entry) IsCollapsed() bool {
	return e.Collapsed != nil && *e.Collapsed
}

// Clone returns a deep copy of the entry
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	out := &Entry{
		Text: e.Text,
		Link: e.Link,
	}
	if e.Collapsed != nil {
		collapsed := *e.Collapsed
		out.Collapsed = &collapsed
	}
	if e.Items != nil {
		out.Items = make([]*Entry, len(e.Items))
		for i, item := range e.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

func (e *Entry) String() string {
	entry, err := yaml.Marshal(e)
	if err != nil {
		return ""
	}
	return string(entry)
}

// Clone returns a deep copy of the tree
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, e := range t {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entries at all levels
func (t Tree) Len() int {
	count := 0
	_ = t.Walk(func(_ *Entry, _ int, _ []int) error {
		count++
		return nil
	})
	return count
}

// Walk visits the entries depth first in declaration order, parents
// before their items. Nil entries are skipped. Returning ErrStopWalk
// from fn ends the walk and Walk returns nil. The tree must be free of
// cycles, see Validate
func (t Tree) Walk(fn WalkFunc) error {
	err := walk(t, 0, nil, fn)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func walk(entries []*Entry, depth int, parentPath []int, fn WalkFunc) error {
	for i, e := range entries {
		if e == nil {
			continue
		}
		path := make([]int, len(parentPath)+1)
		copy(path, parentPath)
		path[len(parentPath)] = i
		if err := fn(e, depth, path); err != nil {
			return err
		}
		if err := walk(e.Items, depth+1, path, fn); err != nil {
			return err
		}
	}
	return nil
}
