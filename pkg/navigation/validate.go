// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const (
	// ReasonNilEntry is reported for nil entries
	ReasonNilEntry = "entry is nil"
	// ReasonEmptyText is reported for entries with blank text
	ReasonEmptyText = "text is empty"
	// ReasonEmptyLink is reported for entries with blank link
	ReasonEmptyLink = "link is empty"
	// ReasonEmptyItems is reported for groups declared with an empty items list
	ReasonEmptyItems = "items is present but empty"
	// ReasonCycle is reported for entries nested inside themselves
	ReasonCycle = "entry references itself or an ancestor"
)

// ValidationError describes a single invalid entry
type ValidationError struct {
	// Path is the position of the entry, e.g. "[1].items[0]"
	Path string
	// Text of the entry, if any
	Text string
	// Reason is one of the Reason constants
	Reason string
}

func (v *ValidationError) Error() string {
	if v.Text == "" {
		return fmt.Sprintf("%s: %s", v.Path, v.Reason)
	}
	return fmt.Sprintf("%s (%q): %s", v.Path, v.Text, v.Reason)
}

// Validate checks that every entry has a text and a link, that groups
// are not empty and that the tree has no cycles. All violations are
// returned as a *multierror.Error of *ValidationError
func Validate(tree Tree) error {
	var errs *multierror.Error
	validateEntries(tree, "", map[*Entry]bool{}, &errs)
	return errs.ErrorOrNil()
}

func validateEntries(entries []*Entry, parentPath string, ancestors map[*Entry]bool, errs **multierror.Error) {
	for i, e := range entries {
		path := entryPath(parentPath, i)
		if e == nil {
			*errs = multierror.Append(*errs, &ValidationError{Path: path, Reason: ReasonNilEntry})
			continue
		}
		if ancestors[e] {
			*errs = multierror.Append(*errs, &ValidationError{Path: path, Text: e.Text, Reason: ReasonCycle})
			continue
		}
		if strings.TrimSpace(e.Text) == "" {
			*errs = multierror.Append(*errs, &ValidationError{Path: path, Reason: ReasonEmptyText})
		}
		if strings.TrimSpace(e.Link) == "" {
			*errs = multierror.Append(*errs, &ValidationError{Path: path, Text: e.Text, Reason: ReasonEmptyLink})
		}
		if e.Items != nil && len(e.Items) == 0 {
			*errs = multierror.Append(*errs, &ValidationError{Path: path, Text: e.Text, Reason: ReasonEmptyItems})
		}
		ancestors[e] = true
		validateEntries(e.Items, path+".items", ancestors, errs)
		delete(ancestors, e)
	}
}

func entryPath(parentPath string, index int) string {
	return parentPath + "[" + strconv.Itoa(index) + "]"
}

// Violations flattens the error returned by Validate
func Violations(err error) []*ValidationError {
	if err == nil {
		return nil
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		if v, ok := err.(*ValidationError); ok {
			return []*ValidationError{v}
		}
		return nil
	}
	out := make([]*ValidationError, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		if v, ok := e.(*ValidationError); ok {
			out = append(out, v)
		}
	}
	return out
}
