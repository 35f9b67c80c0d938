// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package navigation

import (
	"errors"
	"fmt"

	"github.com/kyma-project/docnav/pkg/osfakes/osshim"
	"k8s.io/klog/v2"
)

// ErrNotFound is returned when the navigation file does not exist
var ErrNotFound = errors.New("navigation file not found")

// Loader reads navigation files
type Loader struct {
	Os osshim.Os
}

// NewLoader creates a Loader reading from the local file system
func NewLoader() *Loader {
	return &Loader{Os: &osshim.OsShim{}}
}

// Load reads the navigation file at filePath, choosing the format by
// its extension
func Load(filePath string) (Tree, error) {
	return NewLoader().Load(filePath)
}

// Load reads the navigation file at filePath, choosing the format by
// its extension
func (l *Loader) Load(filePath string) (Tree, error) {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return nil, err
	}
	if isDir, err := l.Os.IsDir(filePath); err == nil && isDir {
		return nil, fmt.Errorf("navigation path %s is a directory, instead of file", filePath)
	}
	content, err := l.Os.ReadFile(filePath)
	if err != nil {
		if l.Os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, filePath)
		}
		return nil, fmt.Errorf("reading navigation file %s fails: %w", filePath, err)
	}
	tree, err := Decode(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	klog.V(4).Infof("loaded %d navigation entries from %s", tree.Len(), filePath)
	return tree, nil
}
