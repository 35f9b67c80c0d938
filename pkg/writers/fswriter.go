// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyma-project/docnav/pkg/osfakes/osshim"
	"k8s.io/klog/v2"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
	Os   osshim.Os
}

// NewFSWriter creates a FSWriter rooted at root
func NewFSWriter(root string) *FSWriter {
	return &FSWriter{
		Root: root,
		Os:   &osshim.OsShim{},
	}
}

func (f *FSWriter) Write(name, path string, content []byte) error {
	if name == "" {
		return fmt.Errorf("write to %s failed: empty file name", filepath.Join(f.Root, path))
	}
	p := filepath.Join(f.Root, path)
	if err := f.Os.MkdirAll(p, os.ModePerm); err != nil {
		return fmt.Errorf("error creating directory %s: %w", p, err)
	}
	filePath := filepath.Join(p, name)
	if err := f.Os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	klog.V(6).Infof("written %s", filePath)
	return nil
}
