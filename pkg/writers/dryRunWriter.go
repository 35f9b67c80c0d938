// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Kyma contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates Writers recording to the same
	// backend but for different roots
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	writer io.Writer
	mux    sync.Mutex
	files  []*file
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root   string
	parent *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		writer: w,
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root:   root,
		parent: d,
	}
}

func (w *writer) Write(name, filePath string, content []byte) error {
	w.parent.mux.Lock()
	defer w.parent.mux.Unlock()
	w.parent.files = append(w.parent.files, &file{
		path: path.Join(w.root, filePath, name),
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	d.mux.Lock()
	defer d.mux.Unlock()
	var b bytes.Buffer
	sort.SliceStable(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.writer.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	printed := map[string]bool{}
	for _, f := range files {
		segments := strings.Split(f.path, "/")
		for i, s := range segments {
			p := strings.Join(segments[:i+1], "/")
			if printed[p] {
				continue
			}
			printed[p] = true
			b.WriteString(strings.Repeat("  ", i))
			if i == len(segments)-1 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
			} else {
				b.WriteString(fmt.Sprintf("%s\n", s))
			}
		}
	}
}
