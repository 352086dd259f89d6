// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is a Writer that records writes instead of performing them
type DryRunWriter interface {
	Writer
	// Flush writes the recorded file hierarchy to the underlying writer
	// (e.g. os.Stdout)
	Flush() error
}

type dryRunWriter struct {
	out   io.Writer
	mu    sync.Mutex
	files []*file
	t1    time.Time
}

type file struct {
	path string
	size int
}

// NewDryRunWriter creates a DryRunWriter reporting to w
func NewDryRunWriter(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		out:   w,
		files: []*file{},
		t1:    time.Now(),
	}
}

func (d *dryRunWriter) Write(path string, content []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files = append(d.files, &file{
		path: filepath.ToSlash(path),
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	var b bytes.Buffer
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	b.WriteString(fmt.Sprintf("\nFinished in %f seconds\n", time.Since(d.t1).Seconds()))
	_, err := d.out.Write(b.Bytes())
	return err
}

func format(files []*file, b *bytes.Buffer) {
	seen := map[string]bool{}
	for _, f := range files {
		segments := strings.Split(strings.TrimPrefix(f.path, "/"), "/")
		for i, s := range segments {
			p := strings.Join(segments[:i+1], "/")
			if seen[p] {
				continue
			}
			seen[p] = true
			b.Write(bytes.Repeat([]byte("  "), i))
			if i == len(segments)-1 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
