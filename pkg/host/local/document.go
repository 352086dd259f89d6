// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"net/url"
	"path/filepath"
	"sync"
)

// Document is a markdown file opened in a Workspace
type Document struct {
	uri      string
	fileName string

	// serializes writes of the document
	writeMu sync.Mutex

	mu   sync.RWMutex
	text string
}

func newDocument(fileName string, text string) *Document {
	return &Document{
		uri:      FileURI(fileName),
		fileName: fileName,
		text:     text,
	}
}

// URI is the file URI of the document
func (d *Document) URI() string {
	return d.uri
}

// FileName is the absolute path of the document
func (d *Document) FileName() string {
	return d.fileName
}

// Text returns the current content
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.text
}

// swap replaces the content, returning the previous one
func (d *Document) swap(text string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	old := d.text
	d.text = text
	return old
}

// FileURI converts an absolute file path to a file URI
func FileURI(path string) string {
	p := filepath.ToSlash(path)
	if len(p) > 0 && p[0] != '/' {
		// windows drive letter
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}
