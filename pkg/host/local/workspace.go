// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package local implements the host document model on top of the local
// file system.
package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"github.com/vditor-wsl/vditor-bridge/pkg/writers"
	"k8s.io/klog/v2"
	"k8s.io/utils/exec"
)

// ErrUnknownDocument is returned for URIs of documents that were not opened
var ErrUnknownDocument = errors.New("unknown document")

// Workspace keeps the opened documents in memory, persists edits to disk and
// picks up changes made to the files by other programs
type Workspace struct {
	// Writer persists edits
	Writer writers.Writer
	// Exec launches the default editor
	Exec exec.Interface
	// OpenCommand is the command line opening a file with the system
	// default application. The file path is appended as last argument.
	OpenCommand []string

	mu        sync.RWMutex
	docs      map[string]*Document
	byPath    map[string]*Document
	listeners map[int]func(host.ChangeEvent)
	nextID    int

	watcher *fsnotify.Watcher
	dirs    map[string]bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewWorkspace creates a Workspace watching its documents for changes.
// openCommand overrides the system default opener when not empty.
func NewWorkspace(openCommand string) (*Workspace, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Workspace{
		Writer:      &writers.FSWriter{},
		Exec:        exec.New(),
		OpenCommand: strings.Fields(openCommand),
		docs:        map[string]*Document{},
		byPath:      map[string]*Document{},
		listeners:   map[int]func(host.ChangeEvent){},
		watcher:     watcher,
		dirs:        map[string]bool{},
		done:        make(chan struct{}),
	}
	if len(w.OpenCommand) == 0 {
		w.OpenCommand = DefaultOpenCommand()
	}
	w.wg.Add(1)
	go w.watch()
	return w, nil
}

// DefaultOpenCommand is the command opening files with their default
// application on the current platform
func DefaultOpenCommand() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open loads the file at path. Opening the same file twice returns the
// same document.
func (w *Workspace) Open(path string) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w.mu.RLock()
	doc, ok := w.byPath[abs]
	w.mu.RUnlock()
	if ok {
		return doc, nil
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if doc, ok = w.byPath[abs]; ok {
		return doc, nil
	}
	dir := filepath.Dir(abs)
	if !w.dirs[dir] {
		// watching the directory survives editors replacing the file
		if err = w.watcher.Add(dir); err != nil {
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	doc = newDocument(abs, string(content))
	w.docs[doc.URI()] = doc
	w.byPath[abs] = doc
	klog.V(4).Infof("opened %s", doc.URI())
	return doc, nil
}

// Document returns an opened document by URI
func (w *Workspace) Document(uri string) (host.Document, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	doc, ok := w.docs[uri]
	return doc, ok
}

// Documents returns the opened documents ordered by URI
func (w *Workspace) Documents() []host.Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	docs := make([]host.Document, 0, len(w.docs))
	for _, doc := range w.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].URI() < docs[j].URI() })
	return docs
}

// ApplyEdit replaces the document content and persists it. Listeners are
// notified before ApplyEdit returns.
func (w *Workspace) ApplyEdit(ctx context.Context, edit host.FullReplace) error {
	w.mu.RLock()
	doc, ok := w.docs[edit.URI]
	w.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDocument, edit.URI)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	doc.writeMu.Lock()
	// the in-memory text is updated first so that the watcher sees no
	// difference when it reads the written file
	old := doc.swap(edit.Text)
	if err := w.Writer.Write(doc.FileName(), []byte(edit.Text)); err != nil {
		doc.swap(old)
		doc.writeMu.Unlock()
		return fmt.Errorf("failed to save %s: %w", doc.URI(), err)
	}
	doc.writeMu.Unlock()

	klog.V(6).Infof("applied edit to %s from %q", doc.URI(), edit.Origin)
	w.fire(host.ChangeEvent{Document: doc, URI: doc.URI(), Origin: edit.Origin})
	return nil
}

// OnDidChangeTextDocument registers listener for changes of all documents
func (w *Workspace) OnDidChangeTextDocument(listener func(host.ChangeEvent)) host.Disposable {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := w.nextID
	w.nextID++
	w.listeners[id] = listener
	return host.DisposeFunc(func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	})
}

// OpenWith opens the document with the system default application. It is
// the only view type the local workspace knows besides the custom editor.
func (w *Workspace) OpenWith(ctx context.Context, uri string, viewType string) error {
	if viewType != host.DefaultViewType {
		return fmt.Errorf("unsupported view type %s", viewType)
	}
	doc, ok := w.Document(uri)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDocument, uri)
	}
	if len(w.OpenCommand) == 0 {
		return errors.New("no open command configured")
	}
	args := append(append([]string{}, w.OpenCommand[1:]...), doc.FileName())
	var stderr bytes.Buffer
	cmd := w.Exec.CommandContext(ctx, w.OpenCommand[0], args...)
	cmd.SetStderr(&stderr)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s failed: %w: %s", w.OpenCommand[0], strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Close stops watching the documents
func (w *Workspace) Close() error {
	var errs *multierror.Error
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	if err := w.watcher.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	w.wg.Wait()
	w.mu.Lock()
	w.listeners = map[int]func(host.ChangeEvent){}
	w.mu.Unlock()
	return errs.ErrorOrNil()
}

func (w *Workspace) fire(e host.ChangeEvent) {
	w.mu.RLock()
	ids := make([]int, 0, len(w.listeners))
	for id := range w.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]func(host.ChangeEvent), 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, w.listeners[id])
	}
	w.mu.RUnlock()
	for _, l := range listeners {
		l(e)
	}
}

func (w *Workspace) watch() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.mu.RLock()
			doc, found := w.byPath[filepath.Clean(event.Name)]
			w.mu.RUnlock()
			if found {
				w.reload(doc)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			klog.Warningf("file watcher error: %v", err)
		}
	}
}

// reload picks up content written by other programs
func (w *Workspace) reload(doc *Document) {
	doc.writeMu.Lock()
	content, err := os.ReadFile(doc.FileName())
	if err != nil {
		doc.writeMu.Unlock()
		klog.V(4).Infof("failed to reload %s: %v", doc.URI(), err)
		return
	}
	text := string(content)
	if text == doc.Text() {
		doc.writeMu.Unlock()
		return
	}
	doc.swap(text)
	doc.writeMu.Unlock()
	klog.V(4).Infof("%s changed on disk", doc.URI())
	w.fire(host.ChangeEvent{Document: doc, URI: doc.URI()})
}
