// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package bridge connects one host document with one embedded editor
// surface for the lifetime of an editor view.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"github.com/vditor-wsl/vditor-bridge/pkg/protocol"
	"github.com/vditor-wsl/vditor-bridge/pkg/upload"
	"k8s.io/klog/v2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrSurfaceClosed is returned by a Surface once it has been closed
var ErrSurfaceClosed = errors.New("surface closed")

// Surface is the embedded editor surface of a single view
type Surface interface {
	// Receive blocks until the next message from the surface arrives.
	// It returns ErrSurfaceClosed when the surface is gone.
	Receive(ctx context.Context) (protocol.Message, error)
	// Post sends a message to the surface. It is safe for concurrent use.
	Post(msg protocol.Message) error
}

// Uploader uploads image data and returns its public URL
//
//counterfeiter:generate . Uploader
type Uploader interface {
	Upload(ctx context.Context, fileName string, data []byte, workingDir string) (string, error)
}

// Bridge relays edits between a host document and its surface and serves
// the upload requests of the surface
type Bridge struct {
	id        string
	doc       host.Document
	workspace host.Workspace
	surface   Surface
	uploader  Uploader
	notifier  host.Notifier

	guard   echoGuard
	uploads sync.WaitGroup
}

// New creates a bridge for doc rendered in surface
func New(doc host.Document, workspace host.Workspace, surface Surface, uploader Uploader, notifier host.Notifier) *Bridge {
	return &Bridge{
		id:        uuid.New().String(),
		doc:       doc,
		workspace: workspace,
		surface:   surface,
		uploader:  uploader,
		notifier:  notifier,
	}
}

// ID is the origin tag of the edits applied by this bridge
func (b *Bridge) ID() string {
	return b.id
}

// Run serves the surface until it is closed or ctx is done. Messages are
// handled one at a time, in arrival order. Before Run returns, the document
// change subscription is released and in-flight uploads are cancelled and
// awaited.
func (b *Bridge) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	subscription := b.workspace.OnDidChangeTextDocument(b.onDidChangeTextDocument)
	defer func() {
		b.guard.dispose()
		subscription.Dispose()
		cancel()
		b.uploads.Wait()
		klog.V(4).Infof("bridge %s for %s disposed", b.id, b.doc.URI())
	}()
	klog.V(4).Infof("bridge %s for %s started", b.id, b.doc.URI())

	for {
		msg, err := b.surface.Receive(ctx)
		if err != nil {
			if errors.Is(err, ErrSurfaceClosed) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("receiving from surface of %s failed: %w", b.doc.URI(), err)
		}
		b.handle(ctx, msg)
	}
}

func (b *Bridge) handle(ctx context.Context, msg protocol.Message) {
	klog.V(6).Infof("bridge %s received %s", b.id, msg.Type())
	switch m := msg.(type) {
	case protocol.Ready:
		b.post(protocol.Update{Content: b.doc.Text()})
	case protocol.Update:
		if err := b.replace(ctx, m.Content); err != nil {
			klog.Errorf("failed to update %s: %v", b.doc.URI(), err)
			b.notifier.ShowError(fmt.Sprintf("Failed to update %s: %v", b.doc.URI(), err))
		}
	case protocol.UploadImage:
		b.uploads.Add(1)
		go func() {
			defer b.uploads.Done()
			b.upload(ctx, m)
		}()
	case protocol.SwitchEditor:
		if err := b.workspace.OpenWith(ctx, b.doc.URI(), host.DefaultViewType); err != nil {
			klog.Errorf("failed to open %s with the default editor: %v", b.doc.URI(), err)
			b.notifier.ShowError(fmt.Sprintf("Failed to open %s with the default editor: %v", b.doc.URI(), err))
		}
	case protocol.UploadError:
		// the page reports its own script errors this way
		klog.Errorf("editor surface of %s reported: %s", b.doc.URI(), m.Error)
	default:
		klog.Warningf("ignoring unexpected %s message from surface of %s", msg.Type(), b.doc.URI())
	}
}

// replace writes content as the new document text. Change notifications
// raised while the edit is applied are not echoed back to the surface.
func (b *Bridge) replace(ctx context.Context, content string) error {
	b.guard.begin()
	defer b.guard.end()
	return b.workspace.ApplyEdit(ctx, host.FullReplace{
		URI:    b.doc.URI(),
		Text:   content,
		Origin: b.id,
	})
}

func (b *Bridge) onDidChangeTextDocument(e host.ChangeEvent) {
	if e.URI != b.doc.URI() {
		return
	}
	if e.Origin == b.id || b.guard.suppressed() {
		klog.V(6).Infof("bridge %s suppressed change notification for %s", b.id, e.URI)
		return
	}
	b.post(protocol.Update{Content: b.doc.Text()})
}

func (b *Bridge) upload(ctx context.Context, req protocol.UploadImage) {
	err := b.notifier.WithProgress(ctx, "Uploading image...", func(ctx context.Context) error {
		url, err := b.uploader.Upload(ctx, req.FileName, req.FileData, b.workingDir())
		if err != nil {
			return err
		}
		b.post(protocol.UploadSuccess{
			ID:           req.ID,
			URL:          url,
			OriginalName: upload.DisplayName(req.FileName),
		})
		b.notifier.ShowInformation(fmt.Sprintf("Image uploaded successfully: %s", upload.TempFileName(req.FileName, req.FileData)))
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			klog.V(4).Infof("upload of %s for %s cancelled: %v", req.FileName, b.doc.URI(), err)
			return
		}
		klog.Errorf("upload of %s for %s failed: %v", req.FileName, b.doc.URI(), err)
		b.post(protocol.UploadError{ID: req.ID, Error: err.Error()})
		b.notifier.ShowError(fmt.Sprintf("PicGo Upload Failed: %v", err))
	}
}

// workingDir is the directory of the document, so that the upload tool
// resolves its configuration relative to it
func (b *Bridge) workingDir() string {
	fileName := b.doc.FileName()
	if fileName == "" {
		return ""
	}
	return filepath.Dir(fileName)
}

func (b *Bridge) post(msg protocol.Message) {
	if err := b.surface.Post(msg); err != nil {
		klog.Warningf("failed to post %s message to surface of %s: %v", msg.Type(), b.doc.URI(), err)
	}
}

// echoGuard tells change notifications caused by the bridge's own writes
// apart from external ones. After dispose every notification is suppressed.
type echoGuard struct {
	mu       sync.Mutex
	writing  bool
	disposed bool
}

func (g *echoGuard) begin() {
	g.mu.Lock()
	g.writing = true
	g.mu.Unlock()
}

func (g *echoGuard) end() {
	g.mu.Lock()
	g.writing = false
	g.mu.Unlock()
}

func (g *echoGuard) dispose() {
	g.mu.Lock()
	g.disposed = true
	g.mu.Unlock()
}

func (g *echoGuard) suppressed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.writing || g.disposed
}
