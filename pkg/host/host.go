// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package host declares the parts of the editor host that a document bridge
// consumes: the document model, change notifications, alternate viewers and
// user notifications.
package host

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// DefaultViewType names the host's native text editor
const DefaultViewType = "default"

// Document is a host owned text document
//
//counterfeiter:generate . Document
type Document interface {
	// URI identifies the document
	URI() string
	// FileName is the local file path of the document, empty if it has none
	FileName() string
	// Text returns the full current content
	Text() string
}

// FullReplace replaces the whole content of a document
type FullReplace struct {
	URI  string
	Text string
	// Origin tags the edit with the identity of its author. It is carried
	// unchanged on the resulting ChangeEvent.
	Origin string
}

// ChangeEvent notifies a change of a document content
type ChangeEvent struct {
	Document Document
	URI      string
	// Origin is the origin of the edit that caused the change, empty for
	// changes made outside of ApplyEdit (e.g. on disk)
	Origin string
}

// Disposable releases a registration
type Disposable interface {
	Dispose()
}

// DisposeFunc adapts a function to Disposable
type DisposeFunc func()

// Dispose calls f()
func (f DisposeFunc) Dispose() {
	f()
}

// Workspace is the host document model
//
//counterfeiter:generate . Workspace
type Workspace interface {
	// ApplyEdit applies a full range replace to a document
	ApplyEdit(ctx context.Context, edit FullReplace) error
	// OnDidChangeTextDocument registers a listener invoked after every
	// change of any document
	OnDidChangeTextDocument(listener func(ChangeEvent)) Disposable
	// OpenWith opens the document in the viewer registered for viewType
	OpenWith(ctx context.Context, uri string, viewType string) error
}

// Notifier shows messages to the user
//
//counterfeiter:generate . Notifier
type Notifier interface {
	ShowInformation(message string)
	ShowError(message string)
	// WithProgress reports task as running under title until it returns
	WithProgress(ctx context.Context, title string, task func(ctx context.Context) error) error
}
