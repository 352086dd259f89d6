// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package editor is the entry point registering the markdown editor as a
// custom editor of the host.
package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"k8s.io/klog/v2"
)

// ViewType identifies the markdown editor view
const ViewType = "vditor.editor"

// ErrUnknownViewType is returned when no provider is registered for a view type
var ErrUnknownViewType = errors.New("unknown view type")

// Options are the host level options of a custom editor view
type Options struct {
	// EnableFindWidget keeps the in-document find feature available
	EnableFindWidget bool
	// RetainContextWhenHidden keeps the view state alive while the view is
	// in the background
	RetainContextWhenHidden bool
}

// Provider resolves a custom text editor view for a document
type Provider interface {
	ResolveCustomTextEditor(ctx context.Context, doc host.Document, surface bridge.Surface) error
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func(ctx context.Context, doc host.Document, surface bridge.Surface) error

// ResolveCustomTextEditor calls f(ctx, doc, surface)
func (f ProviderFunc) ResolveCustomTextEditor(ctx context.Context, doc host.Document, surface bridge.Surface) error {
	return f(ctx, doc, surface)
}

type registration struct {
	provider Provider
	options  Options
}

// Registry holds the custom editor providers by view type
type Registry struct {
	mu        sync.RWMutex
	providers map[string]registration
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{providers: map[string]registration{}}
}

// RegisterCustomEditorProvider registers provider for viewType. Disposing
// the result unregisters it.
func (r *Registry) RegisterCustomEditorProvider(viewType string, provider Provider, options Options) (host.Disposable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[viewType]; ok {
		return nil, fmt.Errorf("a provider for view type %s is already registered", viewType)
	}
	r.providers[viewType] = registration{provider: provider, options: options}
	klog.V(4).Infof("registered custom editor provider %s", viewType)
	return host.DisposeFunc(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.providers, viewType)
	}), nil
}

// Options returns the options registered for viewType
func (r *Registry) Options(viewType string) (Options, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.providers[viewType]
	return reg.options, ok
}

// Open resolves a view of doc rendered in surface with the provider of
// viewType. It blocks until the view is closed.
func (r *Registry) Open(ctx context.Context, viewType string, doc host.Document, surface bridge.Surface) error {
	r.mu.RLock()
	reg, ok := r.providers[viewType]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownViewType, viewType)
	}
	return reg.provider.ResolveCustomTextEditor(ctx, doc, surface)
}

// DefaultOptions keep the find widget and retain the view state when hidden
func DefaultOptions() Options {
	return Options{
		EnableFindWidget:        true,
		RetainContextWhenHidden: true,
	}
}

// Activate registers the markdown editor with the DefaultOptions
func Activate(registry *Registry, workspace host.Workspace, uploader bridge.Uploader, notifier host.Notifier) (host.Disposable, error) {
	return ActivateWithOptions(registry, workspace, uploader, notifier, DefaultOptions())
}

// ActivateWithOptions registers the markdown editor with custom view options
func ActivateWithOptions(registry *Registry, workspace host.Workspace, uploader bridge.Uploader, notifier host.Notifier, options Options) (host.Disposable, error) {
	provider := &bridge.Provider{
		Workspace: workspace,
		Uploader:  uploader,
		Notifier:  notifier,
	}
	return registry.RegisterCustomEditorProvider(ViewType, provider, options)
}
