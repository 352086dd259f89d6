// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package bridge

import (
	"context"

	"github.com/vditor-wsl/vditor-bridge/pkg/host"
)

// Provider resolves editor views by running a Bridge for each of them
type Provider struct {
	Workspace host.Workspace
	Uploader  Uploader
	Notifier  host.Notifier
}

// ResolveCustomTextEditor wires doc to surface and blocks until the view is closed
func (p *Provider) ResolveCustomTextEditor(ctx context.Context, doc host.Document, surface Surface) error {
	return New(doc, p.Workspace, surface, p.Uploader, p.Notifier).Run(ctx)
}
