// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"net"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/vditor-wsl/vditor-bridge/pkg/editor"
	"github.com/vditor-wsl/vditor-bridge/pkg/host/local"
	"github.com/vditor-wsl/vditor-bridge/pkg/surface"
	"k8s.io/klog/v2"
)

func (a *app) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve FILE...",
		Short: "Serve the markdown editor for the given documents",
		Long: `Opens the markdown documents and serves an editor page for each of them.
Edits are saved to the files immediately, changes made to the files by other
programs are shown in the editor. Images dropped into the editor are uploaded
with PicGo.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			options, err := a.options()
			if err != nil {
				return err
			}
			return a.serve(cmd, options, args)
		},
	}
	configureServeFlags(cmd, a.vip)
	return cmd
}

func (a *app) serve(cmd *cobra.Command, options *Options, files []string) (err error) {
	workspace, err := local.NewWorkspace(options.OpenCommand)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := workspace.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()

	docs := make([]*local.Document, 0, len(files))
	for _, f := range files {
		doc, err := workspace.Open(f)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	registry := editor.NewRegistry()
	registration, err := editor.ActivateWithOptions(registry, workspace, a.newUploader(options), local.LogNotifier{}, editor.Options{
		EnableFindWidget:        options.EnableFindWidget,
		RetainContextWhenHidden: options.RetainContextWhenHidden,
	})
	if err != nil {
		return err
	}
	defer registration.Dispose()

	server := surface.New(registry, editor.ViewType)
	server.MediaDir = options.MediaDir
	server.CDN = options.CDN

	listener, err := net.Listen("tcp", options.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", options.Listen, err)
	}
	for _, doc := range docs {
		id := server.Add(doc)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\thttp://%s%s\n", doc.FileName(), listener.Addr(), surface.EditPath(id))
	}
	klog.V(4).Infof("picgo: %s, upload timeout: %s", options.PicGoPath, options.UploadTimeout)
	return server.Serve(a.ctx, listener)
}
