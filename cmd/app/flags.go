// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vditor-wsl/vditor-bridge/pkg/surface"
	"github.com/vditor-wsl/vditor-bridge/pkg/upload"
)

func configurePersistentFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().String("picgo-path", upload.DefaultCommand,
		"Path of the PicGo command line tool. A bare name is looked up in PATH.")
	_ = vip.BindPFlag("picgo-path", command.PersistentFlags().Lookup("picgo-path"))

	command.PersistentFlags().Duration("upload-timeout", upload.DefaultTimeout,
		"Maximum duration of a single upload. Zero disables the limit.")
	_ = vip.BindPFlag("upload-timeout", command.PersistentFlags().Lookup("upload-timeout"))

	command.PersistentFlags().Int("upload-workers", defaultUploadWorkers,
		"Number of images uploaded in parallel by the upload command.")
	_ = vip.BindPFlag("upload-workers", command.PersistentFlags().Lookup("upload-workers"))
}

const (
	defaultListen                  = "127.0.0.1:8734"
	defaultUploadWorkers           = 4
	defaultEnableFindWidget        = true
	defaultRetainContextWhenHidden = true
)

// setDefaults mirrors the defaults of the serve flags in vip
func setDefaults(vip *viper.Viper) {
	vip.SetDefault("listen", defaultListen)
	vip.SetDefault("cdn", surface.DefaultCDN)
	vip.SetDefault("enable-find-widget", defaultEnableFindWidget)
	vip.SetDefault("retain-context-when-hidden", defaultRetainContextWhenHidden)
}

func configureServeFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().String("listen", defaultListen,
		"Address the editor is served on.")
	_ = vip.BindPFlag("listen", command.Flags().Lookup("listen"))

	command.Flags().String("media-dir", "",
		"Directory with the Vditor distribution served under /media/. When empty, the editor assets are loaded from --cdn.")
	_ = vip.BindPFlag("media-dir", command.Flags().Lookup("media-dir"))

	command.Flags().String("cdn", surface.DefaultCDN,
		"Base URL of the Vditor distribution.")
	_ = vip.BindPFlag("cdn", command.Flags().Lookup("cdn"))

	command.Flags().String("open-command", "",
		"Command opening a document with the default editor. Defaults to the platform's opener (xdg-open, open or rundll32).")
	_ = vip.BindPFlag("open-command", command.Flags().Lookup("open-command"))

	command.Flags().Bool("enable-find-widget", defaultEnableFindWidget,
		"Keep the browser's find shortcut available in the editor.")
	_ = vip.BindPFlag("enable-find-widget", command.Flags().Lookup("enable-find-widget"))

	command.Flags().Bool("retain-context-when-hidden", defaultRetainContextWhenHidden,
		"Keep the editor connected while its page is hidden.")
	_ = vip.BindPFlag("retain-context-when-hidden", command.Flags().Lookup("retain-context-when-hidden"))
}

func configureUploadFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().String("document", "",
		"Upload the local images referenced by this markdown document and rewrite their links.")
	_ = vip.BindPFlag("document", command.Flags().Lookup("document"))

	command.Flags().Bool("dry-run", false,
		"Upload the images but print the document that would be written instead of writing it.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))
}
