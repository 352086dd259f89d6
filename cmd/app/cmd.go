// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vditor-wsl/vditor-bridge/cmd/configuration"
	"github.com/vditor-wsl/vditor-bridge/cmd/gendocs"
	"github.com/vditor-wsl/vditor-bridge/cmd/version"
	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/upload"
	"github.com/vditor-wsl/vditor-bridge/pkg/writers"
	"k8s.io/klog/v2"
)

// EnvPrefix prefixes the environment variables overriding flags, e.g.
// VDITOR_BRIDGE_PICGO_PATH for --picgo-path
const EnvPrefix = "VDITOR_BRIDGE"

var initKlogFlags sync.Once

// app carries the state shared by the subcommands
type app struct {
	ctx    context.Context
	vip    *viper.Viper
	loader configuration.Loader
	// uploader replaces the PicGo uploader when set
	uploader bridge.Uploader
	// writer persists rewritten documents, defaults to a writers.FSWriter
	writer writers.Writer
}

// NewCommand creates a new root command and propagates
// the context to the Run callback closures of its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	a := &app{
		ctx:    ctx,
		vip:    viper.New(),
		loader: loader,
		writer: &writers.FSWriter{},
	}
	return a.command()
}

func (a *app) command() *cobra.Command {
	a.vip.SetEnvPrefix(EnvPrefix)
	a.vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.vip.AutomaticEnv()
	setDefaults(a.vip)

	cmd := &cobra.Command{
		Use:   "vditor-bridge",
		Short: "Edit markdown documents with the Vditor editor and upload their images with PicGo",
	}
	configurePersistentFlags(cmd, a.vip)

	cmd.AddCommand(a.newServeCmd())
	cmd.AddCommand(a.newUploadCmd())
	cmd.AddCommand(a.newConfigCmd())
	cmd.AddCommand(version.NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())

	initKlogFlags.Do(func() {
		klog.InitFlags(nil)
	})
	AddFlags(cmd)

	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}

// options merges the configuration file below flags and environment
// variables and returns the result
func (a *app) options() (*Options, error) {
	config, err := a.loader.Load()
	if err != nil {
		return nil, err
	}
	if err = a.vip.MergeConfigMap(config.Settings()); err != nil {
		return nil, err
	}
	return newOptions(a.vip)
}

func (a *app) newUploader(options *Options) bridge.Uploader {
	if a.uploader != nil {
		return a.uploader
	}
	return upload.New(options.PicGoPath, options.UploadTimeout)
}
