// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package gendocs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"k8s.io/klog/v2"
)

// Format of the generated command reference
type Format string

const (
	// Markdown renders one markdown page per command
	Markdown Format = "md"
	// ManPages renders one man page per command
	ManPages Format = "man"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Markdown, ManPages:
		return f, nil
	}
	return "", fmt.Errorf("unknown format '%s'. Must be one of %v", s, []Format{Markdown, ManPages})
}

// Generate writes the reference documentation of root and all its
// subcommands to destination, creating the directory when missing
func Generate(root *cobra.Command, format Format, destination string) error {
	destination = filepath.Clean(destination)
	if err := os.MkdirAll(destination, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", destination, err)
	}
	root.DisableAutoGenTag = true
	switch format {
	case ManPages:
		header := &doc.GenManHeader{
			Title:   "VDITOR-BRIDGE",
			Manual:  "vditor-bridge Command Reference",
			Section: "1",
		}
		return doc.GenManTree(root, header, destination)
	case Markdown:
		return doc.GenMarkdownTree(root, destination)
	}
	return fmt.Errorf("unsupported format %q", format)
}

// NewGenCmdDocs generates commands reference documentation
func NewGenCmdDocs() *cobra.Command {
	var format, destination string
	command := &cobra.Command{
		Use:   "gen-cmd-docs",
		Short: "Generates commands reference documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ParseFormat(format)
			if err != nil {
				return err
			}
			if err = Generate(cmd.Root(), f, destination); err != nil {
				klog.Error(err)
				return err
			}
			klog.V(4).Infof("%s documentation written to %s", f, destination)
			return nil
		},
	}
	command.Flags().StringVarP(&format, "format", "f", string(Markdown),
		"Specifies the generated documentation format. Must be one of: `md` (for markdown) or `man` (for man pages).")
	command.Flags().StringVarP(&destination, "destination", "d", "",
		"Path to directory where the documentation will be generated. If it does not exist, it will be created. Required flag.")
	_ = command.MarkFlagRequired("destination")
	return command
}
