// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/jobs"
	"github.com/vditor-wsl/vditor-bridge/pkg/markdown"
	"github.com/vditor-wsl/vditor-bridge/pkg/upload"
	"github.com/vditor-wsl/vditor-bridge/pkg/writers"
	"k8s.io/klog/v2"
)

func (a *app) newUploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload [FILE...]",
		Short: "Upload images with PicGo and print their markdown",
		Long: `Uploads the given image files with PicGo and prints a markdown image for each
of them. With --document, uploads the local images referenced by a markdown
document instead and rewrites their links to the uploaded URLs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := a.options()
			if err != nil {
				return err
			}
			if options.Document == "" && len(args) == 0 {
				return errors.New("either image files or --document must be given")
			}
			if options.Document != "" && len(args) > 0 {
				return errors.New("image files and --document are mutually exclusive")
			}
			cmd.SilenceUsage = true
			uploader := a.newUploader(options)
			if options.Document != "" {
				writer := a.writer
				var dryRun writers.DryRunWriter
				if options.DryRun {
					dryRun = writers.NewDryRunWriter(cmd.OutOrStdout())
					writer = dryRun
				}
				if err = a.uploadDocument(cmd, options, uploader, writer); err != nil {
					return err
				}
				if dryRun != nil {
					return dryRun.Flush()
				}
				return nil
			}
			return a.uploadFiles(cmd, options, uploader, args)
		},
	}
	configureUploadFlags(cmd, a.vip)
	return cmd
}

type uploadTask struct {
	index      int
	path       string
	workingDir string
}

func (t *uploadTask) String() string {
	return t.path
}

// uploadAll uploads the files in parallel and returns their URLs by index.
// Failed uploads leave an empty URL.
func uploadAll(ctx context.Context, uploader bridge.Uploader, workers int, tasks []*uploadTask) ([]string, error) {
	urls := make([]string, len(tasks))
	var mu sync.Mutex
	job := &jobs.Job{
		MinWorkers: 1,
		MaxWorkers: workers,
		Worker: jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
			t := task.(*uploadTask)
			data, err := os.ReadFile(t.path)
			if err != nil {
				return err
			}
			link, err := uploader.Upload(ctx, filepath.Base(t.path), data, t.workingDir)
			if err != nil {
				return err
			}
			klog.V(4).Infof("uploaded %s to %s", t.path, link)
			mu.Lock()
			urls[t.index] = link
			mu.Unlock()
			return nil
		}),
	}
	batch := make([]interface{}, len(tasks))
	for i, t := range tasks {
		batch[i] = t
	}
	return urls, job.Dispatch(ctx, batch)
}

func (a *app) uploadFiles(cmd *cobra.Command, options *Options, uploader bridge.Uploader, files []string) error {
	tasks := make([]*uploadTask, 0, len(files))
	for i, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return err
		}
		tasks = append(tasks, &uploadTask{index: i, path: abs, workingDir: filepath.Dir(abs)})
	}
	urls, err := uploadAll(a.ctx, uploader, options.UploadWorkers, tasks)
	for i, link := range urls {
		if link == "" {
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), markdown.Image(upload.DisplayName(files[i]), link))
	}
	return err
}

func (a *app) uploadDocument(cmd *cobra.Command, options *Options, uploader bridge.Uploader, writer writers.Writer) error {
	docPath, err := filepath.Abs(options.Document)
	if err != nil {
		return err
	}
	source, err := os.ReadFile(docPath)
	if err != nil {
		return err
	}
	images, err := markdown.Images(source)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", options.Document, err)
	}

	docDir := filepath.Dir(docPath)
	var (
		tasks        []*uploadTask
		destinations []string
		seen         = map[string]bool{}
	)
	for _, img := range images {
		if !markdown.IsLocal(img.Destination) || seen[img.Destination] {
			continue
		}
		seen[img.Destination] = true
		tasks = append(tasks, &uploadTask{
			index:      len(tasks),
			path:       localPath(docDir, img.Destination),
			workingDir: docDir,
		})
		destinations = append(destinations, img.Destination)
	}
	if len(tasks) == 0 {
		klog.Infof("%s references no local images", options.Document)
		return nil
	}

	urls, uploadErr := uploadAll(a.ctx, uploader, options.UploadWorkers, tasks)
	rewrites := map[string]string{}
	for i, link := range urls {
		if link != "" {
			rewrites[destinations[i]] = link
		}
	}
	if len(rewrites) > 0 {
		content, err := markdown.RewriteImages(source, rewrites)
		if err != nil {
			return err
		}
		if options.DryRun {
			fmt.Fprint(cmd.OutOrStdout(), string(content))
		}
		if err = writer.Write(docPath, content); err != nil {
			return err
		}
		klog.Infof("rewrote %d image links in %s", len(rewrites), options.Document)
	}
	return uploadErr
}

// localPath resolves an image destination relative to the document directory
func localPath(docDir string, destination string) string {
	p := destination
	if strings.HasPrefix(destination, "file:") {
		if u, err := url.Parse(destination); err == nil {
			p = u.Path
		}
	} else if unescaped, err := url.PathUnescape(destination); err == nil {
		p = unescaped
	}
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return p
	}
	return filepath.Join(docDir, p)
}
