// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package upload hands images to an external PicGo compatible command line
// tool and reads the resulting URL from its output.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"k8s.io/klog/v2"
	"k8s.io/utils/exec"
)

const (
	// DefaultCommand is the upload tool looked up in PATH when none is configured
	DefaultCommand = "picgo"
	// DefaultTimeout bounds a single invocation of the upload tool
	DefaultTimeout = 2 * time.Minute
)

// Uploader runs `<Command> upload <file>` for every image
type Uploader struct {
	// Command is the upload tool executable name or path
	Command string
	// Timeout bounds the tool invocation. Zero disables the timeout.
	Timeout time.Duration
	// TempDir holds temporary files when no working directory is given.
	// Defaults to os.TempDir().
	TempDir string
	// Exec runs the tool
	Exec exec.Interface

	locks pathLocks
}

// New creates an Uploader running command on the local system
func New(command string, timeout time.Duration) *Uploader {
	return &Uploader{
		Command: command,
		Timeout: timeout,
		Exec:    exec.New(),
	}
}

// Upload writes data to a temporary file named after its content hash,
// runs the upload tool on it and returns the URL the tool reported. The
// temporary file is created in workingDir, if not empty, so that the tool
// can resolve configuration relative to the edited document. It is removed
// before Upload returns.
func (u *Uploader) Upload(ctx context.Context, fileName string, data []byte, workingDir string) (string, error) {
	command, err := u.resolve()
	if err != nil {
		return "", err
	}
	dir := workingDir
	if dir == "" {
		dir = u.tempDir()
	}
	tmp, err := filepath.Abs(filepath.Join(dir, TempFileName(fileName, data)))
	if err != nil {
		return "", err
	}

	// identical content maps to the same path
	unlock := u.locks.lock(tmp)
	defer unlock()
	defer removeTemp(tmp)

	if err = os.WriteFile(tmp, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write temporary file %s: %w", tmp, err)
	}

	if u.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	args := []string{"upload", tmp}
	cmd := u.Exec.CommandContext(ctx, command, args...)
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)
	if workingDir != "" {
		cmd.SetDir(workingDir)
	}
	klog.V(4).Infof("running %s %s", command, strings.Join(args, " "))
	runErr := cmd.Run()
	if stderr.Len() > 0 {
		klog.Warningf("%s stderr: %s", command, strings.TrimSpace(stderr.String()))
	}
	if runErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			runErr = fmt.Errorf("%v: %w", runErr, ctxErr)
		}
		return "", &InvocationError{
			Command:    command,
			Args:       args,
			ExitStatus: exitStatus(runErr),
			Stderr:     stderr.String(),
			Err:        runErr,
		}
	}
	klog.V(6).Infof("%s stdout: %s", command, stdout.String())
	return ParseURL(stdout.String())
}

func (u *Uploader) resolve() (string, error) {
	command := u.Command
	if command == "" {
		command = DefaultCommand
	}
	path, err := u.Exec.LookPath(command)
	if err != nil {
		return "", &InvocationError{Command: command, ExitStatus: -1, Err: err}
	}
	return path, nil
}

func (u *Uploader) tempDir() string {
	if u.TempDir != "" {
		return u.TempDir
	}
	return os.TempDir()
}

func exitStatus(err error) int {
	var exitErr exec.ExitError
	if errors.As(err, &exitErr) && exitErr.Exited() {
		return exitErr.ExitStatus()
	}
	return -1
}

func removeTemp(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		klog.Errorf("failed to cleanup temporary file %s: %v", path, err)
	}
}

// pathLocks serializes uploads sharing a temporary file path
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*pathLock
}

type pathLock struct {
	sync.Mutex
	refs int
}

func (p *pathLocks) lock(path string) func() {
	p.mu.Lock()
	if p.locks == nil {
		p.locks = map[string]*pathLock{}
	}
	l, ok := p.locks[path]
	if !ok {
		l = &pathLock{}
		p.locks[path] = l
	}
	l.refs++
	p.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		p.mu.Lock()
		if l.refs--; l.refs == 0 {
			delete(p.locks, path)
		}
		p.mu.Unlock()
	}
}
