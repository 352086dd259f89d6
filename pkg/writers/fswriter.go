// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"
)

// FSWriter is implementation of Writer interface for writing documents to
// the file system. Content is written to a temporary sibling file that
// replaces the target, so readers never observe a partially written file.
type FSWriter struct {
	// Mode is used for files that do not exist yet. Defaults to 0644.
	Mode os.FileMode
}

func (f *FSWriter) Write(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}
	mode := f.Mode
	if mode == 0 {
		mode = 0644
	}
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	if err = os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	return nil
}
