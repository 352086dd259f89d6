// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package upload

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+.\-]*://\S+`)

// ParseURL extracts the uploaded image URL from the tool output. The last
// non-empty line is searched first, then the whole output.
func ParseURL(output string) (string, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if url := urlPattern.FindString(last); url != "" {
		return url, nil
	}
	if url := urlPattern.FindString(output); url != "" {
		return url, nil
	}
	return "", &UnparsableOutputError{Output: output}
}

// TempFileName is the name of the temporary file handed to the upload tool:
// the hex MD5 digest of the content followed by the original extension.
func TempFileName(fileName string, data []byte) string {
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]) + filepath.Ext(fileName)
}

// DisplayName is the file name without directory and extension, used as
// image alt text
func DisplayName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
