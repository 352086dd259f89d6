// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"bytes"
	"errors"
)

// ErrFrontMatterNotClosed is raised to signal
// that the rules for defining a frontmatter element
// in a markdown document have been violated
var ErrFrontMatterNotClosed = errors.New("missing closing frontmatter `---`")

// StripFrontMatter splits a document into its front matter block, including
// the enclosing `---` lines, and the content following it.
func StripFrontMatter(b []byte) ([]byte, []byte, error) {
	var (
		started bool
		pos     int
	)
	for pos < len(b) {
		end := bytes.IndexByte(b[pos:], '\n')
		next := len(b)
		if end >= 0 {
			next = pos + end + 1
		}
		line := bytes.TrimSpace(b[pos:next])
		switch {
		case string(line) == "---" && !started:
			started = true
		case string(line) == "---":
			return b[:next], b[next:], nil
		case !started && len(line) > 0:
			// only whitespace is acceptable before front matter
			return nil, b, nil
		}
		pos = next
	}
	if started {
		return nil, nil, ErrFrontMatterNotClosed
	}
	return nil, b, nil
}
