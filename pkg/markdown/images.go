// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markdown

import (
	"bytes"
	"net/url"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// DefaultAlt is the alternative text of images without one
const DefaultAlt = "image"

var altEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

// Image renders markdown image syntax
func Image(alt string, destination string) string {
	if alt == "" {
		alt = DefaultAlt
	}
	if strings.ContainsAny(destination, " ()<>") {
		destination = "<" + destination + ">"
	}
	return "![" + altEscaper.Replace(alt) + "](" + destination + ")"
}

// ImageRef is an image found in a document
type ImageRef struct {
	Alt         string
	Destination string
	Title       string
}

// Images lists the images of a document in order of appearance
func Images(source []byte) ([]ImageRef, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	var images []ImageRef
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			images = append(images, ImageRef{
				Alt:         string(img.Text(source)),
				Destination: string(img.Destination),
				Title:       string(img.Title),
			})
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return images, err
}

// IsLocal reports whether an image destination refers to a local file
func IsLocal(destination string) bool {
	if destination == "" || strings.HasPrefix(destination, "#") || strings.HasPrefix(destination, "//") {
		return false
	}
	if filepath.IsAbs(destination) || filepath.VolumeName(destination) != "" {
		return true
	}
	u, err := url.Parse(destination)
	if err != nil {
		return false
	}
	return u.Scheme == "" || u.Scheme == "file"
}

// RewriteImages replaces image destinations by the values mapped to them.
// Only the destinations of image nodes and of the link reference
// definitions used by images are changed. Links, code and front matter
// stay untouched, even when they mention the same path.
func RewriteImages(source []byte, destinations map[string]string) ([]byte, error) {
	if len(destinations) == 0 {
		return source, nil
	}
	doc, err := Parse(source)
	if err != nil {
		return nil, err
	}
	r := &rewriter{
		source:       source,
		destinations: destinations,
		references:   map[string]string{},
	}
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Image:
			r.image(v)
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			if lines := n.Lines(); lines.Len() > 0 {
				r.code = append(r.code, span{start: lines.At(0).Start, stop: lines.At(lines.Len() - 1).Stop})
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	r.definitions()
	return r.apply(), nil
}

// span is a byte range of the source, replaced by to
type span struct {
	start, stop int
	to          string
}

type rewriter struct {
	source       []byte
	destinations map[string]string
	// references maps normalized labels of reference images to their destination
	references map[string]string
	code       []span
	spans      []span
	// cursor is the end of the last image
	cursor int
}

func (r *rewriter) image(img *ast.Image) {
	dest := string(img.Destination)
	to, ok := r.destinations[dest]
	if !ok {
		return
	}
	closing := r.closingBracket(img)
	if closing < 0 {
		return
	}
	r.cursor = closing + 1
	src := r.source
	next := closing + 1
	if next < len(src) && src[next] == '(' {
		start, stop, angled := linkDestination(src, next+1)
		if stop < 0 || !sameDestination(src[start:stop], dest) {
			return
		}
		r.spans = append(r.spans, span{start: start, stop: stop, to: destinationText(to, angled)})
		r.cursor = stop
		return
	}
	label := string(img.Text(src))
	if next < len(src) && src[next] == '[' {
		if end := bytes.IndexByte(src[next+1:], ']'); end > 0 {
			label = string(src[next+1 : next+1+end])
		}
	}
	r.references[normalizeLabel(label)] = dest
}

// closingBracket returns the offset of the bracket closing the alt text
// of img, or -1 when it cannot be located
func (r *rewriter) closingBracket(img *ast.Image) int {
	src := r.source
	from := lastStop(img)
	if from < 0 {
		// no alt text, look for the empty brackets past the preceding content
		from = r.cursor
		if b := blockStart(img); b > from {
			from = b
		}
		for prev := img.PreviousSibling(); prev != nil; prev = prev.PreviousSibling() {
			if stop := lastStop(prev); stop >= 0 {
				if stop > from {
					from = stop
				}
				break
			}
		}
		i := bytes.Index(src[from:], []byte("![]"))
		if i < 0 {
			return -1
		}
		return from + i + 2
	}
	for i := from; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case ']':
			return i
		}
	}
	return -1
}

// definitions collects the link reference definitions of reference images
func (r *rewriter) definitions() {
	if len(r.references) == 0 {
		return
	}
	offset := 0
	if fm, _, err := StripFrontMatter(r.source); err == nil {
		offset = len(fm)
	}
	for _, m := range definitionPattern.FindAllSubmatchIndex(r.source[offset:], -1) {
		start, stop := offset+m[4], offset+m[5]
		if r.inCode(start) {
			continue
		}
		dest, ok := r.references[normalizeLabel(string(r.source[offset+m[2]:offset+m[3]]))]
		if !ok {
			continue
		}
		angled := r.source[start] == '<'
		if angled {
			start, stop = start+1, stop-1
		}
		if !sameDestination(r.source[start:stop], dest) {
			continue
		}
		r.spans = append(r.spans, span{start: start, stop: stop, to: destinationText(r.destinations[dest], angled)})
	}
}

func (r *rewriter) inCode(offset int) bool {
	for _, c := range r.code {
		if offset >= c.start && offset < c.stop {
			return true
		}
	}
	return false
}

func (r *rewriter) apply() []byte {
	sort.Slice(r.spans, func(i, j int) bool { return r.spans[i].start < r.spans[j].start })
	out := make([]byte, 0, len(r.source))
	last := 0
	for _, s := range r.spans {
		if s.start < last {
			continue
		}
		out = append(out, r.source[last:s.start]...)
		out = append(out, s.to...)
		last = s.stop
	}
	return append(out, r.source[last:]...)
}

var definitionPattern = regexp.MustCompile(`(?m)^ {0,3}\[((?:[^\]\\\n]|\\.)+)\]:[ \t]*\n?[ \t]*(<[^>\n]*>|\S+)`)

// lastStop returns the end of the last source segment below n, -1 if n
// has none
func lastStop(n ast.Node) int {
	stop := -1
	switch v := n.(type) {
	case *ast.Text:
		stop = v.Segment.Stop
	case *ast.RawHTML:
		if v.Segments.Len() > 0 {
			stop = v.Segments.At(v.Segments.Len() - 1).Stop
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := lastStop(c); s > stop {
			stop = s
		}
	}
	return stop
}

func blockStart(n ast.Node) int {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock && p.Lines().Len() > 0 {
			return p.Lines().At(0).Start
		}
	}
	return 0
}

// linkDestination locates the destination of an inline link starting at
// offset, after the opening parenthesis. stop is -1 if there is none.
func linkDestination(src []byte, offset int) (start, stop int, angled bool) {
	i := offset
	for i < len(src) && (src[i] == ' ' || src[i] == '\t' || src[i] == '\n') {
		i++
	}
	if i < len(src) && src[i] == '<' {
		end := bytes.IndexAny(src[i+1:], ">\n")
		if end < 0 || src[i+1+end] != '>' {
			return 0, -1, false
		}
		return i + 1, i + 1 + end, true
	}
	depth := 0
	for start = i; i < len(src); i++ {
		switch c := src[i]; {
		case c == '\\':
			i++
		case c == '(':
			depth++
		case c == ')':
			if depth == 0 {
				return start, i, false
			}
			depth--
		case c == ' ' || c == '\t' || c == '\n':
			return start, i, false
		}
	}
	return 0, -1, false
}

func sameDestination(raw []byte, dest string) bool {
	return string(raw) == dest || unescaper.Replace(string(raw)) == unescaper.Replace(dest)
}

var unescaper = strings.NewReplacer(`\(`, `(`, `\)`, `)`, `\<`, `<`, `\>`, `>`, `\\`, `\`, `\ `, ` `)

func destinationText(to string, angled bool) string {
	if !angled && strings.ContainsAny(to, " ()<>") {
		return "<" + to + ">"
	}
	return to
}

func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}
