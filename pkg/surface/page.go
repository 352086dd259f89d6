// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package surface

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"k8s.io/klog/v2"
)

//go:embed templates
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type indexEntry struct {
	Path string
	Name string
	URI  string
}

type indexData struct {
	Documents []indexEntry
}

// pageConfig is handed to the page script
type pageConfig struct {
	SocketPath              string `json:"socketPath"`
	CDN                     string `json:"cdn,omitempty"`
	EnableFindWidget        bool   `json:"enableFindWidget"`
	RetainContextWhenHidden bool   `json:"retainContextWhenHidden"`
}

type editorData struct {
	Title  string
	Nonce  string
	Script string
	Style  string
	Config pageConfig
}

type assets struct {
	script string
	style  string
	// cdn is the base the widget loads its own resources from
	cdn string
	// origin is the CSP source of the assets
	origin string
}

func newAssets(mediaDir string, cdn string) assets {
	if mediaDir != "" || cdn == "" {
		// the media directory mirrors the widget package layout
		return assets{
			script: "/media/dist/index.min.js",
			style:  "/media/dist/index.css",
			cdn:    "/media",
			origin: "'self'",
		}
	}
	cdn = strings.TrimSuffix(cdn, "/")
	origin := cdn
	if u, err := url.Parse(cdn); err == nil && u.Host != "" {
		origin = u.Scheme + "://" + u.Host
	}
	return assets{
		script: cdn + "/dist/index.min.js",
		style:  cdn + "/dist/index.css",
		cdn:    cdn,
		origin: origin,
	}
}

func contentSecurityPolicy(nonce string, assetOrigin string, host string) string {
	directives := []string{
		"default-src 'none'",
		"script-src 'nonce-" + nonce + "' " + assetOrigin,
		// the widget injects its own styles
		"style-src 'unsafe-inline' " + assetOrigin,
		"font-src " + assetOrigin,
		"img-src * data: blob:",
		"connect-src 'self' ws://" + host + " wss://" + host + " " + assetOrigin,
	}
	return strings.Join(directives, "; ")
}

func render(w http.ResponseWriter, name string, data interface{}) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		klog.Errorf("rendering %s failed: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(buf.Bytes()); err != nil {
		klog.V(4).Infof("writing %s failed: %v", name, err)
	}
}
