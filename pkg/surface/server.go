// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package surface serves the markdown editor page to a browser and connects
// each opened page as an editor surface over a websocket.
package surface

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-multierror"
	"github.com/julienschmidt/httprouter"
	"github.com/vditor-wsl/vditor-bridge/pkg/bridge"
	"github.com/vditor-wsl/vditor-bridge/pkg/editor"
	"github.com/vditor-wsl/vditor-bridge/pkg/host"
	"k8s.io/klog/v2"
)

// DefaultCDN hosts the editor widget assets when no media directory is set
const DefaultCDN = "https://unpkg.com/vditor@3.10.4"

const shutdownTimeout = 5 * time.Second

// Views opens editor views
type Views interface {
	// Open blocks until the view of doc rendered in surface is closed
	Open(ctx context.Context, viewType string, doc host.Document, surface bridge.Surface) error
	// Options returns the view options registered for viewType
	Options(viewType string) (editor.Options, bool)
}

// Server serves the editor pages of the added documents
type Server struct {
	// Views opens a view for every connected page
	Views Views
	// ViewType selects the provider of the views
	ViewType string
	// MediaDir is a directory with the widget assets served under /media/
	MediaDir string
	// CDN is the base URL of the widget assets when MediaDir is empty
	CDN string

	upgrader websocket.Upgrader

	mu    sync.RWMutex
	docs  map[string]host.Document
	conns map[*Conn]struct{}
	// closing is set once Serve stops accepting views
	closing bool
	views   sync.WaitGroup
}

// New creates a Server opening views of viewType
func New(views Views, viewType string) *Server {
	return &Server{
		Views:    views,
		ViewType: viewType,
		CDN:      DefaultCDN,
		docs:     map[string]host.Document{},
		conns:    map[*Conn]struct{}{},
	}
}

// Add makes doc editable and returns its id. The editor page of the
// document is served at /edit/<id>.
func (s *Server) Add(doc host.Document) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = doc
	return id
}

// EditPath is the path of the editor page of the document with id
func EditPath(id string) string {
	return "/edit/" + id
}

func (s *Server) document(id string) (host.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Handler routes the requests of the editor pages
func (s *Server) Handler() http.Handler {
	router := httprouter.New()
	router.GET("/", s.index)
	router.GET("/edit/:id", s.page)
	router.GET("/edit/:id/ws", s.connect)
	if s.MediaDir != "" {
		router.ServeFiles("/media/*filepath", http.Dir(s.MediaDir))
	}
	return router
}

// Serve serves the editor pages on l until ctx is done. Open views are
// closed and awaited before Serve returns.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(l)
	}()
	klog.Infof("serving editor on http://%s", l.Addr())

	var errs *multierror.Error
	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			errs = multierror.Append(errs, err)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("shutting down editor server failed: %w", err))
		}
	}
	// websocket connections are hijacked and not closed by Shutdown
	s.mu.Lock()
	s.closing = true
	conns := make([]*Conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()
	for _, c := range conns {
		if err := c.Close(); err != nil {
			klog.V(4).Infof("closing editor surface failed: %v", err)
		}
	}
	s.views.Wait()
	return errs.ErrorOrNil()
}

func (s *Server) index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.RLock()
	entries := make([]indexEntry, 0, len(s.docs))
	for id, doc := range s.docs {
		entries = append(entries, indexEntry{Path: EditPath(id), Name: doc.FileName(), URI: doc.URI()})
	}
	s.mu.RUnlock()
	sort.Slice(entries, func(i, j int) bool { return entries[i].URI < entries[j].URI })
	render(w, "index.html", indexData{Documents: entries})
}

func (s *Server) page(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	doc, ok := s.document(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	options, ok := s.Views.Options(s.ViewType)
	if !ok {
		http.Error(w, fmt.Sprintf("no editor registered for %s", s.ViewType), http.StatusServiceUnavailable)
		return
	}
	nonce := uuid.New().String()
	assets := newAssets(s.MediaDir, s.CDN)
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy(nonce, assets.origin, r.Host))
	render(w, "editor.html", editorData{
		Title:  doc.FileName(),
		Nonce:  nonce,
		Script: assets.script,
		Style:  assets.style,
		Config: pageConfig{
			SocketPath:              EditPath(id) + "/ws",
			CDN:                     assets.cdn,
			EnableFindWidget:        options.EnableFindWidget,
			RetainContextWhenHidden: options.RetainContextWhenHidden,
		},
	})
}

func (s *Server) connect(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	doc, ok := s.document(ps.ByName("id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied
		klog.Warningf("websocket upgrade for %s failed: %v", doc.URI(), err)
		return
	}
	conn := NewConn(ws)
	if !s.track(conn) {
		klog.V(4).Infof("editor surface %s for %s rejected, server is shutting down", ws.RemoteAddr(), doc.URI())
		_ = conn.Close()
		return
	}
	defer func() {
		_ = conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		s.views.Done()
	}()

	klog.V(4).Infof("editor surface %s connected to %s", ws.RemoteAddr(), doc.URI())
	if err = s.Views.Open(r.Context(), s.ViewType, doc, conn); err != nil {
		klog.Errorf("editor view of %s failed: %v", doc.URI(), err)
	}
}

// track registers an open view unless the server is shutting down
func (s *Server) track(conn *Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.conns[conn] = struct{}{}
	s.views.Add(1)
	return true
}
