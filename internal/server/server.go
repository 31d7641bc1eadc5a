// Package server previews the built page tree over HTTP, the same routes a
// NomadNet node would expose on the mesh.
package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nomad-mesh/micronpress/internal/feeds"
	"github.com/nomad-mesh/micronpress/internal/log"
	"github.com/nomad-mesh/micronpress/internal/micron"
	"github.com/nomad-mesh/micronpress/internal/site"
	"github.com/nomad-mesh/micronpress/internal/status"
)

// Server serves built Micron pages, feed pages, and the status page.
type Server struct {
	Config *site.Config
	Feeds  *feeds.Service
}

// New creates a preview server for the given configuration.
func New(cfg *site.Config) *Server {
	return &Server{Config: cfg, Feeds: feeds.NewService(cfg)}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if rest, ok := strings.CutPrefix(path, "/html/"); ok {
		s.serveHTML(w, r, rest)
		return
	}
	if rest, ok := strings.CutPrefix(path, "/file/"); ok {
		s.serveFile(w, r, rest)
		return
	}

	switch target := Resolve(path); target.Kind {
	case TargetIndex:
		s.servePage(w, r, "index")
	case TargetPage:
		s.servePage(w, r, target.Name)
	case TargetStatus:
		s.writeMicron(w, status.Page(r.Context(), s.Config, time.Now()))
	case TargetFeed:
		page, err := s.Feeds.Page(r.Context(), target.Name)
		if err != nil {
			log.FromContext(r.Context()).Printf("Feed %s failed: %v", target.Name, err)
			http.Error(w, fmt.Sprintf("feed %s unavailable", target.Name), http.StatusBadGateway)
			return
		}
		s.writeMicron(w, micron.WithCacheDirective(page, s.Config.Cache.FeedSeconds))
	default:
		http.NotFound(w, r)
	}
}

// servePage reads a built .mu page from the output dir and serves it with
// the cache directive line prefixed.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request, id string) {
	body, err := os.ReadFile(filepath.Join(s.Config.Site.OutputDir, filepath.FromSlash(id)+".mu"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.writeMicron(w, micron.WithCacheDirective(string(body), s.Config.Cache.PageSeconds))
}

func (s *Server) serveHTML(w http.ResponseWriter, r *http.Request, rest string) {
	id, ok := strings.CutSuffix(rest, ".html")
	if !ok || !safeID(id) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.Config.Site.OutputDir, "html", filepath.FromSlash(id)+".html"))
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, rest string) {
	if !safeID(rest) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, filepath.Join(s.Config.Site.FilesDir, filepath.FromSlash(rest)))
}

func (s *Server) writeMicron(w http.ResponseWriter, page string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if !strings.HasSuffix(page, "\n") {
		page += "\n"
	}
	_, _ = w.Write([]byte(page))
}
