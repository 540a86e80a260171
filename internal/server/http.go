// Package server serves the composed comparison page over HTTP. The page
// is composed once at startup; handlers only hand out the cached result.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/AlexJMohr/svelte-vs-vue/pkg/api"
)

// Server serves the comparison page and its JSON form.
type Server struct {
	cfg  *viper.Viper
	log  *zap.Logger
	page *api.Page
	html []byte
}

func New(cfg *viper.Viper, log *zap.Logger, page *api.Page) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	html, err := RenderHTML(page)
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, log: log, page: page, html: html}, nil
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/page", s.handlePage)
	return mux
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := s.cfg.GetString("http_addr")
	if strings.TrimSpace(addr) == "" {
		addr = ":8080"
	}
	srv := &http.Server{Addr: addr, Handler: s.Router()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("serving comparison page", zap.String("addr", addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.html)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.page); err != nil {
		s.log.Warn("encode page", zap.Error(err))
	}
}
