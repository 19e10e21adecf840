package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/aladdin-ai/aladdin/internal/api"
	"github.com/aladdin-ai/aladdin/internal/catalog"
	"github.com/aladdin-ai/aladdin/internal/config"
	"github.com/aladdin-ai/aladdin/internal/engine"
	"github.com/aladdin-ai/aladdin/internal/questionnaire"
)

//go:embed static/*
var staticFS embed.FS

// Server holds all the components for the web application
type Server struct {
	cfg        config.Config
	httpServer *http.Server

	// mu guards engine and router, which are rebuilt together when a
	// new data directory is selected at runtime.
	mu     sync.RWMutex
	engine *engine.Engine
	router *mux.Router
}

// New creates a new Server with the engine initialized from the
// configured data directory. A missing or unreadable data directory
// falls back to the embedded catalog and template.
func New(cfg config.Config) (*Server, error) {
	s := &Server{cfg: cfg}
	s.engine = buildEngine(cfg.DataDir)
	s.router = s.buildRouter()
	return s, nil
}

// buildEngine assembles an engine from the data directory. The
// catalog loader already degrades to the embedded vendors; the
// questionnaire template does the same here.
func buildEngine(dataDir string) *engine.Engine {
	cat := catalog.Load(dataDir)

	template := questionnaire.DefaultTemplate()
	if dataDir != "" {
		templatePath := filepath.Join(dataDir, "template.yaml")
		if custom, err := questionnaire.LoadTemplate(templatePath); err == nil {
			log.Printf("Loaded questionnaire template from %s", templatePath)
			template = custom
		}
	}

	return engine.New(cat, template)
}

// buildRouter configures all HTTP routes for the current engine
func (s *Server) buildRouter() *mux.Router {
	router := mux.NewRouter()

	// API routes
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiHandler := api.NewHandler(s.engine, s.cfg)
	apiHandler.RegisterRoutes(apiRouter)

	// Data directory management routes
	router.HandleFunc("/api/data/status", s.handleDataStatus).Methods("GET")
	router.HandleFunc("/api/data/select", s.handleDataSelect).Methods("POST")

	// Static frontend files (embedded)
	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Printf("Warning: Could not load embedded static files: %v", err)
		return router
	}

	// SPA fallback: serve index.html for any non-API route
	fileServer := http.FileServer(http.FS(staticContent))
	router.PathPrefix("/").Handler(spaHandler{staticContent: staticContent, fileServer: fileServer})

	return router
}

// ServeHTTP dispatches to the current router
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	router := s.router
	s.mu.RUnlock()
	router.ServeHTTP(w, r)
}

// currentEngine returns the engine serving requests right now
func (s *Server) currentEngine() *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

// swapEngine replaces the engine and rebuilds the routes over it
func (s *Server) swapEngine(eng *engine.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine = eng
	s.router = s.buildRouter()
}

// Start begins listening for HTTP connections
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server listening on http://localhost:%d", s.cfg.Port)
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// spaHandler serves the SPA, falling back to index.html for client-side routing
type spaHandler struct {
	staticContent fs.FS
	fileServer    http.Handler
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Try to open the file
	path := r.URL.Path
	if path == "/" {
		path = "index.html"
	}

	// fs.FS paths must not have a leading slash
	cleanPath := strings.TrimPrefix(path, "/")

	_, err := fs.Stat(h.staticContent, cleanPath)
	if err != nil {
		// File not found, serve index.html for SPA routing
		r.URL.Path = "/"
	}

	h.fileServer.ServeHTTP(w, r)
}
