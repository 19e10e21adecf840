package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aladdin-ai/aladdin/internal/config"
	"github.com/aladdin-ai/aladdin/internal/httputil"
)

// handleDataStatus reports which catalog the engine is serving and
// whether a custom data directory is registered.
func (s *Server) handleDataStatus(w http.ResponseWriter, r *http.Request) {
	settings, err := config.LoadSettings()
	if err != nil {
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"custom": false,
			"source": s.currentEngine().Catalog().Source(),
			"error":  err.Error(),
		})
		return
	}

	if settings.DataDir == "" {
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"custom": false,
			"source": s.currentEngine().Catalog().Source(),
		})
		return
	}

	if _, err := os.Stat(settings.DataDir); err != nil {
		httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
			"custom": false,
			"source": s.currentEngine().Catalog().Source(),
			"error":  "data directory no longer exists",
		})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"custom":      true,
		"path":        settings.DataDir,
		"source":      s.currentEngine().Catalog().Source(),
		"vendorCount": len(s.currentEngine().Catalog().Vendors()),
	})
}

// handleDataSelect registers a data directory holding a custom vendor
// catalog, persists it in the settings, and rebuilds the engine.
func (s *Server) handleDataSelect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Path == "" {
		httputil.RespondError(w, http.StatusBadRequest, "path is required")
		return
	}

	info, err := os.Stat(req.Path)
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("directory not found: %s", req.Path))
		return
	}
	if !info.IsDir() {
		httputil.RespondError(w, http.StatusBadRequest, "path must be a directory")
		return
	}

	settings, _ := config.LoadSettings()
	settings.DataDir = req.Path
	if err := config.SaveSettings(settings); err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, fmt.Sprintf("could not save settings: %v", err))
		return
	}

	// Rebuild the engine from the new directory. The loader falls
	// back to the embedded catalog if the directory has no usable
	// vendor data.
	s.cfg.DataDir = req.Path
	eng := buildEngine(req.Path)
	s.swapEngine(eng)

	log.Printf("Data directory selected: %s", req.Path)
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"path":        req.Path,
		"source":      eng.Catalog().Source(),
		"vendorCount": len(eng.Catalog().Vendors()),
	})
}
