package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aladdin-ai/aladdin/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	srv, err := New(config.Config{Port: 8080, Version: "test"})
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	return srv
}

func TestAPIRoutesMounted(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestSPAFallback(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/", "/some/client/route"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		srv.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200 for %s, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Aladdin") {
			t.Errorf("Expected index.html content for %s", path)
		}
	}
}

func TestDataStatusDefault(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/data/status", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.NewDecoder(w.Body).Decode(&response)

	if response["custom"] != false {
		t.Errorf("Expected custom=false, got %v", response["custom"])
	}
	if response["source"] != "embedded" {
		t.Errorf("Expected source 'embedded', got '%v'", response["source"])
	}
}

func TestDataSelectMissingDirectory(t *testing.T) {
	srv := newTestServer(t)

	body := strings.NewReader(`{"path":"/no/such/directory"}`)
	req := httptest.NewRequest("POST", "/api/data/select", body)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestDataSelectRegistersDirectory(t *testing.T) {
	srv := newTestServer(t)

	dataDir := t.TempDir()
	vendors := `[{"id":"solo-lab","name":"Solo Lab","rating":4.0,"reviewCount":3,
		"industries":["retail"],"techStack":{"llm":3},
		"priceRange":{"min":1000000,"max":3000000},"metrics":{},
		"monthlyCapacity":1}]`
	if err := os.WriteFile(filepath.Join(dataDir, "vendors.json"), []byte(vendors), 0o644); err != nil {
		t.Fatal(err)
	}

	body := strings.NewReader(`{"path":"` + dataDir + `"}`)
	req := httptest.NewRequest("POST", "/api/data/select", body)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var response map[string]interface{}
	json.NewDecoder(w.Body).Decode(&response)

	wantSource := filepath.Join(dataDir, "vendors.json")
	if response["source"] != wantSource {
		t.Errorf("Expected source '%s', got '%v'", wantSource, response["source"])
	}
	if count, _ := response["vendorCount"].(float64); count != 1 {
		t.Errorf("Expected vendorCount 1, got %v", response["vendorCount"])
	}

	// The selection persists in settings
	settings, err := config.LoadSettings()
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}
	if settings.DataDir != dataDir {
		t.Errorf("Expected saved DataDir '%s', got '%s'", dataDir, settings.DataDir)
	}

	// And the API now serves the custom catalog
	req = httptest.NewRequest("GET", "/api/info", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var info map[string]interface{}
	json.NewDecoder(w.Body).Decode(&info)
	if info["catalog_source"] != wantSource {
		t.Errorf("Expected catalog_source '%s' after select, got '%v'", wantSource, info["catalog_source"])
	}
}
