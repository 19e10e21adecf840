package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aladdin-ai/aladdin/internal/config"
	"github.com/aladdin-ai/aladdin/internal/engine"
	"github.com/aladdin-ai/aladdin/internal/httputil"
	"github.com/aladdin-ai/aladdin/internal/models"
)

// Handler provides HTTP API endpoints over the recommendation engine
type Handler struct {
	engine *engine.Engine
	cfg    config.Config
}

// NewHandler creates a new API handler
func NewHandler(eng *engine.Engine, cfg config.Config) *Handler {
	return &Handler{engine: eng, cfg: cfg}
}

// RegisterRoutes sets up all API routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	// Health and info
	r.HandleFunc("/health", h.handleHealth).Methods("GET")
	r.HandleFunc("/info", h.handleInfo).Methods("GET")

	// Reference data for the questionnaire UI
	r.HandleFunc("/questionnaire", h.handleQuestionnaire).Methods("GET")
	r.HandleFunc("/industries", h.handleListIndustries).Methods("GET")
	r.HandleFunc("/industries/{industry}/use-cases", h.handleUseCases).Methods("GET")
	r.HandleFunc("/vendors", h.handleListVendors).Methods("GET")
	r.HandleFunc("/vendors/{id}", h.handleVendor).Methods("GET")

	// Engine entry points
	r.HandleFunc("/estimate", h.handleEstimate).Methods("POST")
	r.HandleFunc("/match", h.handleMatch).Methods("POST")
	r.HandleFunc("/specification", h.handleSpecification).Methods("POST")
}

// handleHealth returns server health status
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleInfo returns server information
func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, models.InfoResponse{
		Version:       h.cfg.Version,
		VendorCount:   len(h.engine.Catalog().Vendors()),
		CatalogSource: h.engine.Catalog().Source(),
		QuestionCount: len(h.engine.Template().Questions),
	})
}

// handleQuestionnaire returns the active questionnaire template
func (h *Handler) handleQuestionnaire(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.engine.Template())
}

// handleListIndustries returns the industry codes in display order
func (h *Handler) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.engine.Catalog().Industries())
}

// handleUseCases returns the use cases for an industry. Unknown
// industries yield an empty list, mirroring the engine's tolerance
// for unrecognized codes.
func (h *Handler) handleUseCases(w http.ResponseWriter, r *http.Request) {
	industry := mux.Vars(r)["industry"]
	useCases := h.engine.Catalog().UseCases(industry)
	if useCases == nil {
		useCases = []string{}
	}
	httputil.RespondJSON(w, http.StatusOK, useCases)
}

// handleListVendors returns the full vendor catalog
func (h *Handler) handleListVendors(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.engine.Catalog().Vendors())
}

// handleVendor returns one vendor by ID
func (h *Handler) handleVendor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	vendor, ok := h.engine.Catalog().Vendor(id)
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "vendor not found")
		return
	}
	httputil.RespondJSON(w, http.StatusOK, vendor)
}

// decodeAnswers reads an AnswersRequest body. A missing or partial
// answer set is valid input; only an unreadable body is an error.
func decodeAnswers(w http.ResponseWriter, r *http.Request) (*models.AnswersRequest, bool) {
	var req models.AnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}

// handleEstimate returns a cost estimate for an answer set
func (h *Handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAnswers(w, r)
	if !ok {
		return
	}
	n := h.engine.Normalize(req.Answers)
	httputil.RespondJSON(w, http.StatusOK, h.engine.EstimateCost(n))
}

// handleMatch returns the ranked vendor shortlist for an answer set.
// An empty shortlist is a valid result, not an error.
func (h *Handler) handleMatch(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAnswers(w, r)
	if !ok {
		return
	}
	n := h.engine.Normalize(req.Answers)
	matches := h.engine.MatchVendors(n)
	if matches == nil {
		matches = []engine.VendorMatch{}
	}
	httputil.RespondJSON(w, http.StatusOK, matches)
}

// handleSpecification runs the full pipeline and returns the
// generated document together with its inputs
func (h *Handler) handleSpecification(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAnswers(w, r)
	if !ok {
		return
	}
	n := h.engine.Normalize(req.Answers)
	estimate := h.engine.EstimateCost(n)
	matches := h.engine.MatchVendors(n)
	spec := h.engine.GenerateSpecification(n, estimate, matches)
	if matches == nil {
		matches = []engine.VendorMatch{}
	}
	httputil.RespondJSON(w, http.StatusOK, models.SpecificationResponse{
		Spec:     spec,
		Estimate: estimate,
		Matches:  matches,
	})
}
