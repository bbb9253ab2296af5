package assessment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	core "sme_assessment/pkg/core/assessment"
	"sme_assessment/pkg/core/store"
	"sme_assessment/pkg/models"
	"sme_assessment/pkg/presentation"
)

var (
	engine *core.Engine
	repo   *store.AssessmentRepo
)

// InitHandler wires the handler to an engine. Persistence is attached only
// when the database pool exists; without it the service still assesses,
// it just doesn't record.
func InitHandler(e *core.Engine) {
	engine = e
	repo = store.NewAssessmentRepo()
}

// Display is the UI-facing decoration of a verdict, built from the central
// presentation tables. The core never produces these fields.
type Display struct {
	Rating presentation.Style `json:"rating"`
	Risk   presentation.Style `json:"risk"`
}

// RunResponse wraps the assessment together with its display mapping and
// whether the run was persisted to the audit trail.
type RunResponse struct {
	Assessment *core.Assessment `json:"assessment"`
	Display    Display          `json:"display"`
	Persisted  bool             `json:"persisted"`
}

// HandleRun computes (and, when a store is configured, records) a new
// assessment from a posted input record.
//
// A structurally malformed body (wrong type for a numeric field, invalid
// JSON) is the one fatal condition and surfaces here as a 400 before any
// calculation runs. Missing fields are not errors; they flow through the
// core's null handling.
func HandleRun(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input models.AssessmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, fmt.Sprintf("malformed input record: %v", err), http.StatusBadRequest)
		return
	}

	result, err := engine.Assess(&input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	persisted := false
	if store.GetPool() != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := repo.Save(ctx, result); err != nil {
			fmt.Printf("[ASSESS] Failed to persist assessment %s: %v\n", result.ID, err)
		} else {
			persisted = true
		}
	}

	writeJSON(w, RunResponse{
		Assessment: result,
		Display: Display{
			Rating: presentation.ForRating(result.CreditworthinessRating),
			Risk:   presentation.ForSeverity(result.RiskLevel),
		},
		Persisted: persisted,
	})
}

// HandleGet returns a stored assessment by ID.
func HandleGet(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id parameter", http.StatusBadRequest)
		return
	}
	if store.GetPool() == nil {
		http.Error(w, "assessment store not configured", http.StatusServiceUnavailable)
		return
	}

	result, err := repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, result)
}

// HandleList returns the stored assessment history for a business, newest
// first.
func HandleList(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	businessID := r.URL.Query().Get("business_id")
	if businessID == "" {
		http.Error(w, "missing business_id parameter", http.StatusBadRequest)
		return
	}
	if store.GetPool() == nil {
		http.Error(w, "assessment store not configured", http.StatusServiceUnavailable)
		return
	}

	results, err := repo.ListByBusiness(r.Context(), businessID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, results)
}

func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Printf("[ASSESS] Failed to encode response: %v\n", err)
	}
}
