package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"nexus-pipeline/internal/logging"
	"nexus-pipeline/internal/model"
	"nexus-pipeline/internal/pipeline"
	"nexus-pipeline/internal/store"
	"nexus-pipeline/pkg/utils"

	"github.com/google/uuid"
)

// Log is the handler package's logger; main replaces it at startup.
var Log = logging.NewNop()

// CreateRun submits a new pipeline run
// @Summary Create a new run
// @Description Create and start a run of one or more configured pipelines
// @Tags runs
// @Accept json
// @Produce json
// @Param run body model.RunSpec true "Run configuration"
// @Success 202 {object} map[string]interface{} "Run accepted"
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [post]
func CreateRun(w http.ResponseWriter, r *http.Request) {
	var spec model.RunSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if len(spec.Pipelines) == 0 {
		http.Error(w, "At least one pipeline is required", http.StatusBadRequest)
		return
	}

	// reject unbuildable specs up front so the caller gets a 400, not a
	// failed run
	for _, ps := range spec.Pipelines {
		if _, err := pipeline.FromSpec(ps); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	runID := uuid.New().String()
	if err := store.SaveRun(runID, spec); err != nil {
		http.Error(w, "Failed to save run", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), utils.ParseDuration(spec.Timeout))
	go func() {
		defer cancel()
		if err := pipeline.Execute(ctx, runID, spec, Log); err != nil {
			store.SaveRunError(runID, err)
		}
	}()

	resp := map[string]any{
		"message":   "Run accepted",
		"runID":     runID,
		"status":    model.StatusPending,
		"createdAt": time.Now().UTC(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(resp)
}

// ListRuns retrieves all runs
// @Summary List all runs
// @Description Get all runs with their current status
// @Tags runs
// @Produce json
// @Success 200 {array} map[string]interface{} "List of runs"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs [get]
func ListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := store.ListRuns()
	if err != nil {
		http.Error(w, "Failed to fetch runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []map[string]any{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}

// GetRun retrieves a specific run
// @Summary Get run
// @Description Retrieve spec and status of a specific run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run details"
// @Failure 404 {object} map[string]interface{} "Run not found"
// @Router /runs/{id} [get]
func GetRun(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "")
	if !ok {
		return
	}

	run, err := store.GetRun(runID)
	if err != nil {
		http.Error(w, "Run not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(run)
}

// GetRunResults retrieves per-pipeline results for a run
// @Summary Get run results
// @Description Retrieve the recorded result of every pipeline in a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run results"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/results [get]
func GetRunResults(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/results")
	if !ok {
		return
	}

	results, err := store.GetResults(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve results", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"run_id":  runID,
		"results": results,
		"count":   len(results),
	})
}

// GetRunErrors retrieves errors recorded for a run
// @Summary Get run errors
// @Description Retrieve all errors recorded during a run
// @Tags runs
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /runs/{id}/errors [get]
func GetRunErrors(w http.ResponseWriter, r *http.Request) {
	runID, ok := runIDFromPath(w, r, "/errors")
	if !ok {
		return
	}

	errs, err := store.GetErrors(runID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"run_id": runID,
		"errors": errs,
		"count":  len(errs),
	})
}

// runIDFromPath extracts the run ID between the runs prefix and suffix,
// writing a 400 when the path is malformed.
func runIDFromPath(w http.ResponseWriter, r *http.Request, suffix string) (string, bool) {
	path := r.URL.Path
	prefix := "/api/v1/runs/"

	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		http.Error(w, "Invalid path", http.StatusBadRequest)
		return "", false
	}

	runID := path[len(prefix) : len(path)-len(suffix)]
	if runID == "" || strings.Contains(runID, "/") {
		http.Error(w, "Run ID is required", http.StatusBadRequest)
		return "", false
	}
	return runID, true
}
