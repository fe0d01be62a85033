package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"nexus-pipeline/internal/model"
	"nexus-pipeline/internal/processor"
	"nexus-pipeline/internal/stream"
)

// ProcessData runs a single processor over ad-hoc data
// @Summary Process data
// @Description Run the numeric, text, or log processor over an ad-hoc payload
// @Tags processors
// @Accept json
// @Produce json
// @Param request body model.ProcessRequest true "Processor kind and data"
// @Success 200 {object} model.ProcessResponse "Processor result"
// @Failure 400 {object} map[string]interface{} "Unknown kind"
// @Failure 422 {object} map[string]interface{} "Data invalid for the kind"
// @Router /process [post]
func ProcessData(w http.ResponseWriter, r *http.Request) {
	var req model.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	p, err := processor.ForKind(req.Kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := p.Process(req.Data)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, processor.ErrInvalidInput) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.ProcessResponse{Kind: p.Kind(), Result: result})
}

// AnalyzeStreams drives declared streams over their batches
// @Summary Analyze stream batches
// @Description Construct the declared streams, drive each over its batch, and report per-stream summaries
// @Tags streams
// @Accept json
// @Produce json
// @Param request body model.StreamBatchRequest true "Streams and batches"
// @Success 200 {object} map[string]interface{} "Per-stream summaries"
// @Failure 400 {object} map[string]interface{} "Unknown stream kind"
// @Router /streams/analyze [post]
func AnalyzeStreams(w http.ResponseWriter, r *http.Request) {
	var req model.StreamBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if len(req.Streams) == 0 {
		http.Error(w, "At least one stream is required", http.StatusBadRequest)
		return
	}

	runner := stream.NewRunner(Log)
	for _, spec := range req.Streams {
		s, err := stream.ForSpec(spec, req.Batches[spec.ID])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		runner.Add(s)
	}

	summaries := runner.RunAll(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"streams": summaries,
		"count":   len(summaries),
	})
}
