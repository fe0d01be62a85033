package model

import "time"

// Run statuses as persisted in the store.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusPartial   = "partial" // some pipelines failed, some succeeded
	StatusFailed    = "failed"
)

// ValidationRules defines validation requirements for a pipeline's input
type ValidationRules struct {
	RequiredFields []string           `json:"requiredFields"` // fields that must be present
	NumericFields  []string           `json:"numericFields"`  // fields that must be numeric
	MinValues      map[string]float64 `json:"minValues"`      // min allowed numeric values
	MaxValues      map[string]float64 `json:"maxValues"`      // optional max limits
}

// PipelineSpec configures one pipeline within a run
type PipelineSpec struct {
	Name       string           `json:"name"`
	Format     string           `json:"format"` // json, csv, stream
	Stages     []string         `json:"stages"`
	Validation *ValidationRules `json:"validation,omitempty"`
	Input      string           `json:"input"` // raw payload handed to the format adapter
}

// RetrySpec tunes retries of transient pipeline failures
type RetrySpec struct {
	MaxRetries      int    `json:"maxRetries"`
	InitialInterval string `json:"initialInterval"` // e.g. "100ms"
	MaxInterval     string `json:"maxInterval"`     // e.g. "2s"
}

// RunSpec is the request body for POST /api/v1/runs
type RunSpec struct {
	Pipelines []PipelineSpec `json:"pipelines"`
	Chain     []string       `json:"chain,omitempty"` // pipeline names to chain after the parallel phase
	Timeout   string         `json:"timeout"`         // e.g. "5m"
	Retry     RetrySpec      `json:"retry"`
}

// PipelineResult is the recorded outcome of one pipeline within a run
type PipelineResult struct {
	Pipeline   string          `json:"pipeline"`
	Success    bool            `json:"success"`
	Outputs    []GenericRecord `json:"outputs,omitempty"`
	Error      string          `json:"error,omitempty"`
	Attempts   int             `json:"attempts"`
	DurationMs int64           `json:"duration_ms"`
	FinishedAt time.Time       `json:"finished_at"`
}

// StreamSummary reports a driven stream back to the caller
type StreamSummary struct {
	StreamID string         `json:"stream_id"`
	Kind     string         `json:"kind"`
	Records  int            `json:"records"`
	Stats    map[string]any `json:"stats"`
	Error    string         `json:"error,omitempty"`
}

// ProcessRequest is the body for the ad-hoc processor endpoint
type ProcessRequest struct {
	Kind string `json:"kind"` // numeric, text, log
	Data any    `json:"data"`
}

// ProcessResponse carries a processor result back to the caller
type ProcessResponse struct {
	Kind   string `json:"kind"`
	Result string `json:"result"`
}

// StreamBatchRequest is the body for the ad-hoc stream analysis endpoint.
// Batches are keyed by stream ID, one entry per stream to drive.
type StreamBatchRequest struct {
	Streams []StreamSpec        `json:"streams"`
	Batches map[string][]string `json:"batches"`
}

// StreamSpec declares a stream to construct for a batch analysis. Filter is
// optional; when set, the batch is narrowed to matching records first.
type StreamSpec struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"` // sensor, transaction, event
	Filter string `json:"filter,omitempty"`
}
