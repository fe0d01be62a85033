package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"nexus-pipeline/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the schema if needed.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	runTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		spec TEXT,
		status TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);
	`
	resultTable := `
	CREATE TABLE IF NOT EXISTS run_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		pipeline TEXT,
		success INTEGER,
		outputs TEXT,
		error TEXT,
		attempts INTEGER,
		duration_ms INTEGER,
		finished_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS run_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	for _, stmt := range []string{runTable, resultTable, errorTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle. Subsequent calls fail until InitDB
// runs again.
func Close() error {
	if db == nil {
		return nil
	}
	return db.Close()
}

// SaveRun stores a new run in pending state
func SaveRun(runID string, spec model.RunSpec) error {
	specJSON, err := json.Marshal(spec)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = db.Exec(`INSERT INTO runs (id, spec, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		runID, specJSON, model.StatusPending, now, now)
	return err
}

// UpdateRunStatus updates run status
func UpdateRunStatus(runID string, status string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE runs SET status = ?, updated_at = ? WHERE id = ?`, status, now, runID)
	return err
}

// SaveRunError records a run-level error
func SaveRunError(runID string, runErr error) error {
	if runErr == nil {
		return nil
	}
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO run_errors (run_id, error_message, created_at) VALUES (?, ?, ?)`,
		runID, runErr.Error(), now)
	return err
}

// SaveResult records the outcome of one pipeline within a run
func SaveResult(runID string, result model.PipelineResult) error {
	outputsJSON, err := json.Marshal(result.Outputs)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT INTO run_results (run_id, pipeline, success, outputs, error, attempts, duration_ms, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, result.Pipeline, boolToInt(result.Success), string(outputsJSON),
		result.Error, result.Attempts, result.DurationMs, result.FinishedAt)
	return err
}

// ListRuns returns all runs with basic info, newest first
func ListRuns() ([]map[string]any, error) {
	rows, err := db.Query(`SELECT id, status, created_at, updated_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []map[string]any
	for rows.Next() {
		var id, status string
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&id, &status, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, map[string]any{
			"id":        id,
			"status":    status,
			"createdAt": createdAt,
			"updatedAt": updatedAt,
		})
	}
	return runs, rows.Err()
}

// GetRun fetches full run spec and status
func GetRun(runID string) (map[string]any, error) {
	var specJSON, status string
	var createdAt, updatedAt time.Time

	err := db.QueryRow(`SELECT spec, status, created_at, updated_at FROM runs WHERE id = ?`, runID).
		Scan(&specJSON, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	var spec model.RunSpec
	if err := json.Unmarshal([]byte(specJSON), &spec); err != nil {
		return nil, fmt.Errorf("corrupt spec for run %s: %w", runID, err)
	}

	return map[string]any{
		"id":        runID,
		"spec":      spec,
		"status":    status,
		"createdAt": createdAt,
		"updatedAt": updatedAt,
	}, nil
}

// GetResults fetches all pipeline results recorded for a run
func GetResults(runID string) ([]model.PipelineResult, error) {
	rows, err := db.Query(`SELECT pipeline, success, outputs, error, attempts, duration_ms, finished_at
		FROM run_results WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.PipelineResult
	for rows.Next() {
		var r model.PipelineResult
		var success int
		var outputsJSON string
		if err := rows.Scan(&r.Pipeline, &success, &outputsJSON, &r.Error, &r.Attempts, &r.DurationMs, &r.FinishedAt); err != nil {
			return nil, err
		}
		r.Success = success != 0
		if outputsJSON != "" && outputsJSON != "null" {
			if err := json.Unmarshal([]byte(outputsJSON), &r.Outputs); err != nil {
				return nil, fmt.Errorf("corrupt outputs for run %s pipeline %s: %w", runID, r.Pipeline, err)
			}
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetErrors fetches run-level errors, oldest first
func GetErrors(runID string) ([]map[string]any, error) {
	rows, err := db.Query(`SELECT error_message, created_at FROM run_errors WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var errs []map[string]any
	for rows.Next() {
		var msg string
		var createdAt time.Time
		if err := rows.Scan(&msg, &createdAt); err != nil {
			return nil, err
		}
		errs = append(errs, map[string]any{
			"message":   msg,
			"createdAt": createdAt,
		})
	}
	return errs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
