package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"nexus-pipeline/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestRunLifecycle(t *testing.T) {
	initTestDB(t)

	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{{Name: "p1", Format: "json", Input: `{}`}},
		Timeout:   "1m",
	}

	require.NoError(t, SaveRun("run-1", spec))

	run, err := GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, run["status"])

	got := run["spec"].(model.RunSpec)
	require.Len(t, got.Pipelines, 1)
	assert.Equal(t, "p1", got.Pipelines[0].Name)

	require.NoError(t, UpdateRunStatus("run-1", model.StatusCompleted))
	run, err = GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, run["status"])
}

func TestGetRunMissing(t *testing.T) {
	initTestDB(t)

	_, err := GetRun("no-such-run")
	assert.Error(t, err)
}

func TestListRunsNewestFirst(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveRun("older", model.RunSpec{}))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, SaveRun("newer", model.RunSpec{}))

	runs, err := ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "newer", runs[0]["id"])
	assert.Equal(t, "older", runs[1]["id"])
}

func TestResults(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveRun("run-2", model.RunSpec{}))

	result := model.PipelineResult{
		Pipeline:   "orders",
		Success:    true,
		Outputs:    []model.GenericRecord{{"id": float64(1), "note": "ok"}},
		Attempts:   2,
		DurationMs: 12,
		FinishedAt: time.Now().UTC(),
	}
	require.NoError(t, SaveResult("run-2", result))
	require.NoError(t, SaveResult("run-2", model.PipelineResult{
		Pipeline: "broken",
		Error:    "stage exploder: boom",
		Attempts: 1,
	}))

	results, err := GetResults("run-2")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "orders", results[0].Pipeline)
	assert.True(t, results[0].Success)
	require.Len(t, results[0].Outputs, 1)
	assert.Equal(t, "ok", results[0].Outputs[0]["note"])
	assert.Equal(t, 2, results[0].Attempts)

	assert.False(t, results[1].Success)
	assert.Contains(t, results[1].Error, "boom")
	assert.Empty(t, results[1].Outputs)
}

func TestRunErrors(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveRun("run-3", model.RunSpec{}))

	require.NoError(t, SaveRunError("run-3", errors.New("first failure")))
	require.NoError(t, SaveRunError("run-3", errors.New("second failure")))
	require.NoError(t, SaveRunError("run-3", nil)) // nil errors are ignored

	errs, err := GetErrors("run-3")
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "first failure", errs[0]["message"])
}
