package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"nexus-pipeline/internal/logging"
	"nexus-pipeline/internal/model"
	"nexus-pipeline/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupRun(t *testing.T, spec model.RunSpec) string {
	t.Helper()
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "test.db")))
	runID := "run-under-test"
	require.NoError(t, store.SaveRun(runID, spec))
	return runID
}

func TestExecuteCompletes(t *testing.T) {
	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{
			{Name: "orders", Format: "json", Stages: []string{"trimStrings"}, Input: `{"note": "  hi  "}`},
			{Name: "activity", Format: "csv", Stages: []string{"timestamp"}, Input: "user,action\nalice,login\n"},
		},
		Timeout: "30s",
	}
	runID := setupRun(t, spec)

	require.NoError(t, Execute(context.Background(), runID, spec, nil))

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, run["status"])

	results, err := store.GetResults(runID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Success, r.Pipeline)
	}
}

func TestExecutePartialOnPipelineFailure(t *testing.T) {
	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{
			{Name: "good", Format: "json", Input: `{"id": 1}`},
			{Name: "bad", Format: "json",
				Stages:     []string{"validate"},
				Validation: &model.ValidationRules{RequiredFields: []string{"missing"}},
				Input:      `{"id": 2}`},
		},
	}
	runID := setupRun(t, spec)

	require.NoError(t, Execute(context.Background(), runID, spec, nil))

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPartial, run["status"])

	errs, err := store.GetErrors(runID)
	require.NoError(t, err)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0]["message"], "missing required field")
}

func TestExecuteFailedWhenNothingSucceeds(t *testing.T) {
	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{
			{Name: "bad", Format: "json", Input: `not json`},
		},
	}
	runID := setupRun(t, spec)

	require.NoError(t, Execute(context.Background(), runID, spec, nil))

	run, err := store.GetRun(runID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusFailed, run["status"])
}

func TestExecuteUnbuildableSpec(t *testing.T) {
	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{{Name: "x", Format: "telepathy"}},
	}
	runID := setupRun(t, spec)

	err := Execute(context.Background(), runID, spec, nil)
	require.Error(t, err)

	// the deferred status update marks the run failed before returning
	run, gerr := store.GetRun(runID)
	require.NoError(t, gerr)
	assert.Equal(t, model.StatusFailed, run["status"])
}

func TestExecuteReportsStatusWriteFailure(t *testing.T) {
	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{
			{Name: "orders", Format: "json", Stages: []string{"trimStrings"}, Input: `{"note": " hi "}`},
		},
	}
	runID := setupRun(t, spec)
	require.NoError(t, store.Close())

	core, logs := observer.New(zapcore.ErrorLevel)
	log := &logging.Logger{Logger: zap.New(core)}

	// execution still completes; the lost status writes are reported
	require.NoError(t, Execute(context.Background(), runID, spec, log))
	assert.NotZero(t, logs.FilterMessage("failed to update run status").Len())

	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "test.db")))
}

func TestExecuteChainPhase(t *testing.T) {
	spec := model.RunSpec{
		Pipelines: []model.PipelineSpec{
			{Name: "first", Format: "json", Stages: []string{"metadata"}, Input: `{"id": 1}`},
			{Name: "second", Format: "json", Stages: []string{"timestamp"}, Input: `{"id": 2}`},
		},
		Chain: []string{"first", "second"},
	}
	runID := setupRun(t, spec)

	require.NoError(t, Execute(context.Background(), runID, spec, nil))

	results, err := store.GetResults(runID)
	require.NoError(t, err)
	require.Len(t, results, 3)

	chain := results[2]
	assert.Equal(t, "chain", chain.Pipeline)
	require.Len(t, chain.Outputs, 1)
	assert.Contains(t, chain.Outputs[0], "_validated")
	assert.Contains(t, chain.Outputs[0], "processed_at")
}
