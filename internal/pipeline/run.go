package pipeline

import (
	"context"
	"fmt"
	"time"

	"nexus-pipeline/internal/logging"
	"nexus-pipeline/internal/model"
	"nexus-pipeline/internal/store"

	"go.uber.org/zap"
)

// Execute runs a persisted run spec end to end: builds the pipelines, runs
// them through a manager, records per-pipeline results and the final status.
// A failing pipeline degrades the run to partial; only a run with no
// successes (or an unbuildable spec) is marked failed.
func Execute(ctx context.Context, runID string, spec model.RunSpec, log *logging.Logger) (err error) {
	if log == nil {
		log = logging.NewNop()
	}
	log = log.Named("run")
	start := time.Now()
	log.Info("starting run", zap.String("run_id", runID), zap.Int("pipelines", len(spec.Pipelines)))

	setStatus := func(status string) {
		if statusErr := store.UpdateRunStatus(runID, status); statusErr != nil {
			log.Error("failed to update run status",
				zap.String("run_id", runID),
				zap.String("status", status),
				zap.Error(statusErr))
		}
	}

	setStatus(model.StatusRunning)
	defer func() {
		if err != nil {
			setStatus(model.StatusFailed)
			store.SaveRunError(runID, err)
		}
	}()

	timeout, perr := time.ParseDuration(spec.Timeout)
	if perr != nil || timeout <= 0 {
		timeout = 5 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	manager := NewManager(PolicyFromSpec(spec.Retry), log)
	inputs := make(map[string][]byte, len(spec.Pipelines))
	for _, ps := range spec.Pipelines {
		p, buildErr := FromSpec(ps)
		if buildErr != nil {
			return fmt.Errorf("build run %s: %w", runID, buildErr)
		}
		if regErr := manager.Register(p); regErr != nil {
			return fmt.Errorf("build run %s: %w", runID, regErr)
		}
		inputs[ps.Name] = []byte(ps.Input)
	}

	results := manager.RunAll(ctx, inputs)

	succeeded := 0
	for _, result := range results {
		if saveErr := store.SaveResult(runID, result); saveErr != nil {
			log.Error("failed to persist result",
				zap.String("run_id", runID),
				zap.String("pipeline", result.Pipeline),
				zap.Error(saveErr))
		}
		if result.Success {
			succeeded++
		} else {
			store.SaveRunError(runID, fmt.Errorf("pipeline %s: %s", result.Pipeline, result.Error))
		}
	}

	// optional chaining phase: thread a seed record through named pipelines
	if len(spec.Chain) > 0 && succeeded > 0 {
		seed := chainSeed(results)
		if chained, chainErr := manager.Chain(ctx, seed, spec.Chain); chainErr != nil {
			store.SaveRunError(runID, chainErr)
		} else {
			store.SaveResult(runID, model.PipelineResult{
				Pipeline:   "chain",
				Success:    true,
				Outputs:    []model.GenericRecord{chained},
				Attempts:   1,
				FinishedAt: time.Now().UTC(),
			})
		}
	}

	status := model.StatusCompleted
	switch {
	case succeeded == 0:
		status = model.StatusFailed
	case succeeded < len(results):
		status = model.StatusPartial
	}
	setStatus(status)

	log.Info("run finished",
		zap.String("run_id", runID),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// chainSeed picks the first successful output record to feed the chain.
func chainSeed(results []model.PipelineResult) model.GenericRecord {
	for _, r := range results {
		if r.Success && len(r.Outputs) > 0 {
			return r.Outputs[0]
		}
	}
	return model.GenericRecord{}
}
