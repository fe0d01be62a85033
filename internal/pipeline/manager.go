package pipeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nexus-pipeline/internal/logging"
	"nexus-pipeline/internal/model"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryPolicy tunes how the manager retries a failed pipeline before giving
// up on it. The zero value disables retries.
type RetryPolicy struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// PolicyFromSpec parses the wire retry config, falling back to sane
// intervals when fields are missing.
func PolicyFromSpec(spec model.RetrySpec) RetryPolicy {
	policy := RetryPolicy{
		MaxRetries:      spec.MaxRetries,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
	if d, err := time.ParseDuration(spec.InitialInterval); err == nil && d > 0 {
		policy.InitialInterval = d
	}
	if d, err := time.ParseDuration(spec.MaxInterval); err == nil && d > 0 {
		policy.MaxInterval = d
	}
	return policy
}

// Manager owns a collection of pipelines and runs them polymorphically: the
// same run call regardless of how each pipeline is configured. A failure in
// one pipeline is caught and reported without terminating the others.
type Manager struct {
	mu        sync.RWMutex
	pipelines map[string]*Pipeline
	order     []string
	retry     RetryPolicy
	log       *logging.Logger
}

func NewManager(retry RetryPolicy, log *logging.Logger) *Manager {
	if log == nil {
		log = logging.NewNop()
	}
	return &Manager{
		pipelines: make(map[string]*Pipeline),
		retry:     retry,
		log:       log,
	}
}

func (m *Manager) Register(p *Pipeline) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.pipelines[p.Name()]; exists {
		return fmt.Errorf("pipeline %s already registered", p.Name())
	}
	m.pipelines[p.Name()] = p
	m.order = append(m.order, p.Name())
	return nil
}

func (m *Manager) Pipelines() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.order...)
}

// RunAll runs every registered pipeline against its payload from inputs and
// reports one result per pipeline, in registration order. Pipelines run
// concurrently; errors and panics are contained per pipeline.
func (m *Manager) RunAll(ctx context.Context, inputs map[string][]byte) []model.PipelineResult {
	m.mu.RLock()
	names := append([]string(nil), m.order...)
	m.mu.RUnlock()

	results := make([]model.PipelineResult, len(names))
	var wg sync.WaitGroup

	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = m.runOne(ctx, name, inputs[name])
		}(i, name)
	}
	wg.Wait()

	return results
}

func (m *Manager) runOne(ctx context.Context, name string, input []byte) (result model.PipelineResult) {
	m.mu.RLock()
	p := m.pipelines[name]
	m.mu.RUnlock()

	start := time.Now()
	result = model.PipelineResult{Pipeline: name}
	defer func() {
		if r := recover(); r != nil {
			result.Success = false
			result.Error = fmt.Sprintf("pipeline %s panicked: %v", name, r)
			m.log.Error("pipeline panicked", zap.String("pipeline", name), zap.Any("panic", r))
		}
		result.DurationMs = time.Since(start).Milliseconds()
		result.FinishedAt = time.Now().UTC()
	}()

	var outputs []model.GenericRecord
	attempts := 0
	run := func() error {
		attempts++
		var err error
		outputs, err = p.Run(ctx, input)
		return err
	}

	err := backoff.Retry(run, m.newBackOff(ctx))
	result.Attempts = attempts

	if err != nil {
		result.Error = err.Error()
		m.log.Warn("pipeline failed",
			zap.String("pipeline", name),
			zap.Int("attempts", attempts),
			zap.Error(err))
		return result
	}

	result.Success = true
	result.Outputs = outputs
	m.log.Info("pipeline completed",
		zap.String("pipeline", name),
		zap.Int("records", len(outputs)),
		zap.Int("attempts", attempts))
	return result
}

func (m *Manager) newBackOff(ctx context.Context) backoff.BackOff {
	if m.retry.MaxRetries <= 0 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = m.retry.InitialInterval
	bo.MaxInterval = m.retry.MaxInterval
	return backoff.WithContext(backoff.WithMaxRetries(bo, uint64(m.retry.MaxRetries)), ctx)
}

// Chain feeds a record through the named pipelines in order, the output of
// one becoming the input of the next. Names without a registered pipeline
// are skipped.
func (m *Manager) Chain(ctx context.Context, rec model.GenericRecord, names []string) (model.GenericRecord, error) {
	current := rec
	for _, name := range names {
		m.mu.RLock()
		p, ok := m.pipelines[name]
		m.mu.RUnlock()
		if !ok {
			m.log.Warn("chain skipping unknown pipeline", zap.String("pipeline", name))
			continue
		}

		next, err := p.RunRecord(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("chain: %w", err)
		}
		current = next
	}
	return current, nil
}
