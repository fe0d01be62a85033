package pipeline

import (
	"context"
	"fmt"

	"nexus-pipeline/internal/model"
)

// Pipeline owns one format adapter and an ordered sequence of stages.
// Running it decodes the payload and feeds each record through the stages in
// order, the output of stage n becoming the input of stage n+1.
type Pipeline struct {
	name    string
	adapter Adapter
	stages  []Stage
}

func New(name string, adapter Adapter) *Pipeline {
	return &Pipeline{name: name, adapter: adapter}
}

// FromSpec builds a pipeline from its wire configuration.
func FromSpec(spec model.PipelineSpec) (*Pipeline, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("pipeline needs a name")
	}
	adapter, err := AdapterForFormat(spec.Format)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", spec.Name, err)
	}

	p := New(spec.Name, adapter)
	for _, stageName := range spec.Stages {
		stage, err := StageForName(stageName, spec.Validation)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s: %w", spec.Name, err)
		}
		p.AddStage(stage)
	}
	return p, nil
}

func (p *Pipeline) Name() string   { return p.name }
func (p *Pipeline) Format() string { return p.adapter.Format() }

func (p *Pipeline) AddStage(s Stage) *Pipeline {
	p.stages = append(p.stages, s)
	return p
}

// Run decodes raw through the adapter and pushes every decoded record
// through the stage chain.
func (p *Pipeline) Run(ctx context.Context, raw []byte) ([]model.GenericRecord, error) {
	records, err := p.adapter.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: decode %s payload: %w", p.name, p.adapter.Format(), err)
	}

	outputs := make([]model.GenericRecord, 0, len(records))
	for _, rec := range records {
		out, err := p.RunRecord(ctx, rec)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// RunRecord feeds one record through the stage chain. The input record is
// cloned first so a failing stage leaves the caller's copy untouched.
func (p *Pipeline) RunRecord(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	current := rec.Clone()
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline %s: %w", p.name, err)
		}

		next, err := stage.Process(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s: stage %s: %w", p.name, stage.Name(), err)
		}
		current = next
	}
	return current, nil
}
