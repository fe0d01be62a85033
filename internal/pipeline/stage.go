package pipeline

import (
	"context"

	"nexus-pipeline/internal/model"
)

// Stage is one unit of transformation within a pipeline. Anything with this
// shape can be composed into a pipeline; no common base type is required.
type Stage interface {
	Name() string
	Process(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error)
}

// StageFunc adapts a bare function into a Stage.
type StageFunc struct {
	StageName string
	Fn        func(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error)
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Process(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	return s.Fn(ctx, rec)
}
