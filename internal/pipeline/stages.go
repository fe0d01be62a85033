package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nexus-pipeline/internal/model"
	"nexus-pipeline/pkg/utils"
)

// StageForName builds a named built-in stage. Validation rules only matter to
// the "validate" stage; the rest ignore them.
func StageForName(name string, rules *model.ValidationRules) (Stage, error) {
	switch name {
	case "validate":
		return &ValidateStage{Rules: rules}, nil
	case "trimStrings":
		return stringStage(name, strings.TrimSpace), nil
	case "lowercase":
		return stringStage(name, strings.ToLower), nil
	case "uppercase":
		return stringStage(name, strings.ToUpper), nil
	case "normalizeNames":
		return StageFunc{StageName: name, Fn: normalizeNames}, nil
	case "removeNulls":
		return StageFunc{StageName: name, Fn: removeNulls}, nil
	case "timestamp":
		return StageFunc{StageName: name, Fn: addTimestamp}, nil
	case "metadata":
		return StageFunc{StageName: name, Fn: addMetadata}, nil
	default:
		return nil, fmt.Errorf("unknown stage: %s", name)
	}
}

// ValidateStage enforces per-pipeline validation rules. A record that fails
// validation fails the stage; it is never passed along half-checked.
type ValidateStage struct {
	Rules *model.ValidationRules
}

func (s *ValidateStage) Name() string { return "validate" }

func (s *ValidateStage) Process(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	if s.Rules == nil {
		return rec, nil
	}

	for _, field := range s.Rules.RequiredFields {
		if _, ok := rec[field]; !ok {
			return nil, fmt.Errorf("missing required field: %s", field)
		}
	}

	for _, field := range s.Rules.NumericFields {
		val, ok := rec[field]
		if !ok {
			continue
		}
		switch val.(type) {
		case float64, float32, int, int64:
		default:
			return nil, fmt.Errorf("field %s must be numeric, got %T", field, val)
		}
	}

	for field, min := range s.Rules.MinValues {
		if val, ok := rec[field]; ok {
			if utils.Numeric(val) < min {
				return nil, fmt.Errorf("field %s below minimum: got %v, want >= %v", field, val, min)
			}
		}
	}
	for field, max := range s.Rules.MaxValues {
		if val, ok := rec[field]; ok {
			if utils.Numeric(val) > max {
				return nil, fmt.Errorf("field %s above maximum: got %v, want <= %v", field, val, max)
			}
		}
	}

	return rec, nil
}

// stringStage applies fn to every string field of the record.
func stringStage(name string, fn func(string) string) Stage {
	return StageFunc{StageName: name, Fn: func(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
		for key, val := range rec {
			if str, ok := val.(string); ok {
				rec[key] = fn(str)
			}
		}
		return rec, nil
	}}
}

// normalizeNames title-cases string fields whose key suggests name-like data.
func normalizeNames(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	for key, val := range rec {
		str, ok := val.(string)
		if !ok {
			continue
		}
		if isNameLikeField(strings.ToLower(key)) {
			rec[key] = titleCase(str)
		}
	}
	return rec, nil
}

func isNameLikeField(fieldName string) bool {
	namePatterns := []string{
		"name", "title", "label", "country", "city",
		"category", "status", "description", "company",
	}
	for _, pattern := range namePatterns {
		if strings.Contains(fieldName, pattern) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func removeNulls(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	for key, val := range rec {
		if val == nil {
			delete(rec, key)
		}
	}
	return rec, nil
}

func addTimestamp(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	rec["processed_at"] = time.Now().UTC().Format(time.RFC3339)
	return rec, nil
}

func addMetadata(ctx context.Context, rec model.GenericRecord) (model.GenericRecord, error) {
	rec["_pipeline_version"] = "1.0.0"
	rec["_validated"] = true
	return rec, nil
}
