package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"nexus-pipeline/internal/model"
	"nexus-pipeline/internal/stream"
	"nexus-pipeline/pkg/utils"
)

// Adapter translates an external payload format into the pipeline's internal
// record shape. Every pipeline owns exactly one adapter.
type Adapter interface {
	Format() string
	Decode(raw []byte) ([]model.GenericRecord, error)
}

// AdapterForFormat builds the adapter registered for a payload format.
func AdapterForFormat(format string) (Adapter, error) {
	switch strings.ToLower(format) {
	case "json":
		return &JSONAdapter{}, nil
	case "csv":
		return &CSVAdapter{}, nil
	case "stream":
		return &StreamAdapter{}, nil
	default:
		return nil, fmt.Errorf("unknown payload format: %s", format)
	}
}

// JSONAdapter decodes a JSON object into one record, or a JSON array of
// objects into one record each.
type JSONAdapter struct{}

func (a *JSONAdapter) Format() string { return "json" }

func (a *JSONAdapter) Decode(raw []byte) ([]model.GenericRecord, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	switch data := parsed.(type) {
	case map[string]any:
		return []model.GenericRecord{data}, nil
	case []any:
		records := make([]model.GenericRecord, 0, len(data))
		for i, item := range data {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("JSON array element %d is not an object", i)
			}
			records = append(records, m)
		}
		return records, nil
	default:
		return nil, errors.New("unexpected JSON structure")
	}
}

// CSVAdapter decodes a header row plus data rows, one record per row.
// Header names are trimmed and stripped of quotes, cell values are coerced
// to int/float where they parse as numbers.
type CSVAdapter struct{}

func (a *CSVAdapter) Format() string { return "csv" }

func (a *CSVAdapter) Decode(raw []byte) ([]model.GenericRecord, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.ReplaceAll(strings.TrimSpace(h), `"`, "")
	}

	var records []model.GenericRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		rec := make(model.GenericRecord, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = utils.ParseValue(row[i])
			}
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, errors.New("CSV payload has no data rows")
	}
	return records, nil
}

// StreamAdapter aggregates newline-separated sensor readings ("temp:22.5")
// into a single summary record by driving a sensor stream over them.
type StreamAdapter struct{}

func (a *StreamAdapter) Format() string { return "stream" }

func (a *StreamAdapter) Decode(raw []byte) ([]model.GenericRecord, error) {
	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, errors.New("stream payload has no readings")
	}

	s := stream.NewSensor("inline", lines)
	for {
		_, err := s.Next(context.Background())
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("stream payload: %w", err)
		}
	}

	rec := model.GenericRecord{"source": "stream"}
	for k, v := range s.Stats() {
		rec[k] = v
	}
	return []model.GenericRecord{rec}, nil
}
