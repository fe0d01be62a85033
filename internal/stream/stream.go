package stream

import (
	"context"
	"errors"
	"fmt"

	"nexus-pipeline/internal/model"
)

// ErrMalformedRecord marks a record a stream could not parse for its kind.
// The stream stays usable; the bad record is reported and skipped.
var ErrMalformedRecord = errors.New("malformed stream record")

// DataStream is the shared capability every stream variant implements.
// Next returns the next raw record or io.EOF once the stream is drained;
// consumers drive streams through this interface alone and never branch on
// the concrete variant.
type DataStream interface {
	ID() string
	Kind() string
	Next(ctx context.Context) (string, error)
	Filter(batch []string, criteria string) []string
	Stats() map[string]any
}

// ForSpec constructs the stream variant named by spec, preloaded with items.
// When the spec carries a filter criteria, the batch is narrowed by the
// variant's own Filter before the stream sees it.
func ForSpec(spec model.StreamSpec, items []string) (DataStream, error) {
	build, err := constructor(spec.Kind)
	if err != nil {
		return nil, err
	}
	if spec.Filter != "" {
		items = build(spec.ID, nil).Filter(items, spec.Filter)
	}
	return build(spec.ID, items), nil
}

func constructor(kind string) (func(id string, items []string) DataStream, error) {
	switch kind {
	case "sensor":
		return func(id string, items []string) DataStream { return NewSensor(id, items) }, nil
	case "transaction":
		return func(id string, items []string) DataStream { return NewTransaction(id, items) }, nil
	case "event":
		return func(id string, items []string) DataStream { return NewEvent(id, items) }, nil
	default:
		return nil, fmt.Errorf("unknown stream kind: %s", kind)
	}
}

// filterByPrefix keeps batch entries whose "key:value" key equals criteria.
// An empty criteria keeps everything. Shared by the key/value streams.
func filterByPrefix(batch []string, criteria string) []string {
	if criteria == "" {
		return batch
	}
	var out []string
	for _, item := range batch {
		if key, _, _ := splitRecord(item); key == criteria {
			out = append(out, item)
		}
	}
	return out
}
