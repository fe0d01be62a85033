package stream

import (
	"context"
	"io"
)

// Event streams bare system event names ("login", "error", "logout").
// Every name is a valid event; "error" events are tallied separately.
type Event struct {
	id      string
	pending []string

	events int
	errors int
}

func NewEvent(id string, items []string) *Event {
	return &Event{id: id, pending: append([]string(nil), items...)}
}

func (s *Event) ID() string   { return s.id }
func (s *Event) Kind() string { return "event" }

func (s *Event) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.pending) == 0 {
		return "", io.EOF
	}

	item := s.pending[0]
	s.pending = s.pending[1:]

	s.events++
	if item == "error" {
		s.errors++
	}
	return item, nil
}

// Filter matches events by exact name rather than key prefix.
func (s *Event) Filter(batch []string, criteria string) []string {
	if criteria == "" {
		return batch
	}
	var out []string
	for _, item := range batch {
		if item == criteria {
			out = append(out, item)
		}
	}
	return out
}

func (s *Event) Stats() map[string]any {
	return map[string]any{
		"events": s.events,
		"errors": s.errors,
	}
}
