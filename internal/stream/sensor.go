package stream

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// Sensor streams environmental readings shaped like "temp:22.5". Temperature
// readings feed a running average; other keys (humidity, pressure) only count.
type Sensor struct {
	id      string
	pending []string
	clk     clock.Clock

	readings int
	tempSum  float64
	tempN    int
	lastAt   time.Time
}

func NewSensor(id string, items []string) *Sensor {
	return NewSensorWithClock(id, items, clock.New())
}

// NewSensorWithClock injects the time source so stats stay deterministic
// under test.
func NewSensorWithClock(id string, items []string, clk clock.Clock) *Sensor {
	return &Sensor{id: id, pending: append([]string(nil), items...), clk: clk}
}

func (s *Sensor) ID() string   { return s.id }
func (s *Sensor) Kind() string { return "sensor" }

func (s *Sensor) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.pending) == 0 {
		return "", io.EOF
	}

	item := s.pending[0]
	s.pending = s.pending[1:]

	key, value, ok := splitRecord(item)
	if !ok {
		return "", fmt.Errorf("%w: sensor reading %q is not key:value", ErrMalformedRecord, item)
	}
	if key == "temp" {
		t, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", fmt.Errorf("%w: temperature %q is not numeric", ErrMalformedRecord, value)
		}
		s.tempSum += t
		s.tempN++
	}

	s.readings++
	s.lastAt = s.clk.Now()
	return item, nil
}

func (s *Sensor) Filter(batch []string, criteria string) []string {
	return filterByPrefix(batch, criteria)
}

func (s *Sensor) Stats() map[string]any {
	stats := map[string]any{
		"readings": s.readings,
		"avg_temp": "N/A",
	}
	if s.tempN > 0 {
		stats["avg_temp"] = s.tempSum / float64(s.tempN)
	}
	if !s.lastAt.IsZero() {
		stats["last_reading_at"] = s.lastAt.UTC().Format(time.RFC3339)
	}
	return stats
}

// splitRecord breaks "key:value" items apart. The value may itself contain
// colons (timestamps), only the first one splits.
func splitRecord(item string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(item, ":")
	if !ok || key == "" {
		return "", "", false
	}
	return key, value, true
}
