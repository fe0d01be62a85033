package stream

import (
	"context"
	"io"
	"testing"
	"time"

	"nexus-pipeline/internal/model"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainAll(t *testing.T, s DataStream) []string {
	t.Helper()
	var out []string
	for {
		rec, err := s.Next(context.Background())
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, rec)
	}
}

func TestSensorStream(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	s := NewSensorWithClock("SENSOR_001", []string{"temp:22.5", "humidity:65", "temp:23.5"}, mock)
	assert.Equal(t, "SENSOR_001", s.ID())
	assert.Equal(t, "sensor", s.Kind())

	records := drainAll(t, s)
	assert.Len(t, records, 3)

	stats := s.Stats()
	assert.Equal(t, 3, stats["readings"])
	assert.Equal(t, 23.0, stats["avg_temp"])
	assert.Equal(t, "2026-03-01T12:00:00Z", stats["last_reading_at"])
}

func TestSensorMalformedRecords(t *testing.T) {
	s := NewSensor("SENSOR_002", []string{"temp:abc", "no-separator", "temp:21"})

	_, err := s.Next(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = s.Next(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRecord)

	rec, err := s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "temp:21", rec)

	_, err = s.Next(context.Background())
	assert.Equal(t, io.EOF, err)

	// malformed records never reach the stats
	assert.Equal(t, 1, s.Stats()["readings"])
	assert.Equal(t, 21.0, s.Stats()["avg_temp"])
}

func TestTransactionStream(t *testing.T) {
	s := NewTransaction("TRANS_001", []string{"buy:100", "sell:150", "buy:75"})

	records := drainAll(t, s)
	assert.Len(t, records, 3)

	stats := s.Stats()
	assert.Equal(t, 3, stats["operations"])
	assert.Equal(t, 25.0, stats["net_flow"])
}

func TestTransactionMalformed(t *testing.T) {
	s := NewTransaction("TRANS_002", []string{"hold:10", "buy:xyz", "sell:50"})

	_, err := s.Next(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = s.Next(context.Background())
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = s.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -50.0, s.Stats()["net_flow"])
}

func TestEventStream(t *testing.T) {
	s := NewEvent("EVENT_001", []string{"login", "error", "logout"})

	records := drainAll(t, s)
	assert.Equal(t, []string{"login", "error", "logout"}, records)

	stats := s.Stats()
	assert.Equal(t, 3, stats["events"])
	assert.Equal(t, 1, stats["errors"])
}

func TestFilter(t *testing.T) {
	t.Run("Sensor By Key", func(t *testing.T) {
		s := NewSensor("S", nil)
		batch := []string{"temp:30", "humidity:60", "temp:35"}
		assert.Equal(t, []string{"temp:30", "temp:35"}, s.Filter(batch, "temp"))
		assert.Equal(t, batch, s.Filter(batch, ""))
	})

	t.Run("Transaction By Op", func(t *testing.T) {
		s := NewTransaction("T", nil)
		assert.Equal(t, []string{"buy:200"}, s.Filter([]string{"buy:200", "sell:50"}, "buy"))
	})

	t.Run("Event Exact Match", func(t *testing.T) {
		s := NewEvent("E", nil)
		assert.Equal(t, []string{"error"}, s.Filter([]string{"login", "error", "logout"}, "error"))
	})
}

func TestForSpec(t *testing.T) {
	for _, kind := range []string{"sensor", "transaction", "event"} {
		s, err := ForSpec(model.StreamSpec{ID: "X", Kind: kind}, nil)
		require.NoError(t, err)
		assert.Equal(t, kind, s.Kind())
	}

	_, err := ForSpec(model.StreamSpec{ID: "X", Kind: "video"}, nil)
	assert.Error(t, err)
}

func TestForSpecFilter(t *testing.T) {
	spec := model.StreamSpec{ID: "S", Kind: "sensor", Filter: "temp"}
	s, err := ForSpec(spec, []string{"temp:30", "humidity:60", "temp:35"})
	require.NoError(t, err)

	records := drainAll(t, s)
	assert.Equal(t, []string{"temp:30", "temp:35"}, records)
	assert.Equal(t, 32.5, s.Stats()["avg_temp"])
}

func TestNextHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewEvent("E", []string{"login"})
	_, err := s.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
