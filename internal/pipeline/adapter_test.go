package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONAdapter(t *testing.T) {
	a := &JSONAdapter{}

	t.Run("Single Object", func(t *testing.T) {
		records, err := a.Decode([]byte(`{"sensor": "temp", "value": 23.5}`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 23.5, records[0]["value"])
	})

	t.Run("Array Of Objects", func(t *testing.T) {
		records, err := a.Decode([]byte(`[{"id": 1}, {"id": 2}, {"id": 3}]`))
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})

	t.Run("Array With Non Object", func(t *testing.T) {
		_, err := a.Decode([]byte(`[{"id": 1}, 42]`))
		assert.Error(t, err)
	})

	t.Run("Scalar", func(t *testing.T) {
		_, err := a.Decode([]byte(`42`))
		assert.ErrorContains(t, err, "unexpected JSON structure")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		_, err := a.Decode([]byte(`{not json`))
		assert.Error(t, err)
	})
}

func TestCSVAdapter(t *testing.T) {
	a := &CSVAdapter{}

	t.Run("Rows Become Records", func(t *testing.T) {
		payload := "user,action,count\nalice,login,3\nbob,logout,1\n"
		records, err := a.Decode([]byte(payload))
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "alice", records[0]["user"])
		assert.Equal(t, 3, records[0]["count"]) // numeric cells are coerced
		assert.Equal(t, "logout", records[1]["action"])
	})

	t.Run("Quoted Headers Cleaned", func(t *testing.T) {
		payload := "\"name\", value\ntemp,22.5\n"
		records, err := a.Decode([]byte(payload))
		require.NoError(t, err)
		assert.Equal(t, "temp", records[0]["name"])
		assert.Equal(t, 22.5, records[0]["value"])
	})

	t.Run("No Data Rows", func(t *testing.T) {
		_, err := a.Decode([]byte("only,a,header\n"))
		assert.ErrorContains(t, err, "no data rows")
	})

	t.Run("Empty Payload", func(t *testing.T) {
		_, err := a.Decode(nil)
		assert.Error(t, err)
	})
}

func TestStreamAdapter(t *testing.T) {
	a := &StreamAdapter{}

	t.Run("Aggregates Readings", func(t *testing.T) {
		payload := "temp:20\ntemp:24\nhumidity:60\n"
		records, err := a.Decode([]byte(payload))
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "stream", records[0]["source"])
		assert.Equal(t, 3, records[0]["readings"])
		assert.Equal(t, 22.0, records[0]["avg_temp"])
	})

	t.Run("Malformed Reading", func(t *testing.T) {
		_, err := a.Decode([]byte("temp:abc\n"))
		assert.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := a.Decode([]byte("\n \n"))
		assert.ErrorContains(t, err, "no readings")
	})
}

func TestAdapterForFormat(t *testing.T) {
	for _, format := range []string{"json", "csv", "stream"} {
		a, err := AdapterForFormat(format)
		require.NoError(t, err)
		assert.Equal(t, format, a.Format())
	}

	_, err := AdapterForFormat("parquet")
	assert.Error(t, err)
}
