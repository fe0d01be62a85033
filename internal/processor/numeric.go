package processor

import (
	"fmt"
	"strconv"

	"github.com/montanaflynn/stats"
)

// Numeric processes numeric data: counts, sums, and averages numbers.
type Numeric struct{}

func (p *Numeric) Kind() string { return "numeric" }

// Validate accepts slices whose elements are all numeric.
func (p *Numeric) Validate(data any) error {
	_, err := toFloats(data)
	return err
}

func (p *Numeric) Process(data any) (string, error) {
	nums, err := toFloats(data)
	if err != nil {
		return "", err
	}

	// stats returns NaN plus an error on empty input; an empty slice is a
	// valid record and must report zeroes
	sum, avg := 0.0, 0.0
	if len(nums) > 0 {
		sum, _ = stats.Sum(nums)
		avg, _ = stats.Mean(nums)
	}

	return fmt.Sprintf("Processed %d numeric values, sum=%s, avg=%s",
		len(nums), formatNumber(sum), formatNumber(avg)), nil
}

// toFloats coerces the supported slice shapes to a float slice. JSON payloads
// arrive as []any of float64, in-process callers pass typed slices.
func toFloats(data any) (stats.Float64Data, error) {
	switch vals := data.(type) {
	case []float64:
		return stats.Float64Data(vals), nil
	case []int:
		out := make(stats.Float64Data, len(vals))
		for i, v := range vals {
			out[i] = float64(v)
		}
		return out, nil
	case []any:
		out := make(stats.Float64Data, len(vals))
		for i, v := range vals {
			switch n := v.(type) {
			case float64:
				out[i] = n
			case int:
				out[i] = float64(n)
			case string:
				f, err := strconv.ParseFloat(n, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: element %d (%q) is not numeric", ErrInvalidInput, i, n)
				}
				out[i] = f
			default:
				return nil, fmt.Errorf("%w: element %d has type %T", ErrInvalidInput, i, v)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: numeric processor expects a slice of numbers, got %T", ErrInvalidInput, data)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
