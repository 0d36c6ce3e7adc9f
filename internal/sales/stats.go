package sales

import (
	"fmt"
	"math"
	"sort"
)

// QuantityStatistics returns the mean, median and population standard
// deviation of the Quantity column. A table with no records yields NaN for
// all three.
func (t *Table) QuantityStatistics() (QuantityStats, error) {
	if !t.Loaded() {
		return QuantityStats{}, ErrUnavailable
	}

	values := make([]float64, len(t.records))
	for i, r := range t.records {
		qty, err := quantity(r)
		if err != nil {
			return QuantityStats{}, fmt.Errorf("quantity statistics: %w", err)
		}
		values[i] = qty.InexactFloat64()
	}

	return describe(values), nil
}

func describe(values []float64) QuantityStats {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return QuantityStats{Mean: nan, Median: nan, StdDev: nan}
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return QuantityStats{
		Count:  n,
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(sq / float64(n)),
	}
}
