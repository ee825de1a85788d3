package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// Summary mirrors a describe() table for one numeric column.
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Describe summarizes a numeric column over the given customers.
func Describe(customers []dataset.Customer, column string) (Summary, error) {
	values, err := columnValues(customers, column)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{Column: column, Count: len(values)}
	if len(values) == 0 {
		return s, nil
	}

	sort.Float64s(values)

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - s.Mean
		sq += d * d
	}
	if len(values) > 1 {
		// sample standard deviation, as pandas reports
		s.Std = math.Sqrt(sq / float64(len(values)-1))
	}

	s.Min = values[0]
	s.Max = values[len(values)-1]
	s.P25 = quantile(values, 0.25)
	s.Median = quantile(values, 0.5)
	s.P75 = quantile(values, 0.75)
	return s, nil
}

// Median returns the median of a numeric column, 0 for no values.
func Median(customers []dataset.Customer, column string) float64 {
	values, err := columnValues(customers, column)
	if err != nil || len(values) == 0 {
		return 0
	}
	sort.Float64s(values)
	return quantile(values, 0.5)
}

// quantile linearly interpolates on sorted values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// columnValues collects the column's known values. Only the exited column
// can have unknowns; those rows are skipped.
func columnValues(customers []dataset.Customer, column string) ([]float64, error) {
	if !validColumn(column) {
		return nil, fmt.Errorf("unknown numeric column %q", column)
	}

	values := make([]float64, 0, len(customers))
	for _, c := range customers {
		if v, ok := dataset.NumericValue(c, column); ok {
			values = append(values, v)
		}
	}
	return values, nil
}

func validColumn(column string) bool {
	if column == dataset.ColExited {
		return true
	}
	for _, name := range dataset.NumericColumns() {
		if name == column {
			return true
		}
	}
	return false
}
