package stats

import (
	"math"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// CorrelationMatrix holds Pearson correlations between numeric columns,
// row-major in the order of Columns.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Correlate computes the pairwise Pearson correlation of all numeric columns
// plus the outcome label. Pairs involving the outcome use only rows with a
// known outcome.
func Correlate(customers []dataset.Customer) CorrelationMatrix {
	columns := append(dataset.NumericColumns(), dataset.ColExited)

	m := CorrelationMatrix{
		Columns: columns,
		Values:  make([][]float64, len(columns)),
	}

	for i := range columns {
		m.Values[i] = make([]float64, len(columns))
		for j := range columns {
			if j < i {
				m.Values[i][j] = m.Values[j][i]
				continue
			}
			m.Values[i][j] = pearson(customers, columns[i], columns[j])
		}
	}
	return m
}

// pearson computes the correlation over rows where both columns are known.
// Degenerate pairs (no rows, or a constant column) report 0.
func pearson(customers []dataset.Customer, colX, colY string) float64 {
	var xs, ys []float64
	for _, c := range customers {
		x, okX := dataset.NumericValue(c, colX)
		y, okY := dataset.NumericValue(c, colY)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}
	if len(xs) < 2 {
		return 0
	}

	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
