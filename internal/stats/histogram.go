package stats

import (
	"fmt"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

const (
	MinBins     = 5
	MaxBins     = 80
	DefaultBins = 40
)

// HistogramBin counts customers in one value band, split by outcome status.
type HistogramBin struct {
	Lo       float64 `json:"lo"`
	Hi       float64 `json:"hi"`
	Retained int     `json:"retained"`
	Exited   int     `json:"exited"`
	Unknown  int     `json:"unknown"`
}

type Histogram struct {
	Column string         `json:"column"`
	Bins   []HistogramBin `json:"bins"`
}

// ComputeHistogram buckets a numeric column into equal-width bins. The bin
// count is clamped to [MinBins, MaxBins]; 0 means DefaultBins.
func ComputeHistogram(customers []dataset.Customer, column string, bins int) (Histogram, error) {
	if bins == 0 {
		bins = DefaultBins
	}
	if bins < MinBins {
		bins = MinBins
	}
	if bins > MaxBins {
		bins = MaxBins
	}

	if !validColumn(column) || column == dataset.ColExited {
		return Histogram{}, fmt.Errorf("unknown histogram column %q", column)
	}

	h := Histogram{Column: column}
	if len(customers) == 0 {
		return h, nil
	}

	min, _ := dataset.NumericValue(customers[0], column)
	max := min
	for _, c := range customers {
		v, _ := dataset.NumericValue(c, column)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		// single degenerate bin
		bin := HistogramBin{Lo: min, Hi: max}
		for _, c := range customers {
			countOutcome(&bin, c)
		}
		h.Bins = []HistogramBin{bin}
		return h, nil
	}

	width := (max - min) / float64(bins)
	h.Bins = make([]HistogramBin, bins)
	for i := range h.Bins {
		h.Bins[i].Lo = min + float64(i)*width
		h.Bins[i].Hi = min + float64(i+1)*width
	}

	for _, c := range customers {
		v, _ := dataset.NumericValue(c, column)
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1 // max value lands in the last bin
		}
		countOutcome(&h.Bins[idx], c)
	}
	return h, nil
}

func countOutcome(bin *HistogramBin, c dataset.Customer) {
	switch {
	case c.Exited == nil:
		bin.Unknown++
	case *c.Exited == 1:
		bin.Exited++
	default:
		bin.Retained++
	}
}
