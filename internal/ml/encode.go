package ml

import (
	"math"
	"sort"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// encoder turns a customer into a feature vector: standardized numeric
// features followed by one-hot categorical ones. Means, deviations and
// category vocabularies come from the training split only; a category unseen
// in training encodes to all zeros.
type encoder struct {
	numericCols []string
	means       []float64
	stds        []float64

	geographies []string
	genders     []string
	cardTypes   []string
}

func fitEncoder(train []dataset.Customer) *encoder {
	e := &encoder{numericCols: dataset.NumericColumns()}

	e.means = make([]float64, len(e.numericCols))
	e.stds = make([]float64, len(e.numericCols))

	n := float64(len(train))
	for i, col := range e.numericCols {
		var sum float64
		for _, c := range train {
			v, _ := dataset.NumericValue(c, col)
			sum += v
		}
		e.means[i] = sum / n

		var sq float64
		for _, c := range train {
			v, _ := dataset.NumericValue(c, col)
			d := v - e.means[i]
			sq += d * d
		}
		e.stds[i] = math.Sqrt(sq / n)
		if e.stds[i] == 0 {
			e.stds[i] = 1 // constant column, avoid division by zero
		}
	}

	e.geographies = categories(train, func(c dataset.Customer) string { return c.Geography })
	e.genders = categories(train, func(c dataset.Customer) string { return c.Gender })
	e.cardTypes = categories(train, func(c dataset.Customer) string { return c.CardType })
	return e
}

func (e *encoder) featureCount() int {
	return len(e.numericCols) + len(e.geographies) + len(e.genders) + len(e.cardTypes)
}

func (e *encoder) encode(c dataset.Customer) []float64 {
	x := make([]float64, 0, e.featureCount())

	for i, col := range e.numericCols {
		v, _ := dataset.NumericValue(c, col)
		x = append(x, (v-e.means[i])/e.stds[i])
	}

	x = append(x, oneHot(e.geographies, c.Geography)...)
	x = append(x, oneHot(e.genders, c.Gender)...)
	x = append(x, oneHot(e.cardTypes, c.CardType)...)
	return x
}

func categories(customers []dataset.Customer, key func(dataset.Customer) string) []string {
	seen := map[string]bool{}
	for _, c := range customers {
		seen[key(c)] = true
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func oneHot(vocab []string, value string) []float64 {
	out := make([]float64, len(vocab))
	for i, v := range vocab {
		if v == value {
			out[i] = 1
			break
		}
	}
	return out
}
