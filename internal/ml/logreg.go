package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// ModelTypeLogReg is the only supported classifier. The type switch stays so
// requests for anything else fail loudly rather than silently substituting.
const ModelTypeLogReg = "logreg"

const (
	maxEpochs    = 1000
	learningRate = 0.1
	minTrainSize = 50
)

var ErrNotEnoughData = errors.New("not enough labeled data to train")

// Metrics are computed on the held-out test split.
type Metrics struct {
	Accuracy  float64 `json:"accuracy"`
	ROCAUC    float64 `json:"roc_auc"`
	TrainSize int     `json:"train_size"`
	TestSize  int     `json:"test_size"`
}

// Model is a trained logistic-regression churn classifier.
type Model struct {
	enc     *encoder
	weights []float64
	bias    float64
}

// Train fits a classifier of the given type on the labeled part of the
// population and reports test-split metrics. Deterministic for a fixed
// population (fixed split seed).
func Train(population []dataset.Customer, modelType string) (*Model, Metrics, error) {
	if modelType != ModelTypeLogReg {
		return nil, Metrics{}, fmt.Errorf("unknown model type %q", modelType)
	}

	var labeled []dataset.Customer
	for _, c := range population {
		if c.Exited != nil {
			labeled = append(labeled, c)
		}
	}
	if len(labeled) < minTrainSize {
		return nil, Metrics{}, ErrNotEnoughData
	}

	train, test := stratifiedSplit(labeled)

	enc := fitEncoder(train)
	m := &Model{
		enc:     enc,
		weights: make([]float64, enc.featureCount()),
	}

	x := make([][]float64, len(train))
	y := make([]float64, len(train))
	for i, c := range train {
		x[i] = enc.encode(c)
		y[i] = float64(*c.Exited)
	}

	m.fit(x, y)

	metrics := Metrics{
		TrainSize: len(train),
		TestSize:  len(test),
	}
	metrics.Accuracy, metrics.ROCAUC = m.evaluate(test)
	return m, metrics, nil
}

// fit runs full-batch gradient descent on the weighted cross-entropy loss.
// Class weights are balanced (n / 2*n_class) so the minority exited class is
// not drowned out.
func (m *Model) fit(x [][]float64, y []float64) {
	var positives float64
	for _, label := range y {
		positives += label
	}
	n := float64(len(y))
	negatives := n - positives

	wPos, wNeg := 1.0, 1.0
	if positives > 0 && negatives > 0 {
		wPos = n / (2 * positives)
		wNeg = n / (2 * negatives)
	}

	gradW := make([]float64, len(m.weights))

	for epoch := 0; epoch < maxEpochs; epoch++ {
		for i := range gradW {
			gradW[i] = 0
		}
		var gradB float64

		for i := range x {
			p := m.probability(x[i])
			w := wNeg
			if y[i] == 1 {
				w = wPos
			}
			err := w * (p - y[i])
			for j, xj := range x[i] {
				gradW[j] += err * xj
			}
			gradB += err
		}

		for j := range m.weights {
			m.weights[j] -= learningRate * gradW[j] / n
		}
		m.bias -= learningRate * gradB / n
	}
}

func (m *Model) probability(x []float64) float64 {
	z := m.bias
	for j, w := range m.weights {
		z += w * x[j]
	}
	return 1 / (1 + math.Exp(-z))
}

// Predict returns the predicted class (threshold 0.5) and the churn
// probability for one customer.
func (m *Model) Predict(c dataset.Customer) (int, float64) {
	p := m.probability(m.enc.encode(c))
	if p >= 0.5 {
		return 1, p
	}
	return 0, p
}

func (m *Model) evaluate(test []dataset.Customer) (accuracy, auc float64) {
	if len(test) == 0 {
		return 0, 0
	}

	probs := make([]float64, len(test))
	labels := make([]int, len(test))

	var correct int
	for i, c := range test {
		pred, p := m.Predict(c)
		probs[i] = p
		labels[i] = *c.Exited
		if pred == *c.Exited {
			correct++
		}
	}

	return float64(correct) / float64(len(test)), rocAUC(probs, labels)
}

// rocAUC is the rank-based (Mann-Whitney) AUC with midrank tie handling.
// Degenerate single-class test splits report 0.
func rocAUC(probs []float64, labels []int) float64 {
	type scored struct {
		p float64
		y int
	}

	items := make([]scored, len(probs))
	for i := range probs {
		items[i] = scored{probs[i], labels[i]}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].p < items[j].p })

	ranks := make([]float64, len(items))
	for i := 0; i < len(items); {
		j := i
		for j < len(items) && items[j].p == items[i].p {
			j++
		}
		mid := float64(i+j+1) / 2 // 1-based midrank
		for k := i; k < j; k++ {
			ranks[k] = mid
		}
		i = j
	}

	var posRankSum float64
	var pos, neg float64
	for i, item := range items {
		if item.y == 1 {
			pos++
			posRankSum += ranks[i]
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0
	}
	return (posRankSum - pos*(pos+1)/2) / (pos * neg)
}
