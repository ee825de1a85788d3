package ml

import (
	"math/rand"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

const (
	testFraction = 0.2
	randomSeed   = 42
)

// stratifiedSplit shuffles each outcome class separately with a fixed seed
// and holds out testFraction of each, keeping the class balance of the test
// split close to the population's.
func stratifiedSplit(labeled []dataset.Customer) (train, test []dataset.Customer) {
	var retained, exited []dataset.Customer
	for _, c := range labeled {
		if *c.Exited == 1 {
			exited = append(exited, c)
		} else {
			retained = append(retained, c)
		}
	}

	rng := rand.New(rand.NewSource(randomSeed))
	for _, class := range [][]dataset.Customer{retained, exited} {
		class := append([]dataset.Customer(nil), class...)
		rng.Shuffle(len(class), func(i, j int) {
			class[i], class[j] = class[j], class[i]
		})

		cut := int(float64(len(class)) * testFraction)
		test = append(test, class[:cut]...)
		train = append(train, class[cut:]...)
	}
	return train, test
}
