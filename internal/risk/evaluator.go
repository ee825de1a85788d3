package risk

import (
	"errors"
	"fmt"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/stats"
)

// ErrInvalidInput marks an empty population or a profile missing a required
// matching attribute. Wrapped errors name the field.
var ErrInvalidInput = errors.New("invalid input")

// Policy constants. The whole-population step intentionally triggers on an
// empty region cohort only, not on one below MinCohortSize: a region cohort
// of 1-39 members is accepted as final.
const (
	MinCohortSize = 40

	mediumTierRate = 0.15
	highTierRate   = 0.30

	highestChurnRegion = "Germany"
	lowCreditScore     = 600
	seniorAge          = 40
	manyProducts       = 3
	lowSatisfaction    = 3
)

// noFactorsPlaceholder replaces an empty factor list.
const noFactorsPlaceholder = "no notable risk factors identified by the simple rules"

// cohortRule is one step of the fallback chain: a label and the predicate
// its cohort members must satisfy.
type cohortRule struct {
	label string
	match func(member, target dataset.Customer) bool
}

// fallbackChain orders cohort definitions from most to least specific. Each
// step relaxes one constraint of the previous one, so cohort size is
// non-decreasing down the chain.
var fallbackChain = []cohortRule{
	{
		label: CohortRegionActivityProducts,
		match: func(m, t dataset.Customer) bool {
			return m.Geography == t.Geography &&
				m.IsActive == t.IsActive &&
				m.NumProducts == t.NumProducts
		},
	},
	{
		label: CohortRegionActivity,
		match: func(m, t dataset.Customer) bool {
			return m.Geography == t.Geography && m.IsActive == t.IsActive
		},
	},
	{
		label: CohortRegion,
		match: func(m, t dataset.Customer) bool {
			return m.Geography == t.Geography
		},
	},
}

// percentileColumns are reported against the full population, in this order.
var percentileColumns = []string{
	dataset.ColCreditScore,
	dataset.ColAge,
	dataset.ColBalance,
	dataset.ColSalary,
	dataset.ColTenure,
	dataset.ColSatisfaction,
	dataset.ColPoints,
}

// Evaluate assesses one customer (existing or hypothetical) against the
// population snapshot. It is pure: the snapshot is read, never modified, and
// the same inputs always produce the same assessment.
func Evaluate(snap *dataset.Snapshot, target dataset.Customer) (*Assessment, error) {
	if snap == nil || snap.Size() == 0 {
		return nil, fmt.Errorf("%w: population is empty", ErrInvalidInput)
	}
	if target.Geography == "" {
		return nil, fmt.Errorf("%w: missing required field geography", ErrInvalidInput)
	}
	if target.NumProducts < 1 {
		return nil, fmt.Errorf("%w: missing required field num_products", ErrInvalidInput)
	}

	cohort, label := selectCohort(snap.Customers, target)

	cohortRate, labeled := stats.ChurnRate(cohort)
	baseRate, _ := stats.ChurnRate(snap.Customers)

	return &Assessment{
		CohortLabel:     label,
		CohortSize:      len(cohort),
		CohortLabeled:   labeled,
		CohortChurnRate: cohortRate,
		BaseChurnRate:   baseRate,
		Tier:            classifyTier(cohortRate),
		Factors:         enumerateFactors(snap.Customers, target),
		Percentiles:     computePercentiles(snap.Customers, target),
	}, nil
}

// selectCohort walks the fallback chain, relaxing while the cohort is below
// MinCohortSize. The final region cohort is kept even when small; only an
// empty one falls through to the entire population.
func selectCohort(population []dataset.Customer, target dataset.Customer) ([]dataset.Customer, string) {
	var cohort []dataset.Customer
	label := CohortEntirePopulation

	for _, rule := range fallbackChain {
		cohort = matchAll(population, target, rule.match)
		label = rule.label
		if len(cohort) >= MinCohortSize {
			return cohort, label
		}
	}

	if len(cohort) == 0 {
		return population, CohortEntirePopulation
	}
	return cohort, label
}

func matchAll(population []dataset.Customer, target dataset.Customer, match func(m, t dataset.Customer) bool) []dataset.Customer {
	var out []dataset.Customer
	for _, m := range population {
		if match(m, target) {
			out = append(out, m)
		}
	}
	return out
}

// classifyTier buckets a churn rate; boundary values belong to the upper
// tier (exactly 0.15 is Medium, exactly 0.30 is High).
func classifyTier(rate float64) string {
	switch {
	case rate < mediumTierRate:
		return TierLow
	case rate < highTierRate:
		return TierMedium
	default:
		return TierHigh
	}
}

// enumerateFactors applies the independent qualitative rules in their fixed
// order and reports every one that fires.
func enumerateFactors(population []dataset.Customer, t dataset.Customer) []string {
	var factors []string

	if t.Geography == highestChurnRegion {
		factors = append(factors, "customer is in Germany, historically the highest-churn region")
	}
	if !t.IsActive {
		factors = append(factors, "customer is inactive, which strongly raises churn risk")
	}
	if t.NumProducts >= manyProducts {
		factors = append(factors, "customer holds 3 or more products, a segment that churns more often")
	}
	if t.CreditScore < lowCreditScore {
		factors = append(factors, "low credit score (below 600)")
	}
	if t.Age >= seniorAge {
		factors = append(factors, "age 40 or above, a higher-churn segment")
	}
	if t.Satisfaction < lowSatisfaction {
		factors = append(factors, "low satisfaction score (below 3)")
	}
	if t.Complaints > 0 {
		factors = append(factors, "customer has filed complaints")
	}
	if t.Balance > stats.Median(population, dataset.ColBalance) {
		factors = append(factors, "above-median balance, a high-value customer worth retaining")
	}

	if len(factors) == 0 {
		factors = append(factors, noFactorsPlaceholder)
	}
	return factors
}

// computePercentiles reports, per column, the fraction of the population
// whose value is <= the target's. Ties count, so the population maximum
// reports 1.0.
func computePercentiles(population []dataset.Customer, t dataset.Customer) []Percentile {
	out := make([]Percentile, 0, len(percentileColumns))
	for _, column := range percentileColumns {
		value, _ := dataset.NumericValue(t, column)

		var atOrBelow int
		for _, m := range population {
			v, _ := dataset.NumericValue(m, column)
			if v <= value {
				atOrBelow++
			}
		}

		out = append(out, Percentile{
			Column:     column,
			Value:      value,
			Percentile: float64(atOrBelow) / float64(len(population)),
		})
	}
	return out
}
