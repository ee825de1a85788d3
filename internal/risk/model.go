package risk

// Risk tiers, a fixed discretization of the cohort churn rate.
const (
	TierLow    = "Low risk"
	TierMedium = "Medium risk"
	TierHigh   = "High risk"
)

// Cohort labels, from most to least specific.
const (
	CohortRegionActivityProducts = "region+activity+products"
	CohortRegionActivity         = "region+activity"
	CohortRegion                 = "region"
	CohortEntirePopulation       = "entire population"
)

// Percentile is the customer's position for one attribute against the full
// population (inclusive: fraction of records with value <= the customer's).
type Percentile struct {
	Column     string  `json:"column"`
	Value      float64 `json:"value"`
	Percentile float64 `json:"percentile"`
}

// Assessment is the full result of one evaluation. CohortLabeled counts the
// cohort members with a known outcome; the churn rate is the mean over those
// only, so a 0 rate with 0 labeled members is vacuous, not reassuring.
type Assessment struct {
	CohortLabel     string       `json:"cohort_label"`
	CohortSize      int          `json:"cohort_size"`
	CohortLabeled   int          `json:"cohort_labeled"`
	CohortChurnRate float64      `json:"cohort_churn_rate"`
	BaseChurnRate   float64      `json:"base_churn_rate"`
	Tier            string       `json:"tier"`
	Factors         []string     `json:"factors"`
	Percentiles     []Percentile `json:"percentiles"`
}
