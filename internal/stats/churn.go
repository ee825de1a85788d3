package stats

import (
	"fmt"
	"sort"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// CategoryChurn is the churn rate of one category value within a dimension.
type CategoryChurn struct {
	Category  string  `json:"category"`
	ChurnRate float64 `json:"churn_rate"`
	Size      int     `json:"size"`
	Labeled   int     `json:"labeled"`
}

// Dimensions a churn breakdown can be grouped by.
const (
	ByGeography = "geography"
	ByGender    = "gender"
	ByActive    = "is_active"
	ByCard      = "has_cr_card"
)

// ChurnBy groups customers by a categorical dimension and returns per-group
// churn rates, sorted by rate descending.
func ChurnBy(customers []dataset.Customer, dimension string) ([]CategoryChurn, error) {
	key, err := dimensionKey(dimension)
	if err != nil {
		return nil, err
	}

	groups := map[string][]dataset.Customer{}
	for _, c := range customers {
		k := key(c)
		groups[k] = append(groups[k], c)
	}

	out := make([]CategoryChurn, 0, len(groups))
	for category, members := range groups {
		rate, labeled := ChurnRate(members)
		out = append(out, CategoryChurn{
			Category:  category,
			ChurnRate: rate,
			Size:      len(members),
			Labeled:   labeled,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ChurnRate != out[j].ChurnRate {
			return out[i].ChurnRate > out[j].ChurnRate
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func dimensionKey(dimension string) (func(dataset.Customer) string, error) {
	switch dimension {
	case ByGeography:
		return func(c dataset.Customer) string { return c.Geography }, nil
	case ByGender:
		return func(c dataset.Customer) string { return c.Gender }, nil
	case ByActive:
		return func(c dataset.Customer) string {
			if c.IsActive {
				return "active"
			}
			return "inactive"
		}, nil
	case ByCard:
		return func(c dataset.Customer) string {
			if c.HasCrCard {
				return "has_card"
			}
			return "no_card"
		}, nil
	default:
		return nil, fmt.Errorf("unknown churn dimension %q", dimension)
	}
}

// TenureBucket is the churn rate of one tenure band.
type TenureBucket struct {
	Label     string  `json:"label"`
	ChurnRate float64 `json:"churn_rate"`
	Size      int     `json:"size"`
}

// tenure bands of the factor view: (-1,2], (2,5], (5,10]
var tenureBands = []struct {
	label string
	lo    int // exclusive
	hi    int // inclusive
}{
	{"0-2", -1, 2},
	{"3-5", 2, 5},
	{"6-10", 5, 10},
}

// ChurnByTenure buckets customers into tenure bands and returns each band's
// churn rate. Tenures above the last band are ignored, matching the cut.
func ChurnByTenure(customers []dataset.Customer) []TenureBucket {
	out := make([]TenureBucket, len(tenureBands))
	for i, band := range tenureBands {
		var members []dataset.Customer
		for _, c := range customers {
			if c.Tenure > band.lo && c.Tenure <= band.hi {
				members = append(members, c)
			}
		}
		rate, _ := ChurnRate(members)
		out[i] = TenureBucket{Label: band.label, ChurnRate: rate, Size: len(members)}
	}
	return out
}
