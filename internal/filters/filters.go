package filters

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

// TriState selects all records, only matching ones, or only non-matching
// ones for a binary attribute.
type TriState int

const (
	Any TriState = iota
	Only
	Exclude
)

// Filter is the sidebar filter set: every zero value means "no constraint".
type Filter struct {
	Geographies []string
	Gender      string
	AgeMin      int
	AgeMax      int
	TenureMin   int
	TenureMax   int
	Active      TriState
	Exited      TriState
}

// Apply returns the customers matching every constraint. The snapshot is
// never mutated; the result is a fresh slice.
func (f Filter) Apply(s *dataset.Snapshot) []dataset.Customer {
	var out []dataset.Customer
	for _, c := range s.Customers {
		if f.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

func (f Filter) matches(c dataset.Customer) bool {
	if len(f.Geographies) > 0 && !contains(f.Geographies, c.Geography) {
		return false
	}
	if f.Gender != "" && c.Gender != f.Gender {
		return false
	}
	if f.AgeMin > 0 && c.Age < f.AgeMin {
		return false
	}
	if f.AgeMax > 0 && c.Age > f.AgeMax {
		return false
	}
	if f.TenureMin > 0 && c.Tenure < f.TenureMin {
		return false
	}
	if f.TenureMax > 0 && c.Tenure > f.TenureMax {
		return false
	}
	if !matchTriState(f.Active, c.IsActive) {
		return false
	}
	// Unknown outcomes only pass the "any" filter.
	switch f.Exited {
	case Only:
		if c.Exited == nil || *c.Exited != 1 {
			return false
		}
	case Exclude:
		if c.Exited == nil || *c.Exited != 0 {
			return false
		}
	}
	return true
}

func matchTriState(t TriState, v bool) bool {
	switch t {
	case Only:
		return v
	case Exclude:
		return !v
	default:
		return true
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// FromQuery parses the shared filter query parameters:
// geography (comma separated), gender, age_min, age_max, tenure_min,
// tenure_max, active (all|active|inactive), exited (all|exited|retained).
func FromQuery(q url.Values) (Filter, error) {
	var f Filter

	if geo := q.Get("geography"); geo != "" {
		for _, g := range strings.Split(geo, ",") {
			if g = strings.TrimSpace(g); g != "" {
				f.Geographies = append(f.Geographies, g)
			}
		}
	}

	f.Gender = q.Get("gender")

	var err error
	if f.AgeMin, err = intParam(q, "age_min"); err != nil {
		return f, err
	}
	if f.AgeMax, err = intParam(q, "age_max"); err != nil {
		return f, err
	}
	if f.TenureMin, err = intParam(q, "tenure_min"); err != nil {
		return f, err
	}
	if f.TenureMax, err = intParam(q, "tenure_max"); err != nil {
		return f, err
	}

	switch q.Get("active") {
	case "", "all":
	case "active":
		f.Active = Only
	case "inactive":
		f.Active = Exclude
	default:
		return f, fmt.Errorf("invalid active filter %q", q.Get("active"))
	}

	switch q.Get("exited") {
	case "", "all":
	case "exited":
		f.Exited = Only
	case "retained":
		f.Exited = Exclude
	default:
		return f, fmt.Errorf("invalid exited filter %q", q.Get("exited"))
	}

	return f, nil
}

func intParam(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return v, nil
}
