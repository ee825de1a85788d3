package stats

import "github.com/BojkoIr/ChurnSight/internal/dataset"

// KPIs are the headline metrics for a (possibly filtered) set of customers.
// ChurnRate is the mean over known outcomes only.
type KPIs struct {
	TotalCustomers int     `json:"total_customers"`
	ChurnRate      float64 `json:"churn_rate"`
	AvgCreditScore float64 `json:"avg_credit_score"`
	AvgBalance     float64 `json:"avg_balance"`
	AvgSalary      float64 `json:"avg_salary"`
	AvgTenure      float64 `json:"avg_tenure"`
}

func ComputeKPIs(customers []dataset.Customer) KPIs {
	kpis := KPIs{TotalCustomers: len(customers)}
	if len(customers) == 0 {
		return kpis
	}

	var credit, balance, salary, tenure float64
	for _, c := range customers {
		credit += c.CreditScore
		balance += c.Balance
		salary += c.Salary
		tenure += float64(c.Tenure)
	}

	n := float64(len(customers))
	kpis.ChurnRate, _ = ChurnRate(customers)
	kpis.AvgCreditScore = credit / n
	kpis.AvgBalance = balance / n
	kpis.AvgSalary = salary / n
	kpis.AvgTenure = tenure / n
	return kpis
}

// ChurnRate returns the mean of the outcome label over customers with a
// known outcome, and how many were labeled. Unknown outcomes are excluded,
// never coerced.
func ChurnRate(customers []dataset.Customer) (float64, int) {
	var exited, labeled int
	for _, c := range customers {
		if c.Exited == nil {
			continue
		}
		labeled++
		exited += *c.Exited
	}
	if labeled == 0 {
		return 0, 0
	}
	return float64(exited) / float64(labeled), labeled
}
