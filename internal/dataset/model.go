package dataset

// Customer is one row of the churn dataset, typed at the loading boundary.
// Exited is nil when the outcome is unknown (hypothetical or newly saved
// customers); it is never coerced to 0 or 1.
type Customer struct {
	RowNumber    int     `json:"row_number"`
	ID           int64   `json:"customer_id"`
	Surname      string  `json:"surname"`
	CreditScore  float64 `json:"credit_score"`
	Geography    string  `json:"geography"`
	Gender       string  `json:"gender"`
	Age          int     `json:"age"`
	Tenure       int     `json:"tenure"`
	Balance      float64 `json:"balance"`
	NumProducts  int     `json:"num_products"`
	HasCrCard    bool    `json:"has_cr_card"`
	IsActive     bool    `json:"is_active"`
	Salary       float64 `json:"estimated_salary"`
	Exited       *int    `json:"exited"`
	Complaints   float64 `json:"complain"`
	Satisfaction float64 `json:"satisfaction_score"`
	CardType     string  `json:"card_type"`
	Points       float64 `json:"points_earned"`
}

// Numeric column names. RowNumber and CustomerId are identifiers, not
// features, and are deliberately absent.
const (
	ColCreditScore  = "credit_score"
	ColAge          = "age"
	ColTenure       = "tenure"
	ColBalance      = "balance"
	ColNumProducts  = "num_products"
	ColHasCrCard    = "has_cr_card"
	ColIsActive     = "is_active"
	ColSalary       = "estimated_salary"
	ColComplaints   = "complain"
	ColSatisfaction = "satisfaction_score"
	ColPoints       = "points_earned"
	ColExited       = "exited"
)

// NumericColumns lists the analyzable numeric columns in a fixed order.
func NumericColumns() []string {
	return []string{
		ColCreditScore,
		ColAge,
		ColTenure,
		ColBalance,
		ColNumProducts,
		ColHasCrCard,
		ColIsActive,
		ColSalary,
		ColComplaints,
		ColSatisfaction,
		ColPoints,
	}
}

// NumericValue returns the customer's value for a numeric column. Boolean
// flags map to 0/1. The second return is false for an unknown column, or for
// the exited column when the outcome is unknown.
func NumericValue(c Customer, column string) (float64, bool) {
	switch column {
	case ColCreditScore:
		return c.CreditScore, true
	case ColAge:
		return float64(c.Age), true
	case ColTenure:
		return float64(c.Tenure), true
	case ColBalance:
		return c.Balance, true
	case ColNumProducts:
		return float64(c.NumProducts), true
	case ColHasCrCard:
		return boolToFloat(c.HasCrCard), true
	case ColIsActive:
		return boolToFloat(c.IsActive), true
	case ColSalary:
		return c.Salary, true
	case ColComplaints:
		return c.Complaints, true
	case ColSatisfaction:
		return c.Satisfaction, true
	case ColPoints:
		return c.Points, true
	case ColExited:
		if c.Exited == nil {
			return 0, false
		}
		return float64(*c.Exited), true
	default:
		return 0, false
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
