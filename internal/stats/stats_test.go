package stats

import (
	"math"
	"testing"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

func labeled(exited int) *int {
	return &exited
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// --------------------------------------------------
// KPIs
// --------------------------------------------------

func TestComputeKPIs(t *testing.T) {
	customers := []dataset.Customer{
		{CreditScore: 600, Balance: 100, Salary: 1000, Tenure: 2, Exited: labeled(1)},
		{CreditScore: 700, Balance: 300, Salary: 3000, Tenure: 4, Exited: labeled(0)},
		{CreditScore: 800, Balance: 200, Salary: 2000, Tenure: 6, Exited: nil},
	}

	kpis := ComputeKPIs(customers)

	if kpis.TotalCustomers != 3 {
		t.Errorf("expected 3 customers, got %d", kpis.TotalCustomers)
	}
	// churn over the 2 labeled customers only
	if !approx(kpis.ChurnRate, 0.5) {
		t.Errorf("expected churn rate 0.5, got %f", kpis.ChurnRate)
	}
	if !approx(kpis.AvgCreditScore, 700) {
		t.Errorf("expected avg credit score 700, got %f", kpis.AvgCreditScore)
	}
	if !approx(kpis.AvgTenure, 4) {
		t.Errorf("expected avg tenure 4, got %f", kpis.AvgTenure)
	}
}

func TestComputeKPIs_Empty(t *testing.T) {
	kpis := ComputeKPIs(nil)
	if kpis.TotalCustomers != 0 || kpis.ChurnRate != 0 || kpis.AvgBalance != 0 {
		t.Errorf("expected zero KPIs for an empty set, got %+v", kpis)
	}
}

func TestChurnRate_AllUnknown(t *testing.T) {
	customers := []dataset.Customer{{Exited: nil}, {Exited: nil}}

	rate, count := ChurnRate(customers)
	if rate != 0 || count != 0 {
		t.Errorf("expected vacuous rate (0, 0), got (%f, %d)", rate, count)
	}
}

// --------------------------------------------------
// Churn breakdowns
// --------------------------------------------------

func TestChurnBy_Geography(t *testing.T) {
	customers := []dataset.Customer{
		{Geography: "Germany", Exited: labeled(1)},
		{Geography: "Germany", Exited: labeled(1)},
		{Geography: "France", Exited: labeled(1)},
		{Geography: "France", Exited: labeled(0)},
		{Geography: "Spain", Exited: labeled(0)},
	}

	rates, err := ChurnBy(customers, ByGeography)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rates) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(rates))
	}
	// sorted by churn rate descending
	if rates[0].Category != "Germany" || !approx(rates[0].ChurnRate, 1.0) {
		t.Errorf("expected Germany at 1.0 first, got %+v", rates[0])
	}
	if rates[1].Category != "France" || !approx(rates[1].ChurnRate, 0.5) {
		t.Errorf("expected France at 0.5 second, got %+v", rates[1])
	}
	if rates[2].Category != "Spain" || !approx(rates[2].ChurnRate, 0) {
		t.Errorf("expected Spain at 0 last, got %+v", rates[2])
	}
}

func TestChurnBy_UnknownDimension(t *testing.T) {
	if _, err := ChurnBy(nil, "surname"); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestChurnByTenure_Bands(t *testing.T) {
	customers := []dataset.Customer{
		{Tenure: 0, Exited: labeled(1)},
		{Tenure: 2, Exited: labeled(1)},
		{Tenure: 3, Exited: labeled(0)},
		{Tenure: 5, Exited: labeled(0)},
		{Tenure: 8, Exited: labeled(1)},
	}

	buckets := ChurnByTenure(customers)
	if len(buckets) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(buckets))
	}

	if buckets[0].Label != "0-2" || buckets[0].Size != 2 || !approx(buckets[0].ChurnRate, 1.0) {
		t.Errorf("unexpected first bucket %+v", buckets[0])
	}
	if buckets[1].Label != "3-5" || buckets[1].Size != 2 || !approx(buckets[1].ChurnRate, 0) {
		t.Errorf("unexpected second bucket %+v", buckets[1])
	}
	if buckets[2].Label != "6-10" || buckets[2].Size != 1 || !approx(buckets[2].ChurnRate, 1.0) {
		t.Errorf("unexpected third bucket %+v", buckets[2])
	}
}

// --------------------------------------------------
// Describe
// --------------------------------------------------

func TestDescribe(t *testing.T) {
	customers := []dataset.Customer{
		{Age: 20}, {Age: 30}, {Age: 40}, {Age: 50}, {Age: 60},
	}

	s, err := Describe(customers, dataset.ColAge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Count != 5 {
		t.Errorf("expected count 5, got %d", s.Count)
	}
	if !approx(s.Mean, 40) {
		t.Errorf("expected mean 40, got %f", s.Mean)
	}
	if !approx(s.Min, 20) || !approx(s.Max, 60) {
		t.Errorf("expected min 20 / max 60, got %f / %f", s.Min, s.Max)
	}
	if !approx(s.Median, 40) {
		t.Errorf("expected median 40, got %f", s.Median)
	}
	if !approx(s.P25, 30) || !approx(s.P75, 50) {
		t.Errorf("expected quartiles 30 / 50, got %f / %f", s.P25, s.P75)
	}
	// sample std of 20..60 step 10
	if !approx(s.Std, math.Sqrt(250)) {
		t.Errorf("expected std %f, got %f", math.Sqrt(250), s.Std)
	}
}

func TestDescribe_UnknownColumn(t *testing.T) {
	if _, err := Describe(nil, "surname"); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestMedian_EvenCount(t *testing.T) {
	customers := []dataset.Customer{
		{Balance: 100}, {Balance: 200}, {Balance: 300}, {Balance: 400},
	}
	if m := Median(customers, dataset.ColBalance); !approx(m, 250) {
		t.Errorf("expected median 250, got %f", m)
	}
}

// --------------------------------------------------
// Correlation
// --------------------------------------------------

func TestCorrelate_PerfectCorrelation(t *testing.T) {
	var customers []dataset.Customer
	for i := 1; i <= 10; i++ {
		customers = append(customers, dataset.Customer{
			Age:     20 + i,
			Tenure:  i, // perfectly correlated with age
			Balance: float64(1000 - i*10),
			Exited:  labeled(i % 2),
		})
	}

	m := Correlate(customers)

	ageIdx := indexOf(t, m.Columns, dataset.ColAge)
	tenureIdx := indexOf(t, m.Columns, dataset.ColTenure)
	balanceIdx := indexOf(t, m.Columns, dataset.ColBalance)

	if !approx(m.Values[ageIdx][ageIdx], 1.0) {
		t.Errorf("expected self-correlation 1, got %f", m.Values[ageIdx][ageIdx])
	}
	if !approx(m.Values[ageIdx][tenureIdx], 1.0) {
		t.Errorf("expected correlation 1 for age/tenure, got %f", m.Values[ageIdx][tenureIdx])
	}
	if !approx(m.Values[ageIdx][balanceIdx], -1.0) {
		t.Errorf("expected correlation -1 for age/balance, got %f", m.Values[ageIdx][balanceIdx])
	}
	// symmetry
	if !approx(m.Values[tenureIdx][ageIdx], m.Values[ageIdx][tenureIdx]) {
		t.Errorf("matrix is not symmetric")
	}
}

func TestCorrelate_ConstantColumnIsZero(t *testing.T) {
	customers := []dataset.Customer{
		{Age: 30, Balance: 100, Exited: labeled(0)},
		{Age: 30, Balance: 200, Exited: labeled(1)},
	}

	m := Correlate(customers)
	ageIdx := indexOf(t, m.Columns, dataset.ColAge)
	balanceIdx := indexOf(t, m.Columns, dataset.ColBalance)

	if m.Values[ageIdx][balanceIdx] != 0 {
		t.Errorf("expected 0 for a constant column, got %f", m.Values[ageIdx][balanceIdx])
	}
}

func indexOf(t *testing.T, columns []string, name string) int {
	t.Helper()
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	t.Fatalf("column %s not in matrix", name)
	return -1
}

// --------------------------------------------------
// Histogram
// --------------------------------------------------

func TestComputeHistogram(t *testing.T) {
	var customers []dataset.Customer
	for i := 0; i < 100; i++ {
		c := dataset.Customer{CreditScore: float64(400 + i*2)}
		if i < 50 {
			c.Exited = labeled(0)
		} else {
			c.Exited = labeled(1)
		}
		customers = append(customers, c)
	}

	h, err := ComputeHistogram(customers, dataset.ColCreditScore, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(h.Bins) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(h.Bins))
	}

	var total int
	for _, bin := range h.Bins {
		total += bin.Retained + bin.Exited + bin.Unknown
	}
	if total != 100 {
		t.Errorf("expected all 100 customers binned, got %d", total)
	}

	// the maximum value must land in the last bin, not fall off the edge
	last := h.Bins[len(h.Bins)-1]
	if last.Exited == 0 {
		t.Errorf("expected the maximum-valued customers in the last bin")
	}
}

func TestComputeHistogram_ClampsBins(t *testing.T) {
	customers := []dataset.Customer{{Age: 20}, {Age: 80}}

	h, err := ComputeHistogram(customers, dataset.ColAge, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Bins) != MaxBins {
		t.Errorf("expected bins clamped to %d, got %d", MaxBins, len(h.Bins))
	}
}

func TestComputeHistogram_DegenerateRange(t *testing.T) {
	customers := []dataset.Customer{{Age: 30}, {Age: 30}, {Age: 30}}

	h, err := ComputeHistogram(customers, dataset.ColAge, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.Bins) != 1 {
		t.Fatalf("expected a single degenerate bin, got %d", len(h.Bins))
	}
	if h.Bins[0].Unknown != 3 {
		t.Errorf("expected 3 unknown-outcome customers in the bin, got %d", h.Bins[0].Unknown)
	}
}
