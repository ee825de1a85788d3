package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BojkoIr/ChurnSight/internal/analytics"
	"github.com/BojkoIr/ChurnSight/internal/customers"
	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/export"
	"github.com/BojkoIr/ChurnSight/internal/ml"
	"github.com/BojkoIr/ChurnSight/internal/risk"
)

func labeled(exited int) *int {
	return &exited
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var pop []dataset.Customer
	for i := 0; i < 60; i++ {
		c := dataset.Customer{
			ID:          int64(i + 1),
			Geography:   "France",
			Gender:      "Female",
			Age:         30 + i%20,
			Tenure:      i % 10,
			NumProducts: 2,
			IsActive:    true,
			CreditScore: float64(500 + i),
			Exited:      labeled(i % 2),
		}
		pop = append(pop, c)
	}
	repo := dataset.NewMemoryRepository(pop)

	return NewRouter(Handlers{
		Customers: customers.NewHandler(customers.NewService(repo)),
		Analytics: analytics.NewHandler(analytics.NewService(repo)),
		Risk:      risk.NewHandler(risk.NewService(repo)),
		ML:        ml.NewHandler(ml.NewService(repo)),
		Export:    export.NewHandler(export.NewService(repo, nil, t.TempDir())),
	})
}

func TestHealthCheck(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestListCustomers(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/customers?geography=France", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Total != 60 {
		t.Errorf("expected 60 customers, got %d", body.Total)
	}
}

func TestCustomerRisk(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/customers/1/risk", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		CohortLabel string   `json:"cohort_label"`
		CohortSize  int      `json:"cohort_size"`
		Tier        string   `json:"tier"`
		Factors     []string `json:"factors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.CohortLabel == "" || body.Tier == "" || len(body.Factors) == 0 {
		t.Errorf("incomplete assessment: %s", w.Body.String())
	}
	if body.CohortSize < 1 {
		t.Errorf("expected a non-empty cohort, got %d", body.CohortSize)
	}
}

func TestEvaluateProfile_MissingIsActive(t *testing.T) {
	r := testRouter(t)

	payload := `{"geography": "France", "num_products": 2}`
	req := httptest.NewRequest(http.MethodPost, "/risk/evaluate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "is_active") {
		t.Errorf("expected error to name is_active, got %s", w.Body.String())
	}
}

func TestAnalyticsKPIs(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/analytics/kpis?active=active", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		TotalCustomers int `json:"total_customers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.TotalCustomers != 60 {
		t.Errorf("expected 60 active customers, got %d", body.TotalCustomers)
	}
}

func TestPredictWithoutModel(t *testing.T) {
	r := testRouter(t)

	payload := `{"geography": "France", "gender": "Female", "num_products": 2}`
	req := httptest.NewRequest(http.MethodPost, "/model/predict", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409 before training, got %d", w.Code)
	}
}

func TestCreateCustomer(t *testing.T) {
	r := testRouter(t)

	payload := `{
		"geography": "Spain",
		"gender": "Male",
		"age": 41,
		"num_products": 1,
		"has_cr_card": true,
		"is_active": false,
		"credit_score": 640
	}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		ID     int64 `json:"customer_id"`
		Exited *int  `json:"exited"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.ID != 61 {
		t.Errorf("expected assigned ID 61, got %d", body.ID)
	}
	if body.Exited != nil {
		t.Errorf("expected unknown outcome, got %v", *body.Exited)
	}
}
