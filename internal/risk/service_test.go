package risk

import (
	"context"
	"errors"
	"testing"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

func TestService_EvaluateCustomer(t *testing.T) {
	var pop []dataset.Customer
	for i := 0; i < 50; i++ {
		c := member("France", true, 2, i%2)
		c.ID = int64(i + 1)
		pop = append(pop, c)
	}

	service := NewService(dataset.NewMemoryRepository(pop))

	a, err := service.EvaluateCustomer(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.CohortLabel != CohortRegionActivityProducts {
		t.Errorf("expected label %q, got %q", CohortRegionActivityProducts, a.CohortLabel)
	}
	if a.CohortChurnRate != 0.5 {
		t.Errorf("expected churn rate 0.5, got %f", a.CohortChurnRate)
	}
}

func TestService_EvaluateCustomer_NotFound(t *testing.T) {
	pop := repeat(10, member("France", true, 2, 0))
	service := NewService(dataset.NewMemoryRepository(pop))

	_, err := service.EvaluateCustomer(context.Background(), 999)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestService_EvaluateProfile(t *testing.T) {
	pop := repeat(60, member("Germany", false, 1, 1))
	service := NewService(dataset.NewMemoryRepository(pop))

	a, err := service.EvaluateProfile(context.Background(), target("Germany", false, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Tier != TierHigh {
		t.Errorf("expected %q for an all-churned cohort, got %q", TierHigh, a.Tier)
	}
}
