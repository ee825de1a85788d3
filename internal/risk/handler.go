package risk

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /customers/:id/risk
// --------------------------------------------------
func (h *Handler) EvaluateCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	assessment, err := h.service.EvaluateCustomer(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		case errors.Is(err, ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, assessment)
}

// --------------------------------------------------
// POST /risk/evaluate
// --------------------------------------------------
func (h *Handler) EvaluateProfile(c *gin.Context) {
	var req struct {
		CreditScore  float64 `json:"credit_score"`
		Geography    string  `json:"geography"`
		Gender       string  `json:"gender"`
		Age          int     `json:"age"`
		Tenure       int     `json:"tenure"`
		Balance      float64 `json:"balance"`
		NumProducts  int     `json:"num_products"`
		HasCrCard    bool    `json:"has_cr_card"`
		IsActive     *bool   `json:"is_active"`
		Salary       float64 `json:"estimated_salary"`
		Complaints   float64 `json:"complain"`
		Satisfaction float64 `json:"satisfaction_score"`
		CardType     string  `json:"card_type"`
		Points       float64 `json:"points_earned"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
		return
	}

	assessment, err := h.service.EvaluateProfile(c.Request.Context(), dataset.Customer{
		CreditScore:  req.CreditScore,
		Geography:    req.Geography,
		Gender:       req.Gender,
		Age:          req.Age,
		Tenure:       req.Tenure,
		Balance:      req.Balance,
		NumProducts:  req.NumProducts,
		HasCrCard:    req.HasCrCard,
		IsActive:     *req.IsActive,
		Salary:       req.Salary,
		Complaints:   req.Complaints,
		Satisfaction: req.Satisfaction,
		CardType:     req.CardType,
		Points:       req.Points,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		return
	}

	c.JSON(http.StatusOK, assessment)
}
