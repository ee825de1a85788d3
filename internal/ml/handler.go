package ml

import (
	"errors"
	"net/http"

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
// POST /model/train
// --------------------------------------------------
func (h *Handler) Train(c *gin.Context) {
	var req struct {
		ModelType string `json:"model_type"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ModelType == "" {
		req.ModelType = ModelTypeLogReg
	}

	metrics, err := h.service.Train(c.Request.Context(), req.ModelType)
	if err != nil {
		if errors.Is(err, ErrNotEnoughData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// --------------------------------------------------
// GET /model/metrics
// --------------------------------------------------
func (h *Handler) Metrics(c *gin.Context) {
	metrics, version, err := h.service.LastMetrics()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no model trained yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics":          metrics,
		"snapshot_version": version,
	})
}

// --------------------------------------------------
// POST /model/predict
// --------------------------------------------------
func (h *Handler) Predict(c *gin.Context) {
	var req struct {
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
		Complaints   float64 `json:"complain"`
		Satisfaction float64 `json:"satisfaction_score"`
		CardType     string  `json:"card_type"`
		Points       float64 `json:"points_earned"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pred, proba, err := h.service.Predict(dataset.Customer{
		CreditScore:  req.CreditScore,
		Geography:    req.Geography,
		Gender:       req.Gender,
		Age:          req.Age,
		Tenure:       req.Tenure,
		Balance:      req.Balance,
		NumProducts:  req.NumProducts,
		HasCrCard:    req.HasCrCard,
		IsActive:     req.IsActive,
		Salary:       req.Salary,
		Complaints:   req.Complaints,
		Satisfaction: req.Satisfaction,
		CardType:     req.CardType,
		Points:       req.Points,
	})
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no model trained yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predicted_class":   pred,
		"churn_probability": proba,
	})
}
