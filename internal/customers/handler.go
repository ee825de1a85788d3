package customers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/filters"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// GET /customers
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	f, err := filters.FromQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customers, version, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"snapshot_version": version,
		"total":            len(customers),
		"customers":        customers,
	})
}

// --------------------------------------------------
// GET /customers/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// --------------------------------------------------
// POST /customers
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Surname      string  `json:"surname"`
		CreditScore  float64 `json:"credit_score"`
		Geography    string  `json:"geography"`
		Gender       string  `json:"gender"`
		Age          int     `json:"age"`
		Tenure       int     `json:"tenure"`
		Balance      float64 `json:"balance"`
		NumProducts  int     `json:"num_products"`
		HasCrCard    *bool   `json:"has_cr_card"`
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
	if req.HasCrCard == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "has_cr_card is required"})
		return
	}
	if req.IsActive == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
		return
	}

	customer, err := h.service.Save(c.Request.Context(), dataset.Customer{
		Surname:      req.Surname,
		CreditScore:  req.CreditScore,
		Geography:    req.Geography,
		Gender:       req.Gender,
		Age:          req.Age,
		Tenure:       req.Tenure,
		Balance:      req.Balance,
		NumProducts:  req.NumProducts,
		HasCrCard:    *req.HasCrCard,
		IsActive:     *req.IsActive,
		Salary:       req.Salary,
		Complaints:   req.Complaints,
		Satisfaction: req.Satisfaction,
		CardType:     req.CardType,
		Points:       req.Points,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, customer)
}
