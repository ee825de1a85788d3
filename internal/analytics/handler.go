package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BojkoIr/ChurnSight/internal/filters"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func parseFilter(c *gin.Context) (filters.Filter, bool) {
	f, err := filters.FromQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return f, false
	}
	return f, true
}

// --------------------------------------------------
// GET /analytics/kpis
// --------------------------------------------------
func (h *Handler) KPIs(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	kpis, err := h.service.KPIs(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute kpis"})
		return
	}

	c.JSON(http.StatusOK, kpis)
}

// --------------------------------------------------
// GET /analytics/churn-by/:dimension
// --------------------------------------------------
func (h *Handler) ChurnBy(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	rates, err := h.service.ChurnBy(c.Request.Context(), f, c.Param("dimension"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dimension": c.Param("dimension"),
		"rates":     rates,
	})
}

// --------------------------------------------------
// GET /analytics/tenure-churn
// --------------------------------------------------
func (h *Handler) ChurnByTenure(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	buckets, err := h.service.ChurnByTenure(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute tenure churn"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}

// --------------------------------------------------
// GET /analytics/describe?column=
// --------------------------------------------------
func (h *Handler) Describe(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	column := c.Query("column")
	if column == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	summary, err := h.service.Describe(c.Request.Context(), f, column)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// --------------------------------------------------
// GET /analytics/correlation
// --------------------------------------------------
func (h *Handler) Correlation(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	matrix, err := h.service.Correlation(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute correlations"})
		return
	}

	c.JSON(http.StatusOK, matrix)
}

// --------------------------------------------------
// GET /analytics/histogram?column=&bins=
// --------------------------------------------------
func (h *Handler) Histogram(c *gin.Context) {
	f, ok := parseFilter(c)
	if !ok {
		return
	}

	column := c.Query("column")
	if column == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "column is required"})
		return
	}

	bins := 0
	if raw := c.Query("bins"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bins"})
			return
		}
		bins = v
	}

	hist, err := h.service.Histogram(c.Request.Context(), f, column, bins)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hist)
}
