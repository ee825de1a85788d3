package export

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BojkoIr/ChurnSight/internal/filters"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /exports?upload=true
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	f, err := filters.FromQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upload := c.Query("upload") == "true"

	result, err := h.service.Export(c.Request.Context(), f, upload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}
