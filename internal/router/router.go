package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/BojkoIr/ChurnSight/internal/analytics"
	"github.com/BojkoIr/ChurnSight/internal/customers"
	"github.com/BojkoIr/ChurnSight/internal/export"
	"github.com/BojkoIr/ChurnSight/internal/ml"
	"github.com/BojkoIr/ChurnSight/internal/risk"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Customers *customers.Handler
	Analytics *analytics.Handler
	Risk      *risk.Handler
	ML        *ml.Handler
	Export    *export.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── CUSTOMER ROUTES ─────────────────────────
	customerGroup := r.Group("/customers")
	{
		customerGroup.GET("", h.Customers.List)
		customerGroup.POST("", h.Customers.Create)
		customerGroup.GET("/:id", h.Customers.Get)
		customerGroup.GET("/:id/risk", h.Risk.EvaluateCustomer)
	}

	// ───────────────────────── ANALYTICS ROUTES ─────────────────────────
	analyticsGroup := r.Group("/analytics")
	{
		analyticsGroup.GET("/kpis", h.Analytics.KPIs)
		analyticsGroup.GET("/churn-by/:dimension", h.Analytics.ChurnBy)
		analyticsGroup.GET("/tenure-churn", h.Analytics.ChurnByTenure)
		analyticsGroup.GET("/describe", h.Analytics.Describe)
		analyticsGroup.GET("/correlation", h.Analytics.Correlation)
		analyticsGroup.GET("/histogram", h.Analytics.Histogram)
	}

	// ───────────────────────── RISK ROUTES ─────────────────────────
	r.POST("/risk/evaluate", h.Risk.EvaluateProfile)

	// ───────────────────────── MODEL ROUTES ─────────────────────────
	modelGroup := r.Group("/model")
	{
		modelGroup.POST("/train", h.ML.Train)
		modelGroup.GET("/metrics", h.ML.Metrics)
		modelGroup.POST("/predict", h.ML.Predict)
	}

	// ───────────────────────── EXPORT ROUTES ─────────────────────────
	r.POST("/exports", h.Export.Create)

	return r
}
