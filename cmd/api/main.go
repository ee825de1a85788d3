package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/BojkoIr/ChurnSight/internal/analytics"
	"github.com/BojkoIr/ChurnSight/internal/customers"
	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/db"
	"github.com/BojkoIr/ChurnSight/internal/export"
	"github.com/BojkoIr/ChurnSight/internal/ml"
	"github.com/BojkoIr/ChurnSight/internal/risk"
	"github.com/BojkoIr/ChurnSight/internal/router"
	"github.com/BojkoIr/ChurnSight/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	backend := os.Getenv("DATASET_BACKEND")
	if backend == "" {
		backend = "csv"
	}

	required := []string{"EXPORT_DIR"}
	switch backend {
	case "csv":
		required = append(required, "DATASET_PATH")
	case "postgres":
		required = append(required, "DATABASE_URL")
	default:
		log.Fatalf("❌ Unknown DATASET_BACKEND: %s (use csv or postgres)", backend)
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DATASET ─────────────────────────
	var repo dataset.Repository

	switch backend {
	case "csv":
		csvRepo, err := dataset.NewCSVRepository(os.Getenv("DATASET_PATH"))
		if err != nil {
			log.Fatal("❌ Dataset load failed: ", err)
		}
		repo = csvRepo
	case "postgres":
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()
		repo = dataset.NewPostgresRepository(pgDB)
	}

	snap, err := repo.Snapshot(context.Background())
	if err != nil {
		log.Fatal("❌ Dataset snapshot failed: ", err)
	}
	log.Printf("[DATASET] backend=%s customers=%d snapshot=%s", backend, snap.Size(), snap.Version)

	// ───────────────────────── STORAGE (OPTIONAL) ─────────────────────────
	var uploader export.Uploader
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("❌ R2 init failed: ", err)
		}
		uploader = r2Client
	}

	// ───────────────────────── SERVICES ─────────────────────────
	customerService := customers.NewService(repo)
	analyticsService := analytics.NewService(repo)
	riskService := risk.NewService(repo)
	mlService := ml.NewService(repo)
	exportService := export.NewService(repo, uploader, os.Getenv("EXPORT_DIR"))

	// ───────────────────────── HANDLERS + ROUTES ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Customers: customers.NewHandler(customerService),
		Analytics: analytics.NewHandler(analyticsService),
		Risk:      risk.NewHandler(riskService),
		ML:        ml.NewHandler(mlService),
		Export:    export.NewHandler(exportService),
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
