package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the customer table when missing. exited is nullable:
// NULL means the outcome is unknown.
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	customersSQL := `
		CREATE TABLE IF NOT EXISTS bank_customers (
			row_number INT NOT NULL,
			customer_id BIGINT PRIMARY KEY,
			surname VARCHAR(255) NOT NULL DEFAULT '',
			credit_score DOUBLE PRECISION NOT NULL,
			geography VARCHAR(100) NOT NULL,
			gender VARCHAR(20) NOT NULL,
			age INT NOT NULL,
			tenure INT NOT NULL,
			balance DOUBLE PRECISION NOT NULL,
			num_products INT NOT NULL,
			has_cr_card BOOLEAN NOT NULL,
			is_active BOOLEAN NOT NULL,
			estimated_salary DOUBLE PRECISION NOT NULL,
			exited INT NULL,
			complain DOUBLE PRECISION NOT NULL DEFAULT 0,
			satisfaction_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			card_type VARCHAR(50) NOT NULL DEFAULT '',
			points_earned DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, customersSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS idx_bank_customers_geography
		ON bank_customers (geography)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
