package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/BojkoIr/ChurnSight/internal/dataset"
	"github.com/BojkoIr/ChurnSight/internal/db"
)

// One-shot loader: reads a churn CSV and fills the bank_customers table.
func main() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	path := os.Getenv("DATASET_PATH")
	if path == "" {
		log.Fatal("❌ Missing env var: DATASET_PATH")
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal("❌ Open dataset failed: ", err)
	}
	defer f.Close()

	customers, err := dataset.ReadCSV(f)
	if err != nil {
		log.Fatal("❌ Parse dataset failed: ", err)
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	ctx := context.Background()
	inserted := 0

	for _, c := range customers {
		_, err := pgDB.Exec(ctx, `
			INSERT INTO bank_customers (
				row_number, customer_id, surname, credit_score, geography,
				gender, age, tenure, balance, num_products, has_cr_card,
				is_active, estimated_salary, exited, complain,
				satisfaction_score, card_type, points_earned
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			        $14, $15, $16, $17, $18)
			ON CONFLICT (customer_id) DO NOTHING
		`,
			c.RowNumber, c.ID, c.Surname, c.CreditScore, c.Geography,
			c.Gender, c.Age, c.Tenure, c.Balance, c.NumProducts, c.HasCrCard,
			c.IsActive, c.Salary, c.Exited, c.Complaints,
			c.Satisfaction, c.CardType, c.Points,
		)
		if err != nil {
			log.Fatalf("❌ Insert customer %d failed: %v", c.ID, err)
		}
		inserted++
	}

	log.Printf("[IMPORT] loaded %d customers from %s", inserted, path)
}
