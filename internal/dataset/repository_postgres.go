package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository reads and appends customers in the bank_customers table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectColumns = `
	row_number, customer_id, surname, credit_score, geography, gender,
	age, tenure, balance, num_products, has_cr_card, is_active,
	estimated_salary, exited, complain, satisfaction_score, card_type,
	points_earned
`

func (r *PostgresRepository) Snapshot(ctx context.Context) (*Snapshot, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+selectColumns+`
		FROM bank_customers
		ORDER BY customer_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return NewSnapshot(customers), nil
}

// Append inserts with customer_id = max+1 inside a transaction so IDs stay
// monotonic under concurrent writers.
func (r *PostgresRepository) Append(ctx context.Context, c Customer) (Customer, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Customer{}, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(customer_id), 0) + 1, COUNT(*) + 1
		FROM bank_customers
	`).Scan(&c.ID, &c.RowNumber)
	if err != nil {
		return Customer{}, fmt.Errorf("next customer id: %w", err)
	}

	c.Exited = nil

	_, err = tx.Exec(ctx, `
		INSERT INTO bank_customers (`+selectColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        NULL, $14, $15, $16, $17)
	`,
		c.RowNumber, c.ID, c.Surname, c.CreditScore, c.Geography, c.Gender,
		c.Age, c.Tenure, c.Balance, c.NumProducts, c.HasCrCard, c.IsActive,
		c.Salary, c.Complaints, c.Satisfaction, c.CardType, c.Points,
	)
	if err != nil {
		return Customer{}, fmt.Errorf("insert customer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func scanCustomer(rows pgx.Rows) (Customer, error) {
	var c Customer
	err := rows.Scan(
		&c.RowNumber,
		&c.ID,
		&c.Surname,
		&c.CreditScore,
		&c.Geography,
		&c.Gender,
		&c.Age,
		&c.Tenure,
		&c.Balance,
		&c.NumProducts,
		&c.HasCrCard,
		&c.IsActive,
		&c.Salary,
		&c.Exited,
		&c.Complaints,
		&c.Satisfaction,
		&c.CardType,
		&c.Points,
	)
	if err != nil {
		return c, fmt.Errorf("scan customer: %w", err)
	}
	return c, nil
}
