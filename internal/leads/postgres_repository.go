package leads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// PostgresRepository stores leads in the relational database. The leads
// table carries UNIQUE (email), so Create is the final duplicate authority.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by a pgx pool.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row, mapping a unique violation to ErrDuplicateEmail.
func (r *PostgresRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	id := uuid.New()
	query := `
		INSERT INTO leads (id, first_name, last_name, email, phone, company, job_title,
		    country, investment_range, interests, how_heard, is_validated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	var createdAt time.Time
	err := r.db.QueryRow(ctx, query,
		id,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.JobTitle,
		lead.Country,
		lead.InvestmentRange,
		lead.Interests,
		lead.HowHeard,
		lead.IsValidated,
	).Scan(&createdAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("leads: insert failed: %w", err)
	}

	lead.ID = id.String()
	lead.CreatedAt = createdAt
	return lead.ID, nil
}

// EmailExists runs the advisory duplicate check.
func (r *PostgresRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leads WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("leads: email lookup failed: %w", err)
	}
	return exists, nil
}

// List returns all leads, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, company, job_title,
		       country, investment_range, interests, how_heard, is_validated, created_at
		FROM leads
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("leads: select failed: %w", err)
	}
	defer rows.Close()

	out := []*Lead{}
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&lead.Phone,
			&lead.Company,
			&lead.JobTitle,
			&lead.Country,
			&lead.InvestmentRange,
			&lead.Interests,
			&lead.HowHeard,
			&lead.IsValidated,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		out = append(out, &lead)
	}
	return out, rows.Err()
}

// Ping verifies database connectivity.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
