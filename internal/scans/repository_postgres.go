package scans

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Record a scan
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, s *Scan) error {
	query := `
		INSERT INTO scanned_products (
			id,
			product_id,
			barcode,
			expiry_date,
			lot_number,
			scanned_at,
			employee_id,
			drawer_id,
			flight_id,
			status,
			confidence_score,
			image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		s.ID,
		s.ProductID,
		s.Barcode,
		s.ExpiryDate,
		s.LotNumber,
		s.ScannedAt,
		s.EmployeeID,
		s.DrawerID,
		s.FlightID,
		s.Status,
		s.ConfidenceScore,
		s.ImageURL,
	).Scan(&s.CreatedAt)
}

// --------------------------------------------------
// List scans, optionally filtered
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]Scan, error) {
	query := `
		SELECT
			id,
			product_id,
			barcode,
			expiry_date,
			lot_number,
			scanned_at,
			employee_id,
			drawer_id,
			flight_id,
			status,
			confidence_score,
			image_url,
			created_at
		FROM scanned_products
		WHERE 1=1
	`

	args := []any{}
	if f.FlightID != "" {
		args = append(args, f.FlightID)
		query += fmt.Sprintf(" AND flight_id = $%d", len(args))
	}
	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY scanned_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scans := []Scan{}

	for rows.Next() {
		var s Scan
		if err := rows.Scan(
			&s.ID,
			&s.ProductID,
			&s.Barcode,
			&s.ExpiryDate,
			&s.LotNumber,
			&s.ScannedAt,
			&s.EmployeeID,
			&s.DrawerID,
			&s.FlightID,
			&s.Status,
			&s.ConfidenceScore,
			&s.ImageURL,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}

	return scans, rows.Err()
}

// --------------------------------------------------
// Get a single scan
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Scan, error) {
	query := `
		SELECT
			id,
			product_id,
			barcode,
			expiry_date,
			lot_number,
			scanned_at,
			employee_id,
			drawer_id,
			flight_id,
			status,
			confidence_score,
			image_url,
			created_at
		FROM scanned_products
		WHERE id = $1
	`

	var s Scan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.ProductID,
		&s.Barcode,
		&s.ExpiryDate,
		&s.LotNumber,
		&s.ScannedAt,
		&s.EmployeeID,
		&s.DrawerID,
		&s.FlightID,
		&s.Status,
		&s.ConfidenceScore,
		&s.ImageURL,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}
