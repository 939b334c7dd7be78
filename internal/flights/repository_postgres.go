package flights

import (
	"context"
	"errors"

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
// Create a new flight
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, f *Flight) error {
	query := `
		INSERT INTO flights (
			id,
			flight_number,
			flight_type,
			quantity,
			arrival_time,
			route
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		f.ID,
		f.FlightNumber,
		f.FlightType,
		f.Quantity,
		f.ArrivalTime,
		f.Route,
	).Scan(&f.CreatedAt)
}

// --------------------------------------------------
// List all flights, newest first
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Flight, error) {
	query := `
		SELECT
			id,
			flight_number,
			flight_type,
			quantity,
			arrival_time,
			route,
			created_at
		FROM flights
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := []Flight{}

	for rows.Next() {
		var f Flight
		if err := rows.Scan(
			&f.ID,
			&f.FlightNumber,
			&f.FlightType,
			&f.Quantity,
			&f.ArrivalTime,
			&f.Route,
			&f.CreatedAt,
		); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}

	return flights, rows.Err()
}

// --------------------------------------------------
// Get a single flight
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Flight, error) {
	query := `
		SELECT
			id,
			flight_number,
			flight_type,
			quantity,
			arrival_time,
			route,
			created_at
		FROM flights
		WHERE id = $1
	`

	var f Flight
	err := r.db.QueryRow(ctx, query, id).Scan(
		&f.ID,
		&f.FlightNumber,
		&f.FlightType,
		&f.Quantity,
		&f.ArrivalTime,
		&f.Route,
		&f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// --------------------------------------------------
// Update a flight (full row)
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, f *Flight) error {
	query := `
		UPDATE flights
		SET
			flight_number = $2,
			flight_type = $3,
			quantity = $4,
			arrival_time = $5,
			route = $6
		WHERE id = $1
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		f.ID,
		f.FlightNumber,
		f.FlightType,
		f.Quantity,
		f.ArrivalTime,
		f.Route,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// --------------------------------------------------
// Delete a flight
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
