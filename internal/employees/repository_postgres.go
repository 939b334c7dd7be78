package employees

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
// Create a new employee
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, e *Employee) error {
	query := `
		INSERT INTO employees (id, name, role, site)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	return r.db.QueryRow(ctx, query, e.ID, e.Name, e.Role, e.Site).
		Scan(&e.CreatedAt)
}

// --------------------------------------------------
// List all employees
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Employee, error) {
	query := `
		SELECT id, name, role, site, created_at
		FROM employees
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []Employee{}

	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Site, &e.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// --------------------------------------------------
// Get a single employee
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Employee, error) {
	query := `
		SELECT id, name, role, site, created_at
		FROM employees
		WHERE id = $1
	`

	var e Employee
	err := r.db.QueryRow(ctx, query, id).
		Scan(&e.ID, &e.Name, &e.Role, &e.Site, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// --------------------------------------------------
// Update an employee
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, e *Employee) error {
	query := `
		UPDATE employees
		SET name = $2, role = $3, site = $4
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, e.ID, e.Name, e.Role, e.Site)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// --------------------------------------------------
// Delete an employee
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
