package products

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
// Create a new product
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	query := `
		INSERT INTO products (
			id,
			name,
			sku,
			category,
			price,
			stock,
			expiration_days,
			unit_weight,
			unit_volume,
			image_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		p.ID,
		p.Name,
		p.SKU,
		p.Category,
		p.Price,
		p.Stock,
		p.ExpirationDays,
		p.UnitWeight,
		p.UnitVolume,
		p.ImageURL,
	).Scan(&p.CreatedAt)
}

// --------------------------------------------------
// List all products
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	query := `
		SELECT
			id,
			name,
			sku,
			category,
			price,
			stock,
			expiration_days,
			unit_weight,
			unit_volume,
			image_url,
			created_at
		FROM products
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}

	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.SKU,
			&p.Category,
			&p.Price,
			&p.Stock,
			&p.ExpirationDays,
			&p.UnitWeight,
			&p.UnitVolume,
			&p.ImageURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// --------------------------------------------------
// Get a single product
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	query := `
		SELECT
			id,
			name,
			sku,
			category,
			price,
			stock,
			expiration_days,
			unit_weight,
			unit_volume,
			image_url,
			created_at
		FROM products
		WHERE id = $1
	`

	var p Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.Category,
		&p.Price,
		&p.Stock,
		&p.ExpirationDays,
		&p.UnitWeight,
		&p.UnitVolume,
		&p.ImageURL,
		&p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// --------------------------------------------------
// Update a product
// --------------------------------------------------
func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	query := `
		UPDATE products
		SET
			name = $2,
			sku = $3,
			category = $4,
			price = $5,
			stock = $6,
			expiration_days = $7,
			unit_weight = $8,
			unit_volume = $9,
			image_url = $10
		WHERE id = $1
	`

	tag, err := r.db.Exec(
		ctx,
		query,
		p.ID,
		p.Name,
		p.SKU,
		p.Category,
		p.Price,
		p.Stock,
		p.ExpirationDays,
		p.UnitWeight,
		p.UnitVolume,
		p.ImageURL,
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
// Delete a product
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}
