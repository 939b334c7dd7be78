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

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to Supabase PostgreSQL")

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates the tables the API reads and writes.
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS flights (
			id UUID PRIMARY KEY,
			flight_number VARCHAR(20) NOT NULL,
			flight_type VARCHAR(50) NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 0,
			arrival_time TIMESTAMPTZ NOT NULL,
			route VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(100) NOT NULL,
			site VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			sku VARCHAR(100) UNIQUE NOT NULL,
			category VARCHAR(100) NOT NULL,
			price NUMERIC(10,2) NOT NULL DEFAULT 0,
			stock INTEGER NOT NULL DEFAULT 0,
			expiration_days INTEGER NOT NULL DEFAULT 0,
			unit_weight NUMERIC(10,3) NOT NULL DEFAULT 0,
			unit_volume NUMERIC(10,3) NOT NULL DEFAULT 0,
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS scanned_products (
			id UUID PRIMARY KEY,
			product_id VARCHAR(100) NOT NULL,
			barcode VARCHAR(100) NOT NULL DEFAULT '',
			expiry_date VARCHAR(10),
			lot_number VARCHAR(100),
			scanned_at TIMESTAMPTZ NOT NULL,
			employee_id VARCHAR(100) NOT NULL DEFAULT '',
			drawer_id VARCHAR(100) NOT NULL DEFAULT '',
			flight_id VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL,
			confidence_score NUMERIC(5,2),
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS drawers_assembled (
			id SERIAL PRIMARY KEY,
			employee_id VARCHAR(100) NOT NULL,
			flight_id VARCHAR(100),
			drawer_type VARCHAR(100),
			item_count INTEGER,
			total_time_seconds INTEGER,
			verified BOOLEAN NOT NULL DEFAULT FALSE,
			completed_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_scanned_products_flight
			ON scanned_products (flight_id)`,

		`CREATE INDEX IF NOT EXISTS idx_drawers_assembled_employee
			ON drawers_assembled (employee_id, completed_at)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
