package productivity

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// History aggregates verified drawer assemblies completed by the employee
// within the window.
func (r *PostgresRepository) History(
	ctx context.Context,
	employeeID string,
	daysBack int,
) (*History, error) {

	cutoff := time.Now().AddDate(0, 0, -daysBack)

	rows, err := r.db.Query(ctx, `
		SELECT total_time_seconds
		FROM drawers_assembled
		WHERE employee_id = $1
		  AND verified = TRUE
		  AND completed_at >= $2
		ORDER BY completed_at
	`, employeeID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var times []int
	for rows.Next() {
		var seconds *int
		if err := rows.Scan(&seconds); err != nil {
			return nil, err
		}
		if seconds != nil && *seconds > 0 {
			times = append(times, *seconds)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(times) == 0 {
		return nil, nil
	}

	return summarize(times, daysBack), nil
}

// summarize computes the aggregate metrics for a list of assembly times.
func summarize(times []int, daysBack int) *History {
	total := 0
	min := times[0]
	max := times[0]
	for _, t := range times {
		total += t
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}

	recent := times
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	return &History{
		CompletedDrawers:   len(times),
		TotalTimeSeconds:   total,
		AverageTimeSeconds: total / len(times),
		MinTimeSeconds:     min,
		MaxTimeSeconds:     max,
		PeriodDays:         daysBack,
		TimesList:          recent,
	}
}
