package productivity

import "context"

// Repository provides an employee's assembly history. A nil History with a
// nil error means no data in the window, which is not an error.
type Repository interface {
	History(ctx context.Context, employeeID string, daysBack int) (*History, error)
}
