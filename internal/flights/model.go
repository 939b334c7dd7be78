package flights

import "time"

type Flight struct {
	ID           string    `json:"id"`
	FlightNumber string    `json:"flight_number"`
	FlightType   string    `json:"flight_type"`
	Quantity     int       `json:"quantity"`
	ArrivalTime  time.Time `json:"arrival_time"`
	Route        string    `json:"route"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateRequest struct {
	FlightNumber string    `json:"flight_number" binding:"required"`
	FlightType   string    `json:"flight_type" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required"`
	ArrivalTime  time.Time `json:"arrival_time" binding:"required"`
	Route        string    `json:"route" binding:"required"`
}

// UpdateRequest carries only the fields present in the request body;
// nil means "leave unchanged".
type UpdateRequest struct {
	FlightNumber *string    `json:"flight_number"`
	FlightType   *string    `json:"flight_type"`
	Quantity     *int       `json:"quantity"`
	ArrivalTime  *time.Time `json:"arrival_time"`
	Route        *string    `json:"route"`
}
