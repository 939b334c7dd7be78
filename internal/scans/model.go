package scans

import "time"

// Scan statuses derived from the expiry date at scan time.
const (
	StatusValid   = "valid"
	StatusWarning = "warning"
	StatusExpired = "expired"
)

type Scan struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Barcode         string    `json:"barcode,omitempty"`
	ExpiryDate      *string   `json:"expiry_date"`
	LotNumber       *string   `json:"lot_number"`
	ScannedAt       time.Time `json:"scanned_at"`
	EmployeeID      string    `json:"employee_id,omitempty"`
	DrawerID        string    `json:"drawer_id,omitempty"`
	FlightID        string    `json:"flight_id,omitempty"`
	Status          string    `json:"status"`
	ConfidenceScore *float64  `json:"confidence_score"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateRequest struct {
	ProductID       string     `json:"product_id" form:"product_id" binding:"required"`
	Barcode         string     `json:"barcode" form:"barcode"`
	ExpiryDate      *string    `json:"expiry_date" form:"expiry_date"`
	LotNumber       *string    `json:"lot_number" form:"lot_number"`
	ScannedAt       *time.Time `json:"scanned_at" form:"scanned_at"`
	EmployeeID      string     `json:"employee_id" form:"employee_id"`
	DrawerID        string     `json:"drawer_id" form:"drawer_id"`
	FlightID        string     `json:"flight_id" form:"flight_id"`
	Status          string     `json:"status" form:"status"`
	ConfidenceScore *float64   `json:"confidence_score" form:"confidence_score"`
}

// Filter narrows List results; zero values mean no filtering.
type Filter struct {
	FlightID   string
	EmployeeID string
	Status     string
}
