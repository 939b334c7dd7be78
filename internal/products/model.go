package products

import "time"

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	Stock          int       `json:"stock"`
	ExpirationDays int       `json:"expiration_days"`
	UnitWeight     float64   `json:"unit_weight"`
	UnitVolume     float64   `json:"unit_volume"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateRequest struct {
	Name           string  `json:"name" binding:"required"`
	SKU            string  `json:"sku" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	Price          float64 `json:"price" binding:"required"`
	Stock          int     `json:"stock"`
	ExpirationDays int     `json:"expiration_days"`
	UnitWeight     float64 `json:"unit_weight"`
	UnitVolume     float64 `json:"unit_volume"`
	ImageURL       string  `json:"image_url"`
}

type UpdateRequest struct {
	Name           *string  `json:"name"`
	SKU            *string  `json:"sku"`
	Category       *string  `json:"category"`
	Price          *float64 `json:"price"`
	Stock          *int     `json:"stock"`
	ExpirationDays *int     `json:"expiration_days"`
	UnitWeight     *float64 `json:"unit_weight"`
	UnitVolume     *float64 `json:"unit_volume"`
	ImageURL       *string  `json:"image_url"`
}
