package employees

import "time"

type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Site      string    `json:"site"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequest struct {
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
	Site string `json:"site" binding:"required"`
}

type UpdateRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
	Site *string `json:"site"`
}
