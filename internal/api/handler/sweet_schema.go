package handler

import "time"

type createSweetRequest struct {
	Name     string   `json:"name"     validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Quantity *int64   `json:"quantity" validate:"omitempty,gte=0"`
}

type updateSweetRequest struct {
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"    validate:"omitempty,gte=0"`
	Quantity *int64   `json:"quantity" validate:"omitempty,gte=0"`
}

// quantityRequest is the body for purchase and restock.
type quantityRequest struct {
	Quantity *int64 `json:"quantity" validate:"required,gt=0"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from the domain types so the JSON contract is not coupled to
// internal changes.

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type sweetDataResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Data    sweetResponse `json:"data"`
}

type listSweetsResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    []sweetResponse `json:"data"`
}
