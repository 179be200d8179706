package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrInvalidSweetID = errors.New("invalid sweet id")
var ErrInvalidSweet = errors.New("invalid sweet")
var ErrInsufficientStock = errors.New("insufficient quantity available")

// Sweet is the core inventory aggregate. Quantity never drops below zero;
// every mutating operation enforces that, not just creation.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
