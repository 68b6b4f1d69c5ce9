package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is a catalog record. Category is a free-text label, not a foreign key,
// and Image is either a server-relative /uploads path or an absolute URL.
type Book struct {
	ID          int64
	Title       string
	ISBN        string
	Description string
	Author      string
	Category    string
	Image       string
	Price       decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Category is a bare id/name pair. No uniqueness is enforced on the name.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
