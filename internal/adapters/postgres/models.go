package postgres

import (
	"time"

	"github.com/shopspring/decimal"
)

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Initials     string    `gorm:"column:initials"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type bookModel struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string          `gorm:"column:title"`
	ISBN        string          `gorm:"column:isbn"`
	Description string          `gorm:"column:description"`
	Author      string          `gorm:"column:author"`
	Category    string          `gorm:"column:category"`
	Image       string          `gorm:"column:image"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (bookModel) TableName() string { return "books" }

type categoryModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string { return "categories" }
