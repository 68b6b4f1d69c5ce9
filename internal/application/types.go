package application

import (
	"io"

	"github.com/shopspring/decimal"
)

// AuthContext carries whatever credential material the HTTP layer extracted
// from a mutating request. Which field is honored depends on Config.AuthMode.
type AuthContext struct {
	BearerToken string
	Email       string
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Initials string `json:"initials"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserAuthResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
	Role     string `json:"role"`
}

type UserProfileResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
	Role     string `json:"role"`
}

type BookResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ISBN        string  `json:"isbn"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}

// ImageUpload is the decoded multipart file. A nil *ImageUpload means the
// request carried no file.
type ImageUpload struct {
	Filename string
	Contents io.Reader
}

type CreateBookRequest struct {
	Title       string
	ISBN        string
	Description string
	Author      string
	Category    string
	Price       decimal.Decimal
	Image       *ImageUpload
}

type UpdateBookRequest struct {
	Title       string
	ISBN        string
	Description string
	Author      string
	Category    string
	Price       decimal.Decimal
	Image       *ImageUpload
}

type DeleteBookRequest struct {
	ISBN  string `json:"isbn"`
	Email string `json:"email"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type DeleteCategoryRequest struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type CheckoutItem struct {
	BookID   int64 `json:"bookId"`
	Quantity int64 `json:"quantity"`
}

type CheckoutAddress struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

type CreateCheckoutSessionRequest struct {
	Items   []CheckoutItem  `json:"items"`
	Address CheckoutAddress `json:"address"`
}

type CreateCheckoutSessionResponse struct {
	URL string `json:"url"`
}
