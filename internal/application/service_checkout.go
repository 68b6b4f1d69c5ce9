package application

import (
	"context"
	"fmt"

	"github.com/inkwell/bookshop/internal/domain"
	"github.com/inkwell/bookshop/internal/ports"
)

// CreateCheckoutSession prices the cart and starts a hosted payment flow.
// Resolution is all-or-nothing: a single unknown book id fails the whole
// request and nothing reaches the provider. origin is the request's own
// scheme://host, used when no frontend base URL is configured and for
// absolutizing relative cover images.
func (s *Service) CreateCheckoutSession(ctx context.Context, req CreateCheckoutSessionRequest, origin string) (CreateCheckoutSessionResponse, error) {
	if len(req.Items) == 0 {
		return CreateCheckoutSessionResponse{}, fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}
	if !s.checkout.Configured() {
		return CreateCheckoutSessionResponse{}, fmt.Errorf("%w: payment provider secret key is not configured", domain.ErrConfiguration)
	}

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.BookID)
	}
	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return CreateCheckoutSessionResponse{}, err
	}
	byID := make(map[int64]domain.Book, len(books))
	for _, b := range books {
		byID[b.ID] = b
	}

	lineItems := make([]ports.CheckoutLineItem, 0, len(req.Items))
	for _, item := range req.Items {
		book, ok := byID[item.BookID]
		if !ok {
			return CreateCheckoutSessionResponse{}, fmt.Errorf("%w: one or more books were not found", domain.ErrInvalidInput)
		}
		lineItems = append(lineItems, ports.CheckoutLineItem{
			Name:        book.Title,
			Description: book.Author,
			ImageURL:    absoluteImageURL(book.Image, origin),
			UnitAmount:  domain.MinorUnits(book.Price),
			Quantity:    domain.ClampQuantity(item.Quantity),
		})
	}

	baseURL := s.cfg.FrontendBaseURL
	if baseURL == "" {
		baseURL = origin
	}

	url, err := s.checkout.CreateSession(ctx, ports.CheckoutSessionParams{
		Currency:   s.cfg.Currency,
		SuccessURL: baseURL + "/checkout/success",
		CancelURL:  baseURL + "/cart",
		LineItems:  lineItems,
		Metadata: map[string]string{
			"fullName":     req.Address.FullName,
			"email":        req.Address.Email,
			"phone":        req.Address.Phone,
			"addressLine1": req.Address.AddressLine1,
			"addressLine2": req.Address.AddressLine2,
			"city":         req.Address.City,
			"state":        req.Address.State,
			"postalCode":   req.Address.PostalCode,
			"country":      req.Address.Country,
		},
	})
	if err != nil {
		svcLogger().ErrorContext(ctx, "checkout session creation failed",
			"operation", "create_checkout_session",
			"outcome", "failure",
			"line_items", len(lineItems),
			"error", err.Error(),
		)
		return CreateCheckoutSessionResponse{}, err
	}

	return CreateCheckoutSessionResponse{URL: url}, nil
}
