package ports

import "context"

// CheckoutLineItem is one priced entry sent to the payment provider.
// UnitAmount is in the currency's minor units.
type CheckoutLineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64
	Quantity    int64
}

// CheckoutSessionParams is the provider-neutral session request. Metadata is a
// lossy string map carrying the shipping address.
type CheckoutSessionParams struct {
	Currency   string
	SuccessURL string
	CancelURL  string
	LineItems  []CheckoutLineItem
	Metadata   map[string]string
}

// CheckoutProvider starts a hosted payment flow and returns the redirect URL.
// Configured lets the application reject checkout before touching the catalog
// when the provider credential is absent.
type CheckoutProvider interface {
	Configured() bool
	CreateSession(ctx context.Context, params CheckoutSessionParams) (string, error)
}
