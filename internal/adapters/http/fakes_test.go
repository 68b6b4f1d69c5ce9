package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/inkwell/bookshop/internal/domain"
	"github.com/inkwell/bookshop/internal/ports"
	"github.com/shopspring/decimal"
)

func decimalFromString(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return d
}

type memUsers struct {
	byEmail map[string]domain.User
	nextID  int64
}

func (s *memUsers) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
	if _, ok := s.byEmail[params.Email]; ok {
		return domain.User{}, domain.ErrConflict
	}
	s.nextID++
	user := domain.User{
		ID:           s.nextID,
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		Initials:     params.Initials,
		Role:         params.Role,
	}
	s.byEmail[params.Email] = user
	return user, nil
}

func (s *memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

type memBooks struct {
	byID   map[int64]domain.Book
	nextID int64
}

func (s *memBooks) Create(_ context.Context, book domain.Book) (domain.Book, error) {
	s.nextID++
	book.ID = s.nextID
	s.byID[book.ID] = book
	return book, nil
}

func (s *memBooks) GetByID(_ context.Context, id int64) (domain.Book, error) {
	book, ok := s.byID[id]
	if !ok {
		return domain.Book{}, domain.ErrNotFound
	}
	return book, nil
}

func (s *memBooks) GetByIDs(_ context.Context, ids []int64) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(ids))
	for _, id := range ids {
		if book, ok := s.byID[id]; ok {
			out = append(out, book)
		}
	}
	return out, nil
}

func (s *memBooks) List(_ context.Context) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(s.byID))
	for _, book := range s.byID {
		out = append(out, book)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memBooks) Update(_ context.Context, book domain.Book) error {
	if _, ok := s.byID[book.ID]; !ok {
		return domain.ErrNotFound
	}
	s.byID[book.ID] = book
	return nil
}

func (s *memBooks) DeleteByISBN(_ context.Context, isbn string) error {
	for id, book := range s.byID {
		if book.ISBN == isbn {
			delete(s.byID, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

type memCategories struct {
	byID   map[int64]domain.Category
	nextID int64
}

func (s *memCategories) Create(_ context.Context, category domain.Category) (domain.Category, error) {
	s.nextID++
	category.ID = s.nextID
	s.byID[category.ID] = category
	return category, nil
}

func (s *memCategories) GetByID(_ context.Context, id int64) (domain.Category, error) {
	category, ok := s.byID[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return category, nil
}

func (s *memCategories) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(s.byID))
	for _, category := range s.byID {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memCategories) Update(_ context.Context, category domain.Category) error {
	if _, ok := s.byID[category.ID]; !ok {
		return domain.ErrNotFound
	}
	s.byID[category.ID] = category
	return nil
}

func (s *memCategories) DeleteByID(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type noopLockouts struct{}

func (noopLockouts) Get(context.Context, string) (ports.LockoutState, error) {
	return ports.LockoutState{}, nil
}

func (noopLockouts) RecordFailure(_ context.Context, _ string, _ time.Time, _ int, _ time.Duration) (ports.LockoutState, error) {
	return ports.LockoutState{}, nil
}

func (noopLockouts) Clear(context.Context, string) error { return nil }

type memHasher struct{}

func (memHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (memHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type memSigner struct {
	tokens map[string]ports.AuthClaims
}

func (s *memSigner) Sign(claims ports.AuthClaims) (string, error) {
	token := fmt.Sprintf("token-%d", len(s.tokens)+1)
	s.tokens[token] = claims
	return token, nil
}

func (s *memSigner) ParseAndValidate(token string) (ports.AuthClaims, error) {
	claims, ok := s.tokens[token]
	if !ok {
		return ports.AuthClaims{}, errors.New("token is malformed")
	}
	return claims, nil
}

type memCheckout struct {
	configured bool
	url        string
	err        error
	lastParams ports.CheckoutSessionParams
}

func (c *memCheckout) Configured() bool { return c.configured }

func (c *memCheckout) CreateSession(_ context.Context, params ports.CheckoutSessionParams) (string, error) {
	c.lastParams = params
	if c.err != nil {
		return "", c.err
	}
	return c.url, nil
}

type memImages struct{}

func (memImages) SaveBookImage(originalName string, contents io.Reader) (string, error) {
	_, _ = io.ReadAll(contents)
	return "/uploads/books/" + originalName, nil
}
