package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/inkwell/bookshop/internal/domain"
	"github.com/inkwell/bookshop/internal/ports"
)

// fixture wires the service onto in-memory port fakes. The clock is frozen
// and advanced explicitly so expiry behavior is deterministic.
type fixture struct {
	service    *Service
	users      *fakeUsers
	books      *fakeBooks
	categories *fakeCategories
	lockouts   *fakeLockouts
	signer     *fakeSigner
	checkout   *fakeCheckout
	images     *fakeImages
	now        time.Time
}

func newFixture() *fixture {
	f := &fixture{
		users:      &fakeUsers{byEmail: map[string]domain.User{}},
		books:      &fakeBooks{byID: map[int64]domain.Book{}},
		categories: &fakeCategories{byID: map[int64]domain.Category{}},
		lockouts:   &fakeLockouts{states: map[string]ports.LockoutState{}},
		checkout:   &fakeCheckout{configured: true, url: "https://pay.example.test/session/abc"},
		images:     &fakeImages{},
		now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.signer = &fakeSigner{configured: true, tokens: map[string]ports.AuthClaims{}, now: func() time.Time { return f.now }}

	f.service = NewService(Dependencies{
		Config: Config{
			DefaultRole:          domain.RoleUser,
			AuthMode:             AuthModeToken,
			TokenTTL:             24 * time.Hour,
			FailedLoginThreshold: 3,
			LockoutDuration:      15 * time.Minute,
			Currency:             "usd",
		},
		Users:      f.users,
		Books:      f.books,
		Categories: f.categories,
		Lockouts:   f.lockouts,
		Hasher:     fakeHasher{},
		Tokens:     f.signer,
		Checkout:   f.checkout,
		Images:     f.images,
	})
	f.service.nowFn = func() time.Time { return f.now }
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) registerUser(ctx context.Context, email, password, role string) UserProfileResponse {
	res, err := f.service.Register(ctx, RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: password,
		Initials: "TU",
		Role:     role,
	})
	if err != nil {
		panic(fmt.Sprintf("fixture register %s: %v", email, err))
	}
	return res
}

func (f *fixture) loginToken(ctx context.Context, email, password string) string {
	res, err := f.service.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		panic(fmt.Sprintf("fixture login %s: %v", email, err))
	}
	return res.Token
}

type fakeUsers struct {
	byEmail map[string]domain.User
	nextID  int64
}

func (s *fakeUsers) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
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

func (s *fakeUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

type fakeBooks struct {
	byID   map[int64]domain.Book
	nextID int64
}

func (s *fakeBooks) Create(_ context.Context, book domain.Book) (domain.Book, error) {
	s.nextID++
	book.ID = s.nextID
	s.byID[book.ID] = book
	return book, nil
}

func (s *fakeBooks) GetByID(_ context.Context, id int64) (domain.Book, error) {
	book, ok := s.byID[id]
	if !ok {
		return domain.Book{}, domain.ErrNotFound
	}
	return book, nil
}

func (s *fakeBooks) GetByIDs(_ context.Context, ids []int64) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(ids))
	for _, id := range ids {
		if book, ok := s.byID[id]; ok {
			out = append(out, book)
		}
	}
	return out, nil
}

func (s *fakeBooks) List(_ context.Context) ([]domain.Book, error) {
	out := make([]domain.Book, 0, len(s.byID))
	for _, book := range s.byID {
		out = append(out, book)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeBooks) Update(_ context.Context, book domain.Book) error {
	if _, ok := s.byID[book.ID]; !ok {
		return domain.ErrNotFound
	}
	s.byID[book.ID] = book
	return nil
}

func (s *fakeBooks) DeleteByISBN(_ context.Context, isbn string) error {
	for id, book := range s.byID {
		if book.ISBN == isbn {
			delete(s.byID, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeCategories struct {
	byID   map[int64]domain.Category
	nextID int64
}

func (s *fakeCategories) Create(_ context.Context, category domain.Category) (domain.Category, error) {
	s.nextID++
	category.ID = s.nextID
	s.byID[category.ID] = category
	return category, nil
}

func (s *fakeCategories) GetByID(_ context.Context, id int64) (domain.Category, error) {
	category, ok := s.byID[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return category, nil
}

func (s *fakeCategories) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(s.byID))
	for _, category := range s.byID {
		out = append(out, category)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeCategories) Update(_ context.Context, category domain.Category) error {
	if _, ok := s.byID[category.ID]; !ok {
		return domain.ErrNotFound
	}
	s.byID[category.ID] = category
	return nil
}

func (s *fakeCategories) DeleteByID(_ context.Context, id int64) error {
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type fakeLockouts struct {
	states map[string]ports.LockoutState
}

func (s *fakeLockouts) Get(_ context.Context, key string) (ports.LockoutState, error) {
	return s.states[key], nil
}

func (s *fakeLockouts) RecordFailure(_ context.Context, key string, now time.Time, threshold int, lockoutWindow time.Duration) (ports.LockoutState, error) {
	state := s.states[key]
	state.FailedCount++
	if state.FailedCount >= threshold {
		lockedUntil := now.Add(lockoutWindow)
		state.LockedUntil = &lockedUntil
	}
	s.states[key] = state
	return state, nil
}

func (s *fakeLockouts) Clear(_ context.Context, key string) error {
	delete(s.states, key)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeSigner struct {
	configured bool
	tokens     map[string]ports.AuthClaims
	now        func() time.Time
}

func (s *fakeSigner) Sign(claims ports.AuthClaims) (string, error) {
	if !s.configured {
		return "", fmt.Errorf("%w: jwt signing secret is not configured", domain.ErrConfiguration)
	}
	token := fmt.Sprintf("token-%d", len(s.tokens)+1)
	s.tokens[token] = claims
	return token, nil
}

func (s *fakeSigner) ParseAndValidate(token string) (ports.AuthClaims, error) {
	claims, ok := s.tokens[token]
	if !ok {
		return ports.AuthClaims{}, errors.New("token is malformed")
	}
	if s.now().After(claims.ExpiresAt) {
		return ports.AuthClaims{}, errors.New("token is expired")
	}
	return claims, nil
}

type fakeCheckout struct {
	configured bool
	url        string
	err        error
	calls      int
	lastParams ports.CheckoutSessionParams
}

func (c *fakeCheckout) Configured() bool { return c.configured }

func (c *fakeCheckout) CreateSession(_ context.Context, params ports.CheckoutSessionParams) (string, error) {
	c.calls++
	c.lastParams = params
	if c.err != nil {
		return "", c.err
	}
	return c.url, nil
}

type fakeImages struct {
	saved []string
}

func (s *fakeImages) SaveBookImage(originalName string, contents io.Reader) (string, error) {
	_, _ = io.ReadAll(contents)
	path := "/uploads/books/" + originalName
	s.saved = append(s.saved, path)
	return path, nil
}
