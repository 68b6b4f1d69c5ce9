package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/inkwell/bookshop/internal/domain"
	"github.com/shopspring/decimal"
)

func adminAuth(f *fixture, ctx context.Context, t *testing.T) AuthContext {
	t.Helper()
	if _, ok := f.users.byEmail["admin@example.com"]; !ok {
		f.registerUser(ctx, "admin@example.com", "pw", "Admin")
	}
	return AuthContext{BearerToken: f.loginToken(ctx, "admin@example.com", "pw")}
}

func sampleBookRequest(image *ImageUpload) CreateBookRequest {
	return CreateBookRequest{
		Title:       "The Go Programming Language",
		ISBN:        "978-0134190440",
		Description: "Reference",
		Author:      "Donovan & Kernighan",
		Category:    "Programming",
		Price:       decimal.RequireFromString("39.99"),
		Image:       image,
	}
}

func pngUpload() *ImageUpload {
	return &ImageUpload{Filename: "cover.png", Contents: strings.NewReader("png-bytes")}
}

func TestCreateBookRequiresToken(t *testing.T) {
	t.Parallel()

	f := newFixture()
	_, err := f.service.CreateBook(context.Background(), AuthContext{}, sampleBookRequest(pngUpload()))
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized without token, got %v", err)
	}
}

func TestCreateBookForbiddenForNonAdmin(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.registerUser(ctx, "shopper@example.com", "pw", "")
	auth := AuthContext{BearerToken: f.loginToken(ctx, "shopper@example.com", "pw")}

	_, err := f.service.CreateBook(ctx, auth, sampleBookRequest(pngUpload()))
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for non-admin, got %v", err)
	}
}

func TestCreateBookRequiresImageEvenForAdmin(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	auth := adminAuth(f, ctx, t)

	_, err := f.service.CreateBook(ctx, auth, sampleBookRequest(nil))
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input without image, got %v", err)
	}
}

func TestCreateAndGetBook(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	auth := adminAuth(f, ctx, t)

	created, err := f.service.CreateBook(ctx, auth, sampleBookRequest(pngUpload()))
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned book id")
	}

	got, err := f.service.GetBook(ctx, created.ID, "https://shop.example.com")
	if err != nil {
		t.Fatalf("get book failed: %v", err)
	}
	if got.Price != 39.99 {
		t.Fatalf("expected price 39.99, got %v", got.Price)
	}
	if got.Image != "https://shop.example.com/uploads/books/cover.png" {
		t.Fatalf("expected absolutized image url, got %q", got.Image)
	}
}

func TestGetBookMissing(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.GetBook(context.Background(), 99, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUpdateBookKeepsImageWhenOmitted(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	auth := adminAuth(f, ctx, t)

	created, err := f.service.CreateBook(ctx, auth, sampleBookRequest(pngUpload()))
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	err = f.service.UpdateBook(ctx, auth, created.ID, UpdateBookRequest{
		Title:    "Second Edition",
		ISBN:     created.ISBN,
		Author:   "Donovan & Kernighan",
		Category: "Programming",
		Price:    decimal.RequireFromString("44.99"),
	})
	if err != nil {
		t.Fatalf("update book failed: %v", err)
	}

	updated := f.books.byID[created.ID]
	if updated.Title != "Second Edition" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Image != "/uploads/books/cover.png" {
		t.Fatalf("expected original image kept, got %q", updated.Image)
	}
}

func TestUpdateBookMissing(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	auth := adminAuth(f, ctx, t)

	err := f.service.UpdateBook(ctx, auth, 404, UpdateBookRequest{Price: decimal.Zero})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDeleteBookByISBN(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	auth := adminAuth(f, ctx, t)

	created, err := f.service.CreateBook(ctx, auth, sampleBookRequest(pngUpload()))
	if err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	if err := f.service.DeleteBook(ctx, auth, DeleteBookRequest{ISBN: created.ISBN}); err != nil {
		t.Fatalf("delete book failed: %v", err)
	}
	if err := f.service.DeleteBook(ctx, auth, DeleteBookRequest{ISBN: created.ISBN}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}

func TestLegacyEmailModeGatesOnStoredRole(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.service.cfg.AuthMode = AuthModeLegacyEmail
	ctx := context.Background()
	f.registerUser(ctx, "admin@example.com", "pw", "Admin")
	f.registerUser(ctx, "shopper@example.com", "pw", "")

	if _, err := f.service.CreateBook(ctx, AuthContext{Email: "admin@example.com"}, sampleBookRequest(pngUpload())); err != nil {
		t.Fatalf("expected admin email to pass legacy gate, got %v", err)
	}
	if _, err := f.service.CreateBook(ctx, AuthContext{Email: "shopper@example.com"}, sampleBookRequest(pngUpload())); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for non-admin email, got %v", err)
	}
	if _, err := f.service.CreateBook(ctx, AuthContext{}, sampleBookRequest(pngUpload())); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for empty email, got %v", err)
	}
	if _, err := f.service.CreateBook(ctx, AuthContext{Email: "ghost@example.com"}, sampleBookRequest(pngUpload())); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for unknown email, got %v", err)
	}
}

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	auth := adminAuth(f, ctx, t)

	created, err := f.service.CreateCategory(ctx, auth, CreateCategoryRequest{Name: "Fiction"})
	if err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	if err := f.service.UpdateCategory(ctx, auth, created.ID, UpdateCategoryRequest{Name: "Literary Fiction"}); err != nil {
		t.Fatalf("update category failed: %v", err)
	}

	got, err := f.service.GetCategory(ctx, created.ID)
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	if got.Name != "Literary Fiction" {
		t.Fatalf("expected renamed category, got %q", got.Name)
	}

	if err := f.service.DeleteCategory(ctx, auth, DeleteCategoryRequest{ID: created.ID}); err != nil {
		t.Fatalf("delete category failed: %v", err)
	}
	if _, err := f.service.GetCategory(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestCategoryMutationsAdminGated(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.registerUser(ctx, "shopper@example.com", "pw", "")
	auth := AuthContext{BearerToken: f.loginToken(ctx, "shopper@example.com", "pw")}

	if _, err := f.service.CreateCategory(ctx, auth, CreateCategoryRequest{Name: "Fiction"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden create, got %v", err)
	}
	if err := f.service.UpdateCategory(ctx, auth, 1, UpdateCategoryRequest{Name: "X"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden update, got %v", err)
	}
	if err := f.service.DeleteCategory(ctx, auth, DeleteCategoryRequest{ID: 1}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden delete, got %v", err)
	}
}

func TestListBooksAbsolutizesRelativeImagesOnly(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	_, _ = f.books.Create(ctx, domain.Book{Title: "A", Image: "/uploads/books/a.png", Price: decimal.New(10, 0)})
	_, _ = f.books.Create(ctx, domain.Book{Title: "B", Image: "https://cdn.example.com/b.png", Price: decimal.New(10, 0)})

	books, err := f.service.ListBooks(ctx, "http://localhost:8080")
	if err != nil {
		t.Fatalf("list books failed: %v", err)
	}
	if books[0].Image != "http://localhost:8080/uploads/books/a.png" {
		t.Fatalf("expected absolutized relative image, got %q", books[0].Image)
	}
	if books[1].Image != "https://cdn.example.com/b.png" {
		t.Fatalf("expected absolute image untouched, got %q", books[1].Image)
	}
}
