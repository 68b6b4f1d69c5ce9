package ports

import (
	"context"

	"github.com/inkwell/bookshop/internal/domain"
)

// CreateUserParams captures the persisted fields of a new account. Uniqueness
// of the email rides on the store's constraint, not a pre-check, so concurrent
// registrations cannot both slip through.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Initials     string
	Role         domain.Role
}

// UserRepository is the credential store. Create returns domain.ErrConflict
// when the email is already taken.
type UserRepository interface {
	Create(ctx context.Context, params CreateUserParams) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

// BookRepository owns book rows. DeleteByISBN exists because the public API
// deletes by ISBN rather than surrogate id.
type BookRepository interface {
	Create(ctx context.Context, book domain.Book) (domain.Book, error)
	GetByID(ctx context.Context, id int64) (domain.Book, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	Update(ctx context.Context, book domain.Book) error
	DeleteByISBN(ctx context.Context, isbn string) error
}

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	GetByID(ctx context.Context, id int64) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category domain.Category) error
	DeleteByID(ctx context.Context, id int64) error
}
