package postgres

import (
	"errors"

	"github.com/inkwell/bookshop/internal/ports"
	"gorm.io/gorm"
)

type Repositories struct {
	Users      ports.UserRepository
	Books      ports.BookRepository
	Categories ports.CategoryRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:      &userRepository{db: db},
		Books:      &bookRepository{db: db},
		Categories: &categoryRepository{db: db},
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
