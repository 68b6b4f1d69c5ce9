package postgres

import (
	"context"
	"errors"

	"github.com/inkwell/bookshop/internal/domain"
	"gorm.io/gorm"
)

type bookRepository struct {
	db *gorm.DB
}

func (r *bookRepository) Create(ctx context.Context, book domain.Book) (domain.Book, error) {
	rec := toBookModel(book)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return domain.Book{}, err
	}
	return toDomainBook(rec), nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (domain.Book, error) {
	var rec bookModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Book{}, domain.ErrNotFound
		}
		return domain.Book{}, err
	}
	return toDomainBook(rec), nil
}

func (r *bookRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Book, error) {
	var recs []bookModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, err
	}
	books := make([]domain.Book, 0, len(recs))
	for _, rec := range recs {
		books = append(books, toDomainBook(rec))
	}
	return books, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	var recs []bookModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&recs).Error; err != nil {
		return nil, err
	}
	books := make([]domain.Book, 0, len(recs))
	for _, rec := range recs {
		books = append(books, toDomainBook(rec))
	}
	return books, nil
}

func (r *bookRepository) Update(ctx context.Context, book domain.Book) error {
	res := r.db.WithContext(ctx).
		Model(&bookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":       book.Title,
			"isbn":        book.ISBN,
			"description": book.Description,
			"author":      book.Author,
			"category":    book.Category,
			"image":       book.Image,
			"price":       book.Price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *bookRepository) DeleteByISBN(ctx context.Context, isbn string) error {
	res := r.db.WithContext(ctx).Where("isbn = ?", isbn).Delete(&bookModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toBookModel(book domain.Book) bookModel {
	return bookModel{
		ID:          book.ID,
		Title:       book.Title,
		ISBN:        book.ISBN,
		Description: book.Description,
		Author:      book.Author,
		Category:    book.Category,
		Image:       book.Image,
		Price:       book.Price,
	}
}

func toDomainBook(row bookModel) domain.Book {
	return domain.Book{
		ID:          row.ID,
		Title:       row.Title,
		ISBN:        row.ISBN,
		Description: row.Description,
		Author:      row.Author,
		Category:    row.Category,
		Image:       row.Image,
		Price:       row.Price,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
