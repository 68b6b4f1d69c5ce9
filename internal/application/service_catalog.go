package application

import (
	"context"
	"fmt"

	"github.com/inkwell/bookshop/internal/domain"
)

func (s *Service) ListBooks(ctx context.Context, origin string) ([]BookResponse, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b, origin))
	}
	return out, nil
}

func (s *Service) GetBook(ctx context.Context, id int64, origin string) (BookResponse, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return BookResponse{}, err
	}
	return toBookResponse(book, origin), nil
}

// CreateBook is admin-gated and requires an attached cover image; the image
// requirement applies to admins too.
func (s *Service) CreateBook(ctx context.Context, auth AuthContext, req CreateBookRequest) (BookResponse, error) {
	if _, err := s.requireAdmin(ctx, auth); err != nil {
		return BookResponse{}, err
	}
	if req.Image == nil {
		return BookResponse{}, fmt.Errorf("%w: image file is required", domain.ErrInvalidInput)
	}

	imagePath, err := s.images.SaveBookImage(req.Image.Filename, req.Image.Contents)
	if err != nil {
		return BookResponse{}, fmt.Errorf("save book image: %w", err)
	}

	book, err := s.books.Create(ctx, domain.Book{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Description: req.Description,
		Author:      req.Author,
		Category:    req.Category,
		Image:       imagePath,
		Price:       req.Price,
	})
	if err != nil {
		return BookResponse{}, err
	}
	return toBookResponse(book, ""), nil
}

// UpdateBook keeps the stored image when the request carries no new file.
func (s *Service) UpdateBook(ctx context.Context, auth AuthContext, id int64, req UpdateBookRequest) error {
	if _, err := s.requireAdmin(ctx, auth); err != nil {
		return err
	}

	existing, err := s.books.GetByID(ctx, id)
	if err != nil {
		return err
	}

	imagePath := existing.Image
	if req.Image != nil {
		imagePath, err = s.images.SaveBookImage(req.Image.Filename, req.Image.Contents)
		if err != nil {
			return fmt.Errorf("save book image: %w", err)
		}
	}

	return s.books.Update(ctx, domain.Book{
		ID:          id,
		Title:       req.Title,
		ISBN:        req.ISBN,
		Description: req.Description,
		Author:      req.Author,
		Category:    req.Category,
		Image:       imagePath,
		Price:       req.Price,
	})
}

// DeleteBook removes a book by its ISBN, the public delete key.
func (s *Service) DeleteBook(ctx context.Context, auth AuthContext, req DeleteBookRequest) error {
	if _, err := s.requireAdmin(ctx, auth); err != nil {
		return err
	}
	return s.books.DeleteByISBN(ctx, req.ISBN)
}

func (s *Service) ListCategories(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (CategoryResponse, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, err
	}
	return CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *Service) CreateCategory(ctx context.Context, auth AuthContext, req CreateCategoryRequest) (CategoryResponse, error) {
	if _, err := s.requireAdmin(ctx, auth); err != nil {
		return CategoryResponse{}, err
	}
	category, err := s.categories.Create(ctx, domain.Category{Name: req.Name})
	if err != nil {
		return CategoryResponse{}, err
	}
	return CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *Service) UpdateCategory(ctx context.Context, auth AuthContext, id int64, req UpdateCategoryRequest) error {
	if _, err := s.requireAdmin(ctx, auth); err != nil {
		return err
	}
	return s.categories.Update(ctx, domain.Category{ID: id, Name: req.Name})
}

func (s *Service) DeleteCategory(ctx context.Context, auth AuthContext, req DeleteCategoryRequest) error {
	if _, err := s.requireAdmin(ctx, auth); err != nil {
		return err
	}
	return s.categories.DeleteByID(ctx, req.ID)
}

func toBookResponse(book domain.Book, origin string) BookResponse {
	return BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		ISBN:        book.ISBN,
		Description: book.Description,
		Author:      book.Author,
		Category:    book.Category,
		Image:       absoluteImageURL(book.Image, origin),
		Price:       book.Price.InexactFloat64(),
	}
}
