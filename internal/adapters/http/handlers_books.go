package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/inkwell/bookshop/internal/application"
	"github.com/inkwell/bookshop/internal/domain"
	"github.com/shopspring/decimal"
)

const maxUploadBytes = 10 << 20

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListBooks(r.Context(), requestOrigin(r))
	if err != nil {
		writeMappedError(r.Context(), w, "list_books", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", res)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeMappedError(r.Context(), w, "get_book", err)
		return
	}

	res, err := h.service.GetBook(r.Context(), id, requestOrigin(r))
	if err != nil {
		writeMappedError(r.Context(), w, "get_book", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", res)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	form, err := decodeBookForm(r)
	if err != nil {
		writeValidationError(r.Context(), w, "create_book", err)
		return
	}
	defer form.close()

	res, err := h.service.CreateBook(r.Context(), h.authContext(r), application.CreateBookRequest{
		Title:       form.title,
		ISBN:        form.isbn,
		Description: form.description,
		Author:      form.author,
		Category:    form.category,
		Price:       form.price,
		Image:       form.image,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "create_book", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Book created successfully!", res)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeMappedError(r.Context(), w, "update_book", err)
		return
	}

	form, err := decodeBookForm(r)
	if err != nil {
		writeValidationError(r.Context(), w, "update_book", err)
		return
	}
	defer form.close()

	err = h.service.UpdateBook(r.Context(), h.authContext(r), id, application.UpdateBookRequest{
		Title:       form.title,
		ISBN:        form.isbn,
		Description: form.description,
		Author:      form.author,
		Category:    form.category,
		Price:       form.price,
		Image:       form.image,
	})
	if err != nil {
		writeMappedError(r.Context(), w, "update_book", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	var req application.DeleteBookRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "delete_book", err)
		return
	}

	if err := h.service.DeleteBook(r.Context(), h.jsonAuthContext(r, req.Email), req); err != nil {
		writeMappedError(r.Context(), w, "delete_book", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// authContext gathers both credential shapes: the bearer token (verified in
// token mode) and the form-supplied email (honored only in legacy mode).
func (h *Handler) authContext(r *http.Request) application.AuthContext {
	return application.AuthContext{
		BearerToken: bearerTokenFromHeader(r.Header.Get("Authorization")),
		Email:       r.FormValue("email"),
	}
}

type bookForm struct {
	title       string
	isbn        string
	description string
	author      string
	category    string
	price       decimal.Decimal
	image       *application.ImageUpload
	file        interface{ Close() error }
}

func (f *bookForm) close() {
	if f.file != nil {
		_ = f.file.Close()
	}
}

func decodeBookForm(r *http.Request) (*bookForm, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("parse multipart form: %w", err)
	}

	price, err := decimal.NewFromString(r.FormValue("price"))
	if err != nil {
		return nil, fmt.Errorf("%w: price must be a decimal number", domain.ErrInvalidInput)
	}

	form := &bookForm{
		title:       r.FormValue("title"),
		isbn:        r.FormValue("isbn"),
		description: r.FormValue("description"),
		author:      r.FormValue("author"),
		category:    r.FormValue("category"),
		price:       price,
	}

	file, header, err := r.FormFile("imageFile")
	switch {
	case err == nil:
		if header.Size == 0 {
			_ = file.Close()
			return nil, fmt.Errorf("%w: image file is empty", domain.ErrInvalidInput)
		}
		form.image = &application.ImageUpload{Filename: header.Filename, Contents: file}
		form.file = file
	case errors.Is(err, http.ErrMissingFile):
		// absent file is legal here; the create path rejects it downstream
	default:
		return nil, fmt.Errorf("read image file: %w", err)
	}

	return form, nil
}
