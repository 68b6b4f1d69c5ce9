package http

import (
	"net/http"

	"github.com/inkwell/bookshop/internal/application"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_categories", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", res)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeMappedError(r.Context(), w, "get_category", err)
		return
	}

	res, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		writeMappedError(r.Context(), w, "get_category", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", res)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req application.CreateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_category", err)
		return
	}

	res, err := h.service.CreateCategory(r.Context(), h.jsonAuthContext(r, req.Email), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_category", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "Category created successfully!", res)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeMappedError(r.Context(), w, "update_category", err)
		return
	}

	var req application.UpdateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_category", err)
		return
	}

	if err := h.service.UpdateCategory(r.Context(), h.jsonAuthContext(r, req.Email), id, req); err != nil {
		writeMappedError(r.Context(), w, "update_category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	var req application.DeleteCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "delete_category", err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), h.jsonAuthContext(r, req.Email), req); err != nil {
		writeMappedError(r.Context(), w, "delete_category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) jsonAuthContext(r *http.Request, email string) application.AuthContext {
	return application.AuthContext{
		BearerToken: bearerTokenFromHeader(r.Header.Get("Authorization")),
		Email:       email,
	}
}
