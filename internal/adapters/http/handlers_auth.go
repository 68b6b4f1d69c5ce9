package http

import (
	"net/http"

	"github.com/inkwell/bookshop/internal/application"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register", err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register", err)
		return
	}
	writeSuccess(w, http.StatusCreated, "User created successfully!", res)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "login", err)
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "login", err)
		return
	}
	writeSuccess(w, http.StatusOK, "Login successful!", res)
}

// logout is a stateless acknowledgement: tokens are never persisted
// server-side, so there is nothing to revoke.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, "Logged out.", nil)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	token := bearerTokenFromHeader(r.Header.Get("Authorization"))

	res, err := h.service.Profile(r.Context(), token)
	if err != nil {
		writeMappedError(r.Context(), w, "profile", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", res)
}
