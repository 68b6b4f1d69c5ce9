package http

import (
	"net/http"

	"github.com/inkwell/bookshop/internal/application"
)

func (h *Handler) createCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req application.CreateCheckoutSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_checkout_session", err)
		return
	}

	res, err := h.service.CreateCheckoutSession(r.Context(), req, requestOrigin(r))
	if err != nil {
		writeMappedError(r.Context(), w, "create_checkout_session", err)
		return
	}
	writeSuccess(w, http.StatusOK, "", res)
}
