package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/models"
)

func (h *Handler) listOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.services.AccountService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing operators")
		return
	}
	utils.WriteJSON(w, operators, http.StatusOK)
}

func (h *Handler) createOperator(w http.ResponseWriter, r *http.Request) {
	var operator models.Operator
	if err := utils.ReadJSON(w, r, &operator); err != nil {
		writeError(w, r, err, "invalid operator")
		return
	}
	if err := h.validator.Validate(r.Context(), operator); err != nil {
		writeError(w, r, err, "invalid operator")
		return
	}

	created, err := h.services.AccountService.Create(r.Context(), operator)
	if err != nil {
		writeError(w, r, err, "error creating operator")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteOperator(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AccountService.Delete(r.Context(), chi.URLParam(r, "login")); err != nil {
		writeError(w, r, err, "error deleting operator")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
