package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-braintacle/internal/service"
	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/models"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.services.ClientService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing clients")
		return
	}
	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := utils.ReadJSON(w, r, &client); err != nil {
		writeError(w, r, err, "invalid client")
		return
	}
	if err := h.validator.Validate(r.Context(), client); err != nil {
		writeError(w, r, err, "invalid client")
		return
	}

	created, err := h.services.ClientService.Create(r.Context(), client)
	if err != nil {
		writeError(w, r, err, "error creating client")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	client, err := h.services.ClientService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error reading client")
		return
	}
	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	if err = h.services.ClientService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "error deleting client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getMemberships lists the groups of a client. The optional "type" query
// parameter filters by membership type.
func (h *Handler) getMemberships(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	filter, err := models.ParseMembershipType(r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidMembership, err), "invalid membership filter")
		return
	}

	memberships, err := h.services.GroupService.Memberships(r.Context(), id, filter)
	if err != nil {
		writeError(w, r, err, "error reading memberships")
		return
	}
	utils.WriteJSON(w, memberships, http.StatusOK)
}

func (h *Handler) setMemberships(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	var req models.SetMembershipsRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid memberships")
		return
	}
	if err = h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err, "invalid memberships")
		return
	}

	if err = h.services.GroupService.SetMemberships(r.Context(), id, req); err != nil {
		writeError(w, r, err, "error setting memberships")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
