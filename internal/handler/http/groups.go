package http

import (
	"net/http"

	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/models"
)

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.services.GroupService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "error listing groups")
		return
	}
	utils.WriteJSON(w, groups, http.StatusOK)
}

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	var group models.Group
	if err := utils.ReadJSON(w, r, &group); err != nil {
		writeError(w, r, err, "invalid group")
		return
	}

	created, err := h.services.GroupService.Create(r.Context(), group)
	if err != nil {
		writeError(w, r, err, "error creating group")
		return
	}
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid group id")
		return
	}

	group, err := h.services.GroupService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error reading group")
		return
	}
	utils.WriteJSON(w, group, http.StatusOK)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid group id")
		return
	}

	if err = h.services.GroupService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, "error deleting group")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
