package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-braintacle/internal/utils"
	"github.com/MKhiriev/go-braintacle/models"
)

func (h *Handler) listOptions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.ConfigService.Catalog(r.Context()), http.StatusOK)
}

func (h *Handler) listGlobals(w http.ResponseWriter, r *http.Request) {
	values, err := h.services.ConfigService.Globals(r.Context())
	if err != nil {
		writeError(w, r, err, "error reading global configuration")
		return
	}
	utils.WriteJSON(w, values, http.StatusOK)
}

func (h *Handler) getGlobal(w http.ResponseWriter, r *http.Request) {
	option := chi.URLParam(r, "option")

	value, err := h.services.ConfigService.GlobalValue(r.Context(), option)
	if err != nil {
		writeError(w, r, err, "error reading global value")
		return
	}
	utils.WriteJSON(w, models.OptionValue{Option: option, Value: value}, http.StatusOK)
}

func (h *Handler) setGlobal(w http.ResponseWriter, r *http.Request) {
	var req models.SetValueRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid global value")
		return
	}

	if err := h.services.ConfigService.SetGlobal(r.Context(), req); err != nil {
		writeError(w, r, err, "error setting global value")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getClientConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	sections, err := h.services.ConfigService.AllConfig(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error reading client configuration")
		return
	}
	utils.WriteJSON(w, sections, http.StatusOK)
}

func (h *Handler) viewClientConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	views, err := h.services.ConfigService.ClientConfig(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error reading client configuration")
		return
	}
	utils.WriteJSON(w, views, http.StatusOK)
}

// getClientOption shows override, default and effective value of one option.
func (h *Handler) getClientOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	option := chi.URLParam(r, "option")

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	view := models.ClientConfigView{Option: option}
	if view.Override, err = h.services.ConfigService.Override(ctx, id, option); err != nil {
		writeError(w, r, err, "error reading client override")
		return
	}
	if view.Default, err = h.services.ConfigService.Default(ctx, id, option); err != nil {
		writeError(w, r, err, "error reading client default")
		return
	}
	if view.Effective, err = h.services.ConfigService.Effective(ctx, id, option); err != nil {
		writeError(w, r, err, "error reading effective value")
		return
	}
	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) setClientConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid client id")
		return
	}

	var req models.SetValueRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid client override")
		return
	}

	if err = h.services.ConfigService.SetOverride(r.Context(), id, req); err != nil {
		writeError(w, r, err, "error setting client override")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getGroupConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid group id")
		return
	}

	sections, err := h.services.ConfigService.GroupConfig(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "error reading group configuration")
		return
	}
	utils.WriteJSON(w, sections, http.StatusOK)
}

// getGroupOption shows a group's override and effective value. The default
// of a group is the global value.
func (h *Handler) getGroupOption(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	option := chi.URLParam(r, "option")

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid group id")
		return
	}

	view := models.ClientConfigView{Option: option}
	if view.Override, err = h.services.ConfigService.GroupOverride(ctx, id, option); err != nil {
		writeError(w, r, err, "error reading group override")
		return
	}
	if view.Default, err = h.services.ConfigService.GlobalValue(ctx, option); err != nil {
		writeError(w, r, err, "error reading global value")
		return
	}
	if view.Effective, err = h.services.ConfigService.GroupEffective(ctx, id, option); err != nil {
		writeError(w, r, err, "error reading effective value")
		return
	}
	utils.WriteJSON(w, view, http.StatusOK)
}

func (h *Handler) setGroupConfig(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "invalid group id")
		return
	}

	var req models.SetValueRequest
	if err = utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid group override")
		return
	}

	if err = h.services.ConfigService.SetGroupOverride(r.Context(), id, req); err != nil {
		writeError(w, r, err, "error setting group override")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) effectiveReport(w http.ResponseWriter, r *http.Request) {
	var req models.EffectiveReportRequest
	if err := utils.ReadJSON(w, r, &req); err != nil {
		writeError(w, r, err, "invalid report request")
		return
	}

	rows, err := h.services.ConfigService.EffectiveReport(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "error building effective report")
		return
	}
	utils.WriteJSON(w, rows, http.StatusOK)
}
