package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dkravets/unit-roster/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Upsert(dto EntryDTO) (*Entry, bool, error)
	List(month string) ([]*Entry, error)
	Delete(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.List(r.URL.Query().Get("month"))
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, EntriesResponse{Entries: entries})
}

// Upsert answers 201 when the (duty_date, person_id) pair was new and 200
// when an existing entry was replaced.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, replaced, err := h.Service.Upsert(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	status := http.StatusCreated
	if replaced {
		status = http.StatusOK
	}
	h.WriteJSON(w, status, entry)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusNotFound, "not found")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"detail": "deleted"})
}
