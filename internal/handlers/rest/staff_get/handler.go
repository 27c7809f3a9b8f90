package staff_get

import (
	"encoding/json"
	"net/http"

	"tracker/internal/dto"
	"tracker/pkg/logger"
)

type Handler struct {
	log  handlerLogger
	feed Feed
}

func New(log handlerLogger, feed Feed) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:  handlerLog,
		feed: feed,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	staffList, err := h.feed.Current(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("failed to read staff feed snapshot")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromStaffList(staffList))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
