package stage_cancel_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"tracker/internal/service/staging"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stageID := mux.Vars(r)["id"]
	if stageID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := h.service.Cancel(r.Context(), stageID)
	if err != nil {
		switch {
		case errors.Is(err, staging.ErrStageNotFound):
			w.WriteHeader(http.StatusGone)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
