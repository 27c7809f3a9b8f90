package stage_confirm_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"tracker/internal/pkg/middlewares/auth"
	"tracker/internal/service/delivery"
	"tracker/internal/service/staff"
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

// ServeHTTP исполняет отложенную мутацию. Авторство берется из сессии
// подтверждающего, а не того, кто готовил заявку.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	stageID := mux.Vars(r)["id"]
	if stageID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err := h.service.Confirm(r.Context(), stageID, actor)
	if err != nil {
		switch {
		case errors.Is(err, staging.ErrStageNotFound):
			w.WriteHeader(http.StatusGone)
		case errors.Is(err, staging.ErrSameStatus),
			errors.Is(err, delivery.ErrSameStatus):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, staff.ErrStaffNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
