package staff_delete_stage_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tracker/internal/dto"
	"tracker/internal/pkg/middlewares/auth"
	"tracker/internal/service/staff"
	"tracker/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	service      Service
	capabilities Capabilities
}

func New(log handlerLogger, service Service, capabilities Capabilities) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		capabilities: capabilities,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !h.capabilities.Capabilities(actor).CanManageStaff {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stage, err := h.service.StageStaffDelete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrStaffNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromStage(stage))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
