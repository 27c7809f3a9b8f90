package delivery_status_stage_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/service/delivery"
	"tracker/internal/service/staging"
	"tracker/pkg/logger"
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

// ServeHTTP готовит смену статуса к подтверждению. Сама доставка не
// мутируется, пока клиент не подтвердит заявку.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var stageDTO dto.StatusStageRequest
	err = json.NewDecoder(r.Body).Decode(&stageDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	stage, err := h.service.StageStatusChange(r.Context(), id, entities.DeliveryStatusType(stageDTO.Status))
	if err != nil {
		switch {
		case errors.Is(err, staging.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, staging.ErrSameStatus):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
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
