package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/service/delivery"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var deliveryModifyDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryModifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	branch := entities.BranchType(deliveryModifyDTO.Branch)
	deliveryModifyEntity := entities.DeliveryModify{
		ProductName:  &deliveryModifyDTO.ProductName,
		CustomerName: &deliveryModifyDTO.CustomerName,
		Address:      &deliveryModifyDTO.Address,
		Branch:       &branch,
		Notes:        &deliveryModifyDTO.Notes,
	}
	if len(deliveryModifyDTO.ProductImage) > 0 {
		deliveryModifyEntity.ProductImage = &deliveryModifyDTO.ProductImage
	}

	created, err := h.service.CreateDelivery(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidProductName),
			errors.Is(err, delivery.ErrInvalidCustomerName),
			errors.Is(err, delivery.ErrInvalidAddress),
			errors.Is(err, delivery.ErrInvalidBranch),
			errors.Is(err, delivery.ErrInvalidImage):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromDelivery(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
