package staff_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
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

	var staffCreateDTO dto.StaffCreate
	err := json.NewDecoder(r.Body).Decode(&staffCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	staffModifyEntity := entities.StaffModify{
		Name:  &staffCreateDTO.Name,
		Email: &staffCreateDTO.Email,
		Phone: &staffCreateDTO.Phone,
		Role:  &staffCreateDTO.Role,
	}

	created, err := h.service.CreateStaffMember(r.Context(), staffModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrMissingRequiredFields),
			errors.Is(err, staff.ErrInvalidName),
			errors.Is(err, staff.ErrInvalidEmail),
			errors.Is(err, staff.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, staff.ErrStaffEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromStaff(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
