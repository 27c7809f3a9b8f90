package staff_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var staffUpdateDTO dto.StaffUpdate
	err = json.NewDecoder(r.Body).Decode(&staffUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	staffModifyEntity := entities.StaffModify{
		ID:    &id,
		Name:  staffUpdateDTO.Name,
		Email: staffUpdateDTO.Email,
		Phone: staffUpdateDTO.Phone,
		Role:  staffUpdateDTO.Role,
	}

	updated, err := h.service.UpdateStaffMember(r.Context(), staffModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidStaffID),
			errors.Is(err, staff.ErrMissingRequiredFields),
			errors.Is(err, staff.ErrInvalidName),
			errors.Is(err, staff.ErrInvalidEmail),
			errors.Is(err, staff.ErrInvalidPhone):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, staff.ErrStaffNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, staff.ErrStaffEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromStaff(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
