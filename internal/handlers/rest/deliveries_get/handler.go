package deliveries_get

import (
	"context"
	"encoding/json"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/filter"
	"tracker/pkg/logger"
)

type Handler struct {
	log   handlerLogger
	feed  Feed
	staff Staff
}

func New(log handlerLogger, feed Feed, staff Staff) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		feed:  feed,
		staff: staff,
	}
}

// ServeHTTP отдает снапшот ленты, просеянный фильтрами из query.
// Фильтрация идет по held-снапшоту, в базу запрос не ходит.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.feed.Current(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("failed to read delivery feed snapshot")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	deliveryFilter := entities.DeliveryFilter{
		Status: query.Get("status"),
		Date:   query.Get("date"),
		Query:  query.Get("q"),
	}

	visible := filter.VisibleDeliveries(deliveries, deliveryFilter)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromDeliveryList(visible, h.staffNames(r.Context())))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// staffNames строит индекс email -> имя из текущего снапшота справочника.
// Недоступный справочник не валит выдачу доставок: список уходит без
// расшифровки имен авторов.
func (h *Handler) staffNames(ctx context.Context) map[string]string {
	staffMembers, err := h.staff.Current(ctx)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("failed to read staff snapshot, author names omitted")
		return nil
	}
	return filter.EmailToName(staffMembers)
}
