package deliveries_watch_get

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tracker/internal/dto"
	"tracker/internal/entities"
	"tracker/internal/feed"
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

// ServeHTTP стримит видимое подмножество ленты по SSE. Каждая мутация
// приезжает целиковым снапшотом; фильтр из query применяется локально
// к каждому снапшоту. Терминальная ошибка ленты приходит событием
// error, после чего стрим закрывается - клиент перемонтирует подписку.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	subscription, err := h.feed.Subscribe(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("failed to subscribe to delivery feed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer subscription.Close()

	query := r.URL.Query()
	view := feed.NewDeliveryView(entities.DeliveryFilter{
		Status: query.Get("status"),
		Date:   query.Get("date"),
		Query:  query.Get("q"),
	})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snapshot := range subscription.Snapshots() {
		view.ApplySnapshot(snapshot)

		// индекс имен перечитывается на каждый снапшот: справочник мог
		// измениться за время жизни стрима
		payload, err := json.Marshal(dto.FromDeliveryList(view.Visible(), h.staffNames(r.Context())))
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode SSE snapshot")
			return
		}

		fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", payload)
		flusher.Flush()
	}

	if err := subscription.Err(); err != nil {
		view.Fail(err)
		fmt.Fprint(w, "event: error\ndata: {\"error\":\"feed unavailable\"}\n\n")
		flusher.Flush()
	}
}

// staffNames строит индекс email -> имя из текущего снапшота справочника.
// Недоступный справочник не рвет стрим: снапшот уходит без расшифровки
// имен авторов.
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
