package staff_watch_get

import (
	"encoding/json"
	"fmt"
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

// ServeHTTP стримит снапшоты справочника сотрудников по SSE.
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
		).Error("failed to subscribe to staff feed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer subscription.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snapshot := range subscription.Snapshots() {
		payload, err := json.Marshal(dto.FromStaffList(snapshot))
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
		fmt.Fprint(w, "event: error\ndata: {\"error\":\"feed unavailable\"}\n\n")
		flusher.Flush()
	}
}
