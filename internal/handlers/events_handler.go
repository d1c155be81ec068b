package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/notify"
)

// ======================================================
// HANDLER (SSE)
// ======================================================
//
// Retransmite o feed de mudanças para a UI invalidar horários
// exibidos. Melhor esforço: a checagem autoritativa continua sendo a
// constraint no commit, nunca este stream.

type EventsHandler struct {
	rdb *redis.Client
}

func NewEventsHandler(rdb *redis.Client) *EventsHandler {
	return &EventsHandler{rdb: rdb}
}

func (h *EventsHandler) Stream(c *gin.Context) {
	if h.rdb == nil {
		httperr.Unavailable(c, "events_unavailable", "Feed de eventos desabilitado.")
		return
	}

	ctx := c.Request.Context()

	sub := h.rdb.Subscribe(ctx, notify.Channel)
	defer sub.Close()

	ch := sub.Channel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("appointment_change", msg.Payload)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
