package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

type WebhookResponse struct {
	Status string `json:"status"`
}

// ChatWebhook returns a handler for one SalesIQ webhook kind.
// @Summary SalesIQ chat webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /webhook/chat-started [post]
// @Router /webhook/visitor-updated [post]
// @Router /webhook/chat-ended [post]
func (h *Handler) ChatWebhook(kind entity.ChatEventKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "read request body")
			return
		}

		_, err = h.s.RecordChatEvent(ctx, kind, payload)
		if err != nil {
			sendServiceErr(ctx, w, err, "", "Failed to record chat event")
			return
		}

		SendJSON(ctx, w, http.StatusOK, WebhookResponse{Status: "success"})
	}
}

// ChatEvents lists recorded webhook deliveries, newest first.
// @Summary Chat events
// @Tags webhooks
// @Produce json
// @Param email query string false "Visitor email"
// @Param limit query int false "Max events"
// @Success 200 {array} entity.ChatEvent
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse "Failed to fetch chat events"
// @Router /chats/events [get]
// @Security BearerAuth
func (h *Handler) ChatEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := entity.ChatEventFilter{VisitorEmail: r.URL.Query().Get("email")}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid limit")
			return
		}

		filter.Limit = limit
	}

	events, err := h.s.ChatEvents(ctx, filter)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to fetch chat events")
		return
	}

	SendJSON(ctx, w, http.StatusOK, events)
}
