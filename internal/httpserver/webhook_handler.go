package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"telegram-alerts/internal/bot"
	"telegram-alerts/internal/telegram"
	"telegram-alerts/pkg/logger"
	"telegram-alerts/pkg/metrics"
)

// HandleTimeout bounds the work done for one update, so the 200 "OK" always
// goes out before the server's write deadline.
const HandleTimeout = 20 * time.Second

// MessageHandler is implemented by bot.Dispatcher.
type MessageHandler interface {
	Handle(ctx context.Context, msg bot.InboundMessage) error
}

// WebhookHandler receives Telegram updates. It always answers 200 "OK" so
// Telegram never re-delivers an update.
type WebhookHandler struct {
	handler MessageHandler
	logger  *zap.Logger
}

func NewWebhookHandler(handler MessageHandler, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{handler: handler, logger: logger}
}

func (h *WebhookHandler) Handle(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		h.process(c)
	}
	c.String(http.StatusOK, "OK")
}

func (h *WebhookHandler) process(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.WithTrace(ctx, h.logger)

	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		log.Warn("Malformed webhook payload", zap.Error(err))
		metrics.IncrementWebhookUpdate("none", "malformed")
		return
	}
	if update.Message == nil || update.Message.Text == "" {
		metrics.IncrementWebhookUpdate("none", "ignored")
		return
	}

	msg := bot.InboundMessage{
		ChatID: update.Message.Chat.ID,
		Text:   update.Message.Text,
	}
	if update.Message.From != nil {
		msg.SenderName = update.Message.From.FirstName
	}

	ctx, cancel := context.WithTimeout(ctx, HandleTimeout)
	defer cancel()

	if err := h.handler.Handle(ctx, msg); err != nil {
		log.Error("Error processing webhook",
			zap.Int64("update_id", update.UpdateID),
			zap.Error(err),
		)
	}
}
