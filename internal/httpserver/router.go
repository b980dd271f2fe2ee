package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"telegram-alerts/pkg/otel"
)

// WebhookPath is where Telegram is told to deliver updates.
const WebhookPath = "/webhook"

type Router struct {
	Engine *gin.Engine
}

func NewRouter(webhookHandler *WebhookHandler, logger *zap.Logger) *Router {
	r := gin.New()
	r.Use(
		RecoveryMiddleware(logger),
		TraceMiddleware(),
		otel.GinMiddleware(),
		MetricsMiddleware(),
	)

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	// stateless: ready as soon as the process serves
	r.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Telegram only POSTs; anything else gets the same 200 "OK"
	r.Any(WebhookPath, webhookHandler.Handle)
	r.Any("/", webhookHandler.Handle)

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
