package alerts

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"telegram-alerts/internal/telegram"
	"telegram-alerts/pkg/metrics"
)

// Separator goes between the messages of different sources.
const Separator = "\n\n─────────────────\n\n"

// Source produces one alert message. An empty message with a nil error means
// there is nothing to report this run.
type Source interface {
	Name() string
	Run(ctx context.Context) (string, error)
}

// failureNoticer is implemented by sources that have their own failure text.
type failureNoticer interface {
	FailureNotice() string
}

type Messenger interface {
	SendMessage(ctx context.Context, msg telegram.OutgoingMessage) error
}

// Runner runs alert sources and delivers the combined result, split only when
// it exceeds Telegram's message limit.
type Runner struct {
	messenger Messenger
	chatID    int64
	logger    *zap.Logger
}

func NewRunner(messenger Messenger, chatID int64, logger *zap.Logger) *Runner {
	return &Runner{messenger: messenger, chatID: chatID, logger: logger}
}

// Run executes sources in order. A failed source contributes its failure
// notice instead of a message. Nothing is sent when every source is empty.
func (r *Runner) Run(ctx context.Context, sources ...Source) error {
	var messages []string
	for _, src := range sources {
		r.logger.Info("Running alert source", zap.String("source", src.Name()))

		text, err := src.Run(ctx)
		switch {
		case err != nil:
			r.logger.Error("Alert source failed", zap.String("source", src.Name()), zap.Error(err))
			metrics.IncrementAlertRun(src.Name(), "failed")
			messages = append(messages, failureNotice(src))
		case text == "":
			metrics.IncrementAlertRun(src.Name(), "skipped")
		default:
			metrics.IncrementAlertRun(src.Name(), "success")
			messages = append(messages, text)
		}
	}

	if len(messages) == 0 {
		r.logger.Info("No messages to send")
		return nil
	}

	chunks := telegram.SplitText(strings.Join(messages, Separator), telegram.MaxMessageLength)
	for _, chunk := range chunks {
		err := r.messenger.SendMessage(ctx, telegram.OutgoingMessage{
			ChatID:    r.chatID,
			Text:      chunk,
			ParseMode: telegram.ParseModeHTML,
		})
		if err != nil {
			return fmt.Errorf("failed to send notifications: %w", err)
		}
	}
	r.logger.Info("Notifications sent", zap.Int("messages", len(messages)), zap.Int("chunks", len(chunks)))
	return nil
}

func failureNotice(src Source) string {
	if n, ok := src.(failureNoticer); ok {
		return n.FailureNotice()
	}
	return "⚠️ Failed to run " + src.Name()
}

// WriterMessenger prints messages instead of sending them (dry runs).
type WriterMessenger struct {
	W io.Writer
}

func (m WriterMessenger) SendMessage(ctx context.Context, msg telegram.OutgoingMessage) error {
	_, err := fmt.Fprintln(m.W, msg.Text)
	return err
}
