package bot

import (
	"context"
	"html"
	"time"

	"go.uber.org/zap"
	"telegram-alerts/internal/intent"
	"telegram-alerts/internal/schedule"
	"telegram-alerts/internal/telegram"
	"telegram-alerts/pkg/logger"
	"telegram-alerts/pkg/metrics"
)

const (
	failureNotice = "❌ Failed to trigger price update. Please try again."
	defaultName   = "there"
)

// InboundMessage is the part of a chat update the dispatcher acts on.
type InboundMessage struct {
	ChatID     int64
	Text       string
	SenderName string
}

// Messenger delivers replies to a chat.
type Messenger interface {
	SendMessage(ctx context.Context, msg telegram.OutgoingMessage) error
}

// WorkflowTrigger starts the external price-update workflow. A nil error
// means the trigger was accepted.
type WorkflowTrigger interface {
	Dispatch(ctx context.Context) error
}

// Dispatcher authorizes, classifies and answers one message at a time. It
// holds no per-request state.
type Dispatcher struct {
	allowedChatID int64
	messenger     Messenger
	trigger       WorkflowTrigger
	now           func() time.Time
	logger        *zap.Logger
}

func NewDispatcher(allowedChatID int64, messenger Messenger, trigger WorkflowTrigger, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		allowedChatID: allowedChatID,
		messenger:     messenger,
		trigger:       trigger,
		now:           time.Now,
		logger:        logger,
	}
}

// Handle processes msg. Unauthorized chats and unmatched text produce no reply.
// A returned error means a reply could not be delivered.
func (d *Dispatcher) Handle(ctx context.Context, msg InboundMessage) error {
	log := logger.WithTrace(ctx, d.logger)

	if msg.ChatID != d.allowedChatID {
		log.Warn("Unauthorized chat ID", zap.Int64("chat_id", msg.ChatID))
		metrics.IncrementWebhookUpdate(intent.None.String(), "unauthorized")
		return nil
	}

	in := intent.Classify(msg.Text)
	log = log.With(zap.Int64("chat_id", msg.ChatID), zap.String("intent", in.String()))

	var err error
	switch in {
	case intent.Trigger:
		err = d.handleTrigger(ctx, log, msg)
	case intent.Help:
		err = d.reply(ctx, msg.ChatID, HelpText(), HelpKeyboard())
	case intent.PlanToday:
		err = d.reply(ctx, msg.ChatID, schedule.RenderFullPlan(d.localTime().Day), nil)
	case intent.PlanTomorrow:
		err = d.reply(ctx, msg.ChatID, schedule.RenderTomorrowPlan(d.localTime().Day), nil)
	case intent.PlanNext:
		err = d.reply(ctx, msg.ChatID, schedule.RenderNextSlot(d.localTime()), nil)
	default:
		log.Debug("No intent matched")
		metrics.IncrementWebhookUpdate(in.String(), "ignored")
		return nil
	}

	if err != nil {
		metrics.IncrementWebhookUpdate(in.String(), "failed")
		return err
	}
	log.Info("Update handled")
	metrics.IncrementWebhookUpdate(in.String(), "replied")
	return nil
}

// handleTrigger acknowledges, fires the workflow and reports failure once.
// On success the workflow itself delivers the result to the chat later.
func (d *Dispatcher) handleTrigger(ctx context.Context, log *zap.Logger, msg InboundMessage) error {
	name := msg.SenderName
	if name == "" {
		name = defaultName
	}
	ack := "🔄 Fetching car prices, " + html.EscapeString(name) + "..."
	if err := d.reply(ctx, msg.ChatID, ack, nil); err != nil {
		log.Warn("Acknowledgment not delivered, triggering anyway", zap.Error(err))
	}

	if err := d.trigger.Dispatch(ctx); err != nil {
		log.Error("Workflow trigger failed", zap.Error(err))
		return d.reply(ctx, msg.ChatID, failureNotice, nil)
	}
	return nil
}

func (d *Dispatcher) reply(ctx context.Context, chatID int64, text string, keyboard *telegram.ReplyKeyboardMarkup) error {
	return d.messenger.SendMessage(ctx, telegram.OutgoingMessage{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   telegram.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
}

func (d *Dispatcher) localTime() schedule.LocalTime {
	return schedule.ResolveLocalTime(d.now())
}
