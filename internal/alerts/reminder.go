package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"telegram-alerts/internal/schedule"
)

var ErrUnknownSlot = errors.New("unknown slot")

// SlotReminder pushes today's reminder for one hair-schedule slot.
type SlotReminder struct {
	label string
	now   func() time.Time
}

func NewSlotReminder(label string) (*SlotReminder, error) {
	for _, known := range schedule.SlotLabels() {
		if strings.EqualFold(known, label) {
			return &SlotReminder{label: known, now: time.Now}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownSlot, label,
		strings.ToLower(strings.Join(schedule.SlotLabels(), ", ")))
}

func (r *SlotReminder) Name() string { return "hair_" + strings.ToLower(r.label) }

// Run returns "" when the slot does not occur today (IST).
func (r *SlotReminder) Run(ctx context.Context) (string, error) {
	lt := schedule.ResolveLocalTime(r.now())
	msg, ok := schedule.RenderSlotReminder(lt.Day, r.label)
	if !ok {
		return "", nil
	}
	return msg, nil
}
