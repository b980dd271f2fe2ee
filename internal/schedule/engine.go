package schedule

import (
	"fmt"
	"strings"
)

const (
	tableHeader    = "Time   | Slot    | Medicine / Action\n"
	tableSeparator = "-------|---------|----------------------------------------\n"
)

// FormatTime12hr renders an hour 0..23 as "12 AM", "1 PM" and so on.
func FormatTime12hr(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

func formatSlotTime(s SlotEntry) string {
	if s.Minute == 0 {
		return FormatTime12hr(s.Hour)
	}
	hm := FormatTime12hr(s.Hour)
	h, suffix, _ := strings.Cut(hm, " ")
	return fmt.Sprintf("%s:%02d %s", h, s.Minute, suffix)
}

// RenderFullPlan renders every slot of day as an HTML <pre> table.
func RenderFullPlan(day int) string {
	return renderPlan("Today's plan", day)
}

// RenderTomorrowPlan renders the plan for the day after day.
func RenderTomorrowPlan(day int) string {
	return renderPlan("Tomorrow's plan", normalizeDay(day+1))
}

func renderPlan(title string, day int) string {
	var sb strings.Builder
	sb.WriteString("<b>📋 " + title + " – " + DayName(day) + "</b>\n\n")
	sb.WriteString("<pre>")
	sb.WriteString(tableHeader)
	sb.WriteString(tableSeparator)
	for _, slot := range DaySchedule(day) {
		t := " " + formatSlotTime(slot)
		for _, item := range slot.Items {
			fmt.Fprintf(&sb, "%-6s | %-7s | %s\n", t, slot.Label, item)
		}
	}
	sb.WriteString("</pre>")
	return sb.String()
}

// NextSlot returns the first slot at or after lt, wrapping to the next day's
// first slot once today's are all past. The returned int is the slot's day.
func NextSlot(lt LocalTime) (int, SlotEntry) {
	day := normalizeDay(lt.Day)
	now := lt.minuteOfDay()
	for _, slot := range DaySchedule(day) {
		if slot.minuteOfDay() >= now {
			return day, slot
		}
	}
	tomorrow := normalizeDay(day + 1)
	return tomorrow, DaySchedule(tomorrow)[0]
}

// RenderNextSlot renders the upcoming slot for lt.
func RenderNextSlot(lt LocalTime) string {
	day, slot := NextSlot(lt)
	return "<b>⏭ Next: " + DayName(day) + " " + formatSlotTime(slot) + " – " + slot.Label + "</b>\n\n" +
		"<b>" + slot.Action() + "</b>"
}
