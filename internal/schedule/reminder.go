package schedule

import "strings"

var slotIcons = map[string]string{
	SlotMorning: "🌅",
	SlotBath:    "🚿",
	SlotLunch:   "💊",
	SlotEvening: "🌇",
	SlotNight:   "🌙",
}

// SlotLabels lists every slot label in the order slots occur in a day.
func SlotLabels() []string {
	return []string{SlotMorning, SlotBath, SlotLunch, SlotEvening, SlotNight}
}

// LookupSlot finds the slot with label (case-insensitive) on day.
func LookupSlot(day int, label string) (SlotEntry, bool) {
	for _, slot := range DaySchedule(day) {
		if strings.EqualFold(slot.Label, label) {
			return slot, true
		}
	}
	return SlotEntry{}, false
}

// Reminder wording differs from the plan table for some slots.
var reminderTitles = map[string]string{
	SlotLunch: "After lunch",
}

const skipEveningSpray = "Skip AGA Pro tonight (overnight treatment later)"

var bathSteps = []string{"Ketoclenz CT (3) – 5 min on scalp", "Then wash with regular shampoo"}

// RenderSlotReminder renders the push reminder for one slot of day. It reports
// false when the slot does not occur that day, e.g. Bath on a Monday.
func RenderSlotReminder(day int, label string) (string, bool) {
	slot, ok := LookupSlot(day, label)
	if !ok {
		return "", false
	}

	title := slot.Label
	if t, ok := reminderTitles[slot.Label]; ok {
		title = t
	}

	var sb strings.Builder
	sb.WriteString(slotIcons[slot.Label] + " Hair schedule – " + title + " " + formatSlotTime(slot) + " (" + DayName(day) + ")")
	for _, item := range reminderItems(slot, day) {
		sb.WriteString("\n• " + item)
	}
	return sb.String(), true
}

func reminderItems(slot SlotEntry, day int) []string {
	switch slot.Label {
	case SlotBath:
		return bathSteps
	case SlotEvening:
		// no spray on nights with an overnight treatment
		if _, overnight := nightByDay[normalizeDay(day)]; overnight {
			return []string{skipEveningSpray}
		}
	}

	var items []string
	for _, item := range slot.Items {
		items = append(items, strings.Split(item, " + ")...)
	}
	return items
}
