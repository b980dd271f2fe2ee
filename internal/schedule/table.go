package schedule

import "strings"

// Slot labels.
const (
	SlotMorning = "Morning"
	SlotBath    = "Bath"
	SlotLunch   = "Lunch"
	SlotEvening = "Evening"
	SlotNight   = "Night"
)

// SlotEntry is one timed step of a day's plan.
type SlotEntry struct {
	Hour   int
	Minute int
	Label  string
	Items  []string
}

// Action is the slot's items as a single line.
func (s SlotEntry) Action() string {
	return strings.Join(s.Items, ", ")
}

func (s SlotEntry) minuteOfDay() int {
	return s.Hour*60 + s.Minute
}

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const (
	nidcort      = "Nidcort-CS (2) overnight → shampoo next day"
	ketoconazole = "Ketoconazole 2% (1) overnight → wash next day"
)

// Night (9 PM) carries overnight items only.
var nightByDay = map[int]string{
	0: ketoconazole,
	1: nidcort,
	3: nidcort,
	5: nidcort,
}

// Bath (10 AM) is a Ketoclenz CT wash.
var bathDays = map[int]bool{2: true, 4: true, 6: true}

const friday = 5

// DayName returns the short weekday name for day 0..6. Out-of-range days wrap.
func DayName(day int) string {
	return dayNames[normalizeDay(day)]
}

// DaySchedule returns the slots for day 0..6 (0=Sunday) in time order.
func DaySchedule(day int) []SlotEntry {
	day = normalizeDay(day)

	slots := []SlotEntry{
		{Hour: 8, Label: SlotMorning, Items: []string{"Trichogain 1 cap (after breakfast)", "AGA Pro 6 sprays"}},
	}
	if bathDays[day] {
		slots = append(slots, SlotEntry{Hour: 10, Label: SlotBath, Items: []string{"Ketoclenz CT (3) – 5 min on scalp, then regular shampoo"}})
	}

	lunch := "Meganeuron OD+"
	if day == friday {
		lunch += " + Uprise D3"
	}
	slots = append(slots,
		SlotEntry{Hour: 14, Label: SlotLunch, Items: []string{lunch}},
		SlotEntry{Hour: 19, Label: SlotEvening, Items: []string{"AGA Pro 6 sprays"}},
	)

	if night, ok := nightByDay[day]; ok {
		slots = append(slots, SlotEntry{Hour: 21, Label: SlotNight, Items: []string{night}})
	}
	return slots
}

func normalizeDay(day int) int {
	return ((day % 7) + 7) % 7
}
