package intent

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Intent is what an inbound chat message asks the bot to do.
type Intent int

const (
	None Intent = iota
	Trigger
	Help
	PlanToday
	PlanTomorrow
	PlanNext
)

// String returns the metric/log label for the intent.
func (i Intent) String() string {
	switch i {
	case Trigger:
		return "trigger"
	case Help:
		return "help"
	case PlanToday:
		return "plan_today"
	case PlanTomorrow:
		return "plan_tomorrow"
	case PlanNext:
		return "plan_next"
	default:
		return "none"
	}
}

// TriggerPhrases start the price-update workflow, matched exactly or as a prefix.
var TriggerPhrases = []string{
	"/update",
	"/price",
	"car price update",
	"price update",
	"update price",
	"check price",
}

var helpPhrases = map[string]bool{
	"/help": true,
	"help":  true,
}

var (
	punctuationRun = regexp.MustCompile(`[\s?!.,]+`)
	apostrophes    = strings.NewReplacer("’", "'", "‘", "'")

	tomorrowPlan = regexp.MustCompile(`\b(tomorrow'?s? plan|plan for tomorrow|what'?s? tomorrow'?s? plan)\b|^/tomorrow\b`)
	todayPlan    = regexp.MustCompile(`\b(today'?s? plan|plan for today|what'?s? today'?s? plan)\b|^/today\b`)
	hairPlan     = regexp.MustCompile(`\b(hair schedule|hair plan)\b`)
	tomorrowWord = regexp.MustCompile(`\btomorrow\b`)
	todayOrPlan  = regexp.MustCompile(`\b(today|plan)\b`)
	whatsNext    = regexp.MustCompile(`\bwhat'?s? next\b|^/next\b`)
	hairOrSched  = regexp.MustCompile(`\b(hair|schedule)\b`)
)

const (
	shortPlanQuery = 25
	shortNextQuery = 30
)

// Normalize lower-cases raw, unifies apostrophes and collapses whitespace and
// punctuation runs to single spaces.
func Normalize(raw string) string {
	t := apostrophes.Replace(strings.ToLower(raw))
	t = punctuationRun.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Classify maps free-form chat text to an Intent. Rules are checked in
// priority order; a tomorrow phrasing wins over a today phrasing.
func Classify(raw string) Intent {
	t := Normalize(raw)
	if t == "" {
		return None
	}
	n := utf8.RuneCountInString(t)

	for _, phrase := range TriggerPhrases {
		if strings.HasPrefix(t, phrase) {
			return Trigger
		}
	}

	if helpPhrases[t] {
		return Help
	}

	if tomorrowPlan.MatchString(t) || (hairPlan.MatchString(t) && tomorrowWord.MatchString(t)) {
		return PlanTomorrow
	}

	if todayPlan.MatchString(t) {
		return PlanToday
	}
	if hairPlan.MatchString(t) && (todayOrPlan.MatchString(t) || n < shortPlanQuery) {
		return PlanToday
	}

	if whatsNext.MatchString(t) && (hairOrSched.MatchString(t) || n < shortNextQuery) {
		return PlanNext
	}

	return None
}
