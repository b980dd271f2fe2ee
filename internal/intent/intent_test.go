package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  Intent
	}{
		// triggers: exact and prefix, case-insensitive
		{"/update", Trigger},
		{"/price", Trigger},
		{"/price@spinny_bot", Trigger},
		{"Car Price Update", Trigger},
		{"  check price please ", Trigger},
		{"update price!", Trigger},
		{"price update now", Trigger},
		// punctuation is collapsed before the prefix check
		{"?/price", Trigger},
		{"price, update", Trigger},
		{"check... price", Trigger},

		// help: exact only
		{"/help", Help},
		{"HELP", Help},
		{"help?", Help},
		{"help me with the plan", None},

		// tomorrow
		{"Tomorrow's plan?", PlanTomorrow},
		{"what's tomorrow's plan", PlanTomorrow},
		{"plan for tomorrow", PlanTomorrow},
		{"/tomorrow", PlanTomorrow},
		{"hair schedule tomorrow", PlanTomorrow},
		{"today's plan or tomorrow's plan", PlanTomorrow},

		// today
		{"What's today's plan?", PlanToday},
		{"What’s today’s plan?", PlanToday},
		{"todays plan", PlanToday},
		{"today plan", PlanToday},
		{"/today", PlanToday},
		{"hair schedule", PlanToday},
		{"hair plan", PlanToday},
		{"show me the full hair schedule for today please", PlanToday},
		{"can you share the complete hair schedule", None},

		// next
		{"what's next", PlanNext},
		{"What's next?", PlanNext},
		{"whats next", PlanNext},
		{"/next", PlanNext},
		{"what's next on my hair routine after lunch", PlanNext},
		{"ok so what's next in the project we discussed", None},

		// nothing
		{"banana", None},
		{"", None},
		{"   ", None},
		{"?!", None},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  What's   NEXT??  ": "what's next",
		"hair,schedule...":    "hair schedule",
		"Today’s plan":        "today's plan",
		"/price":              "/price",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIntentString(t *testing.T) {
	if Trigger.String() != "trigger" || PlanNext.String() != "plan_next" || Intent(99).String() != "none" {
		t.Error("unexpected intent labels")
	}
}
