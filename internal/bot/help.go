package bot

import "telegram-alerts/internal/telegram"

// HelpText lists the commands and phrases the bot understands.
func HelpText() string {
	return "<b>🚗 Spinny Price Bot</b>\n\n" +
		"Commands:\n" +
		"• /update – Get latest car prices\n" +
		"• /price – Get latest car prices\n" +
		"• /help – Show this help\n\n" +
		"You can also say:\n" +
		"• \"car price update\"\n" +
		"• \"check price\"\n\n" +
		"<b>📋 Hair schedule</b>\n" +
		"• \"What's today's plan?\" – full plan for today\n" +
		"• \"Tomorrow's plan\" – full plan for tomorrow\n" +
		"• \"What's next?\" – next upcoming item"
}

// HelpKeyboard offers the common phrases as one-tap buttons.
func HelpKeyboard() *telegram.ReplyKeyboardMarkup {
	return telegram.NewReplyKeyboard(true,
		[]string{"What's today's plan?", "What's next?"},
		[]string{"Tomorrow's plan", "/price"},
	)
}
