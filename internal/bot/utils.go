package bot

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

/*** HELPERS ***/

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string, alert bool) error {
	resp := tgbotapi.NewCallback(cb.ID, text)
	resp.ShowAlert = alert
	_, err := b.api.Request(resp)
	return err
}

func (b *Bot) editTextAndClear(chatID int64, messageID int, text string) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		chatID, messageID, text,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}},
	)
	b.send(edit)
}

// parseFloat принимает и запятую, и точку как десятичный разделитель.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// tail возвращает часть callback data после префикса ("prod:open:12" → "12").
func tail(data, prefix string) string {
	return strings.TrimPrefix(data, prefix)
}

func parseID(data, prefix string) (int64, bool) {
	id, err := strconv.ParseInt(tail(data, prefix), 10, 64)
	return id, err == nil
}

// parsePair разбирает callback data вида "<prefix><a>:<b>".
func parsePair(data, prefix string) (int64, int64, bool) {
	parts := strings.Split(tail(data, prefix), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.ParseInt(parts[0], 10, 64)
	b, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return a, b, true
}

// isAdminChat: adminChat == 0 — ограничение выключено.
func isAdminChat(adminChat, chatID int64) bool {
	return adminChat == 0 || adminChat == chatID
}
