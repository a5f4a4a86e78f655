package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-catch-automation/internal/engine"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:    api,
		chatID: chatID,
	}, nil
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// SendListing reports one collected posting to the chat
func (b *Bot) SendListing(rec engine.ListingRecord, score int) error {
	msgText := fmt.Sprintf("🏢 *%s*\n", b.escapeMarkdown(rec.Company))
	msgText += fmt.Sprintf("📌 %s\n", b.escapeMarkdown(rec.Title))
	if rec.URL != "" {
		msgText += fmt.Sprintf("🔗 [View Posting](%s)\n", rec.URL)
	}
	if len(rec.JobInfo) > 0 {
		msgText += fmt.Sprintf("📝 %s\n", b.escapeMarkdown(strings.Join(rec.JobInfo, ", ")))
	}
	if len(rec.Conditions) > 0 {
		msgText += fmt.Sprintf("🎓 %s\n", b.escapeMarkdown(strings.Join(rec.Conditions, ", ")))
	}
	if len(rec.PostingMeta) > 0 {
		msgText += fmt.Sprintf("📅 %s\n", b.escapeMarkdown(strings.Join(rec.PostingMeta, ", ")))
	}
	msgText += fmt.Sprintf("🤖 Match Score: %d/10\n", score)

	msg := tgbotapi.NewMessage(b.chatID, msgText)
	msg.ParseMode = "MarkdownV2"

	if rec.URL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("🔗 View Posting", rec.URL),
			),
		)
	}

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendError(err error) error {
	msg := tgbotapi.NewMessage(b.chatID, fmt.Sprintf("❌ Error: %v", err))
	_, sendErr := b.api.Send(msg)
	return sendErr
}

func (b *Bot) SendStatus(message string) error {
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}
