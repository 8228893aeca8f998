// internal/notify/telegram.go

// Package notify pushes owner-facing notifications over Telegram. The
// notifier is optional: without a bot token the server runs without it.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"parking-portal/internal/domain"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(botToken string, ownerChatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: ownerChatID}, nil
}

// TransferReported pings the owner about a new bank-transfer report so
// it can be reviewed in the admin dashboard. Delivery is best effort.
func (n *TelegramNotifier) TransferReported(ctx context.Context, contractor domain.Contractor, months []domain.Month, transferName, transferDate string) {
	monthStrs := make([]string, len(months))
	for i, m := range months {
		monthStrs[i] = m.String()
	}

	text := fmt.Sprintf("🏦 *振込報告*\n\n契約者: %s\n対象月: %s\n振込名義: %s\n振込日: %s\n金額: ¥%d",
		contractor.Name, strings.Join(monthStrs, ", "), transferName, transferDate,
		contractor.MonthlyFee*int64(len(months)))

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := n.bot.Send(msg); err != nil {
		slog.WarnContext(ctx, "telegram notification failed",
			"contractor_id", contractor.ID, "error", err)
	}
}
