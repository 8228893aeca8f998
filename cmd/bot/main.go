// cmd/bot/main.go
//
// Owner-side Telegram bot. Polls for commands and answers with the
// current state of pending transfer reports and unpaid contractors.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"parking-portal/internal/billing"
	"parking-portal/internal/config"
	"parking-portal/internal/domain"
	"parking-portal/internal/storage/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN not set")
	}

	db, err := pgxpool.New(context.Background(), cfg.DBConn)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer db.Close()

	store := postgres.NewStorage(db)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Panic(err)
	}
	log.Printf("bot started: @%s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		chatID := update.Message.Chat.ID
		if cfg.TelegramOwnerChatID != 0 && chatID != cfg.TelegramOwnerChatID {
			continue
		}

		text := strings.TrimSpace(update.Message.Text)

		var msgText string
		var err error

		switch text {
		case "/start", "/help":
			msgText = "🅿️ *Parking billing*\n\n" +
				"Commands:\n" +
				"`/pending` — reported bank transfers awaiting review\n" +
				"`/unpaid` — contractors with unpaid months"

		case "/pending":
			msgText, err = handlePending(store)

		case "/unpaid":
			msgText, err = handleUnpaid(store)

		default:
			msgText = "Unknown command. Try /help"
		}

		if err != nil {
			msgText = "❌ Error: " + err.Error()
		}

		msg := tgbotapi.NewMessage(chatID, msgText)
		msg.ParseMode = "Markdown"
		bot.Send(msg)
	}
}

func handlePending(store *postgres.Storage) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pending, err := store.ListPendingTransfers(ctx)
	if err != nil {
		return "", err
	}

	groups := billing.SortedTransferGroups(pending)
	if len(groups) == 0 {
		return "No pending transfer reports.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Pending transfers: %d*\n", len(groups))
	for _, g := range groups {
		contractor, err := store.GetContractor(ctx, g.Key.ContractorID)
		name := g.Key.ContractorID.String()
		if err == nil {
			name = contractor.Name
		}

		months := make([]string, 0, len(g.Payments))
		for _, p := range g.Payments {
			months = append(months, string(p.TargetMonth))
		}

		fmt.Fprintf(&b, "\n*%s* — ¥%d\n", name, g.Total)
		fmt.Fprintf(&b, "Months: %s\n", strings.Join(months, ", "))
		if g.Key.TransferName != "" {
			fmt.Fprintf(&b, "Sender: %s, date: %s\n", g.Key.TransferName, g.Key.TransferDate)
		}
	}
	return b.String(), nil
}

func handleUnpaid(store *postgres.Storage) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	contractors, err := store.ListContractors(ctx)
	if err != nil {
		return "", err
	}

	current := domain.MonthOf(time.Now())

	var b strings.Builder
	count := 0
	for _, c := range contractors {
		payments, err := store.ListPaymentsByContractor(ctx, c.ID)
		if err != nil {
			return "", err
		}

		unpaid := billing.CalculateUnpaidMonths(c.ContractStart, c.ContractEnd, billing.PaidMonthSet(payments), current)
		if len(unpaid) == 0 {
			continue
		}
		count++

		months := make([]string, 0, len(unpaid))
		for _, m := range unpaid {
			months = append(months, string(m))
		}
		fmt.Fprintf(&b, "\n*%s* — %d month(s), ¥%d\n", c.Name, len(unpaid), c.MonthlyFee*int64(len(unpaid)))
		fmt.Fprintf(&b, "%s\n", strings.Join(months, ", "))
	}

	if count == 0 {
		return "Everyone is paid up for " + string(current) + " 🎉", nil
	}
	return fmt.Sprintf("💸 *Contractors with unpaid months: %d*\n%s", count, b.String()), nil
}
