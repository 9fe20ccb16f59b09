package notification

import (
	"context"
	"fmt"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "02.01.2006 15:04"

// userLookup resolves recipients known only by email, such as transfer
// offers and waiting-list entries.
type userLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	users  userLookup
	logger logger.Logger
}

func NewTelegramNotifier(token string, users userLookup, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, users: users, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, users: users, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyTransferOffer(ctx context.Context, offer domain.TransferOffer) {
	n.send(ctx, n.chatByEmail(ctx, offer.RecipientEmail), transferOfferText(offer))
}

func (n *TelegramNotifier) NotifyTransferAccepted(ctx context.Context, sender, recipient *domain.User, event *domain.Event) {
	n.send(ctx, sender.TelegramChatID, fmt.Sprintf(
		"*Transfer accepted*\n\nYour ticket for %s (%s UTC) now belongs to %s.",
		event.Title, event.StartsAt.Format(dateLayout), recipient.Username,
	))
	n.send(ctx, recipient.TelegramChatID, fmt.Sprintf(
		"*Ticket received*\n\nYou now hold a ticket for %s (%s UTC).",
		event.Title, event.StartsAt.Format(dateLayout),
	))
}

func (n *TelegramNotifier) NotifyRefundIssued(ctx context.Context, purchaser *domain.User, event *domain.Event, refund *domain.Refund) {
	n.send(ctx, purchaser.TelegramChatID, refundText(event, refund))
}

func (n *TelegramNotifier) NotifyCapacityFreed(ctx context.Context, entry *domain.WaitlistEntry, event *domain.Event) {
	n.send(ctx, n.chatByEmail(ctx, entry.Email), fmt.Sprintf(
		"*Seats available*\n\nA seat you were waiting for has opened up for %s (%s UTC).",
		event.Title, event.StartsAt.Format(dateLayout),
	))
}

func (n *TelegramNotifier) chatByEmail(ctx context.Context, email string) *int64 {
	if n.bot == nil || n.users == nil {
		return nil
	}

	u, err := n.users.GetByEmail(ctx, email)
	if err != nil {
		n.logger.Debug("telegram recipient not resolved", logger.String("error", err.Error()))
		return nil
	}
	return u.TelegramChatID
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)")
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}

func transferOfferText(offer domain.TransferOffer) string {
	return fmt.Sprintf(
		"*You have been offered a ticket*\n\n"+
			"From: %s\nEvent: %s\nDate (UTC): %s\n\n"+
			"Accept with code `%s` before %s UTC.",
		offer.SenderName, offer.EventTitle, offer.EventStartsAt.Format(dateLayout),
		offer.Code, offer.ExpiresAt.Format(dateLayout),
	)
}

func refundText(event *domain.Event, refund *domain.Refund) string {
	return fmt.Sprintf(
		"*Refund issued*\n\nEvent: %s\nAmount: %s\nTickets: %d",
		event.Title, formatAmount(refund.Amount, refund.Currency), len(refund.TicketIDs),
	)
}
