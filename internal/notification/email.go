package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghxstship/grasshopper26.00-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// EmailNotifier writes to recipients by address, including ones without an
// account.
type EmailNotifier struct {
	sender mailSender
	from   string
	logger logger.Logger
}

func NewEmailNotifier(opts SMTPOptions, logger logger.Logger) (*EmailNotifier, error) {
	if opts.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{logger: logger}, nil
	}

	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &EmailNotifier{sender: client, from: opts.From, logger: logger}, nil
}

func (n *EmailNotifier) NotifyTransferOffer(ctx context.Context, offer domain.TransferOffer) {
	body := fmt.Sprintf(
		"%s has offered you a ticket for %s on %s UTC.\n\n"+
			"To accept it, sign in and enter this code:\n\n    %s\n\n"+
			"The offer expires on %s UTC.\n",
		offer.SenderName, offer.EventTitle, offer.EventStartsAt.Format(dateLayout),
		offer.Code, offer.ExpiresAt.Format(dateLayout),
	)
	n.send(ctx, offer.RecipientEmail, "Ticket offer: "+offer.EventTitle, body)
}

func (n *EmailNotifier) NotifyTransferAccepted(ctx context.Context, sender, recipient *domain.User, event *domain.Event) {
	n.send(ctx, sender.Email, "Transfer accepted: "+event.Title, fmt.Sprintf(
		"Your ticket for %s has been accepted by %s and is no longer yours.\n",
		event.Title, recipient.Email,
	))
	n.send(ctx, recipient.Email, "Ticket received: "+event.Title, fmt.Sprintf(
		"You now hold a ticket for %s on %s UTC.\n",
		event.Title, event.StartsAt.Format(dateLayout),
	))
}

func (n *EmailNotifier) NotifyRefundIssued(ctx context.Context, purchaser *domain.User, event *domain.Event, refund *domain.Refund) {
	n.send(ctx, purchaser.Email, "Refund issued: "+event.Title, fmt.Sprintf(
		"A refund of %s for %d ticket(s) to %s has been issued.\nReference: %s\n",
		formatAmount(refund.Amount, refund.Currency), len(refund.TicketIDs), event.Title, refund.ID,
	))
}

func (n *EmailNotifier) NotifyCapacityFreed(ctx context.Context, entry *domain.WaitlistEntry, event *domain.Event) {
	n.send(ctx, entry.Email, "Seats available: "+event.Title, fmt.Sprintf(
		"A seat you were waiting for has opened up for %s on %s UTC.\n",
		event.Title, event.StartsAt.Format(dateLayout),
	))
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) {
	if n.sender == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("subject", subject))
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		n.logger.Error("invalid sender address", logger.String("error", err.Error()))
		return
	}
	if err := msg.To(to); err != nil {
		n.logger.Warn("invalid recipient address", logger.String("error", err.Error()))
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
	}
}

// formatAmount renders minor units as a decimal amount, e.g. 1050 usd -> 10.50 USD.
func formatAmount(minor int64, currency string) string {
	return decimal.New(minor, -2).StringFixed(2) + " " + strings.ToUpper(currency)
}
