package services

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/infra/mailer"
	"storefront/internal/infra/notifylog"
	"storefront/internal/repository"

	"go.uber.org/zap"
)

// Outcome records which way a notification side effect went, so callers
// and tests can see what fired instead of relying on silently swallowed
// errors.
type Outcome string

const (
	OutcomeSent    Outcome = "sent"    // email delivered to transport
	OutcomeStored  Outcome = "stored"  // in-app notification row written
	OutcomeLogged  Outcome = "logged"  // fallback log line appended
	OutcomeSkipped Outcome = "skipped" // channel not configured
	OutcomeFailed  Outcome = "failed"  // attempted and failed, swallowed
)

// DispatchResult carries the outcome of both dispatch branches: the
// email attempt and the persisted/logged record. The record branch
// never ends up empty; the fallback log is the universal last resort.
type DispatchResult struct {
	Email  Outcome `json:"email"`
	Record Outcome `json:"record"`
}

// NotificationDispatcher is what the order workflow calls on status
// transitions. Dispatch is best-effort end to end: no error return, the
// transition that triggered it has already been committed.
type NotificationDispatcher interface {
	OrderConfirmed(ctx context.Context, o *domain.Order) DispatchResult
	OrderCancelled(ctx context.Context, o *domain.Order) DispatchResult
}

// Notifier fans a status transition out to the customer: an email
// attempt first (unconditional, best-effort), then independently either
// an in-app Notification row for registered owners or a fallback log
// line for guests.
type Notifier struct {
	mail     mailer.Sender // nil when transport not configured
	notifs   repository.NotificationRepository
	fallback notifylog.Appender
	log      *zap.Logger
}

func NewNotifier(mail mailer.Sender, notifs repository.NotificationRepository, fallback notifylog.Appender, log *zap.Logger) *Notifier {
	return &Notifier{mail: mail, notifs: notifs, fallback: fallback, log: log}
}

func (n *Notifier) OrderConfirmed(ctx context.Context, o *domain.Order) DispatchResult {
	subject := fmt.Sprintf("Order #%d Confirmed!", o.ID)
	body := fmt.Sprintf(`
		<h3>Hello %s,</h3>
		<p>Your order <strong>#%d</strong> (code %s) has been confirmed!</p>
		<p><strong>Order Total:</strong> $%.2f</p>
		<p>Your order will be processed and shipped soon. You will receive tracking information shortly.</p>
		<p>Thank you for shopping with us!</p>`,
		o.Fullname, o.ID, o.OrderCode, o.Total)

	return n.dispatch(ctx, o, subject, body,
		fmt.Sprintf("Your order #%d has been confirmed.", o.ID),
		fmt.Sprintf("Order #%d confirmed for %s", o.ID, o.Fullname))
}

func (n *Notifier) OrderCancelled(ctx context.Context, o *domain.Order) DispatchResult {
	subject := fmt.Sprintf("Order #%d Cancelled", o.ID)
	body := fmt.Sprintf(`
		<h3>Hello %s,</h3>
		<p>Your order <strong>#%d</strong> has been cancelled by our admin.</p>
		<p>If you did not authorize this cancellation or have any questions, please contact our support team.</p>
		<p>Thank you for your understanding.</p>`,
		o.Fullname, o.ID)

	return n.dispatch(ctx, o, subject, body,
		fmt.Sprintf("Your order #%d has been cancelled by admin.", o.ID),
		fmt.Sprintf("Order #%d cancelled for %s", o.ID, o.Fullname))
}

func (n *Notifier) dispatch(_ context.Context, o *domain.Order, subject, body, inAppMsg, logMsg string) DispatchResult {
	res := DispatchResult{Email: OutcomeSkipped}

	if n.mail != nil {
		if err := n.mail.Send(o.Email, subject, body); err != nil {
			n.log.Warn("email send failed",
				zap.Uint("order_id", o.ID),
				zap.Error(err))
			res.Email = OutcomeFailed
		} else {
			res.Email = OutcomeSent
		}
	}

	// Independent of the email branch: registered owners get an in-app
	// row, guests get a fallback log line.
	if o.UserID != nil {
		err := n.notifs.Save(&domain.Notification{UserID: *o.UserID, Message: inAppMsg})
		if err != nil {
			n.log.Warn("notification insert failed",
				zap.Uint("order_id", o.ID),
				zap.Error(err))
			res.Record = OutcomeFailed
			return res
		}
		res.Record = OutcomeStored
		return res
	}

	if err := n.fallback.Append(o.Email, logMsg); err != nil {
		n.log.Warn("fallback log write failed",
			zap.Uint("order_id", o.ID),
			zap.Error(err))
		res.Record = OutcomeFailed
		return res
	}
	res.Record = OutcomeLogged
	return res
}

var _ NotificationDispatcher = (*Notifier)(nil)
