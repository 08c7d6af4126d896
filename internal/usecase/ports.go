package usecase

import (
	"context"

	domain "github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/entity"
	"github.com/Frank080811/ILUMINOUS-CANDLE-UK-BE/internal/pricing"
)

// OrderRepo is the injected order store. GetByID returns (nil, nil) for an
// unknown id; UpdateStatusIf is a compare-and-set and reports whether the
// transition happened.
type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatusIf(ctx context.Context, id string, from, to domain.Status) (bool, error)
}

// ConfirmGuard hands out at most one confirmation token per order, so
// concurrent confirms for the same id resolve to a single winner.
type ConfirmGuard interface {
	TryAcquire(ctx context.Context, orderID string) (bool, error)
}

type Session struct {
	ID  string
	URL string
}

// PaymentGateway wraps the hosted-checkout processor. CreateSession is a
// single attempt, no retry. VerifySession reports whether the processor has
// actually captured funds for the session.
type PaymentGateway interface {
	CreateSession(ctx context.Context, cart []domain.Item, customer domain.Customer, quote pricing.Quote, orderID string) (Session, error)
	VerifySession(ctx context.Context, sessionID string) (bool, error)
}

// Mailer sends one HTML email. Attachment paths that cannot be read are
// skipped by the implementation, not fatal.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string, attachments ...string) error
}

// LabelRenderer writes a shipping label document to a fresh temp file and
// returns its path. The caller owns the file.
type LabelRenderer interface {
	Render(o *domain.Order) (string, error)
}
