package scheduling

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"remessa/internal/models"
)

// TransferStore persists scheduled transfers.
type TransferStore interface {
	Create(ctx context.Context, transfer *models.Transfer) error
	List(ctx context.Context, limit, offset int) ([]models.Transfer, int64, error)
	Delete(ctx context.Context, id uint) error
}

// FeeResolver computes the service fee for a validated day-distance.
type FeeResolver interface {
	Resolve(ctx context.Context, amount decimal.Decimal, days int64) (decimal.Decimal, error)
}

// Clock supplies the scheduling date. Injected so tests can pin "now"
// instead of racing the wall clock across day boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// Service schedules account-to-account transfers with their fees.
type Service interface {
	Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error)
	List(ctx context.Context, limit, offset int) ([]models.Transfer, int64, error)
	Delete(ctx context.Context, id uint) error
}
