// Package scheduling orchestrates transfer scheduling: account and
// date validation, fee resolution, and persistence of the scheduled
// transfer.
package scheduling

import (
	"context"
	goerrors "errors"
	"log"

	"github.com/google/uuid"

	"remessa/internal/config"
	"remessa/internal/errors"
	"remessa/internal/models"
)

type service struct {
	store TransferStore
	fees  FeeResolver
	cfg   config.SchedulerConfig
	clock Clock
}

// NewService creates a scheduling service. A nil clock defaults to the
// system clock.
func NewService(store TransferStore, fees FeeResolver, cfg config.SchedulerConfig, clock Clock) Service {
	if clock == nil {
		clock = SystemClock()
	}
	return &service{
		store: store,
		fees:  fees,
		cfg:   cfg,
		clock: clock,
	}
}

// Schedule validates the request, resolves the fee and persists the
// transfer. Validation runs before any collaborator is touched: the
// same-account check first, then the date range, then fee resolution.
// Nothing is persisted on any failure.
func (s *service) Schedule(ctx context.Context, req ScheduleRequest) (*ScheduleResult, error) {
	if req.SourceAccount == req.DestinationAccount {
		return nil, errors.ErrSameAccount
	}
	if !req.Amount.IsPositive() {
		return nil, errors.ErrInvalidAmount
	}

	now := s.clock.Now()
	days := DaysBetween(now, req.TransferDate)
	if err := ValidateDateRange(days, s.cfg.MaxDays); err != nil {
		return nil, err
	}

	feeValue, err := s.fees.Resolve(ctx, req.Amount, days)
	if err != nil {
		if goerrors.Is(err, errors.ErrNoApplicableTier) {
			// Configuration gap, not user input. Log it so operators
			// can tell it apart from ordinary rejections.
			log.Printf("fee tier gap: no tier covers a distance of %d days", days)
		}
		return nil, err
	}

	transfer := &models.Transfer{
		Reference:          uuid.NewString(),
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		Amount:             req.Amount,
		Fee:                feeValue,
		SchedulingDate:     now,
		TransferDate:       req.TransferDate,
	}
	if err := s.store.Create(ctx, transfer); err != nil {
		return nil, err
	}

	log.Printf("scheduled transfer %s: %s -> %s in %d days, fee %s",
		transfer.Reference, req.SourceAccount, req.DestinationAccount, days, feeValue.StringFixed(2))

	return &ScheduleResult{Transfer: transfer, Days: days}, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]models.Transfer, int64, error) {
	return s.store.List(ctx, limit, offset)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
