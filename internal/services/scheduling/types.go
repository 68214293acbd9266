package scheduling

import (
	"time"

	"github.com/shopspring/decimal"

	"remessa/internal/models"
)

// ScheduleRequest is a validated request to schedule a transfer. The
// scheduling date is not part of the request; the service takes it from
// its clock.
type ScheduleRequest struct {
	SourceAccount      string
	DestinationAccount string
	Amount             decimal.Decimal
	TransferDate       time.Time
}

// ScheduleResult is the persisted transfer together with the computed
// day-distance the fee was resolved from.
type ScheduleResult struct {
	Transfer *models.Transfer
	Days     int64
}
