package fee

import (
	"context"

	"remessa/internal/models"
)

// Lookup finds the fee tier covering a given day-distance. A nil tier
// with a nil error means no tier covers it. When ranges overlap the
// lookup must return the tier with the smallest min_days; ValidateTable
// rejects overlapping tables before they ever reach a lookup.
type Lookup interface {
	TierForDays(ctx context.Context, days int64) (*models.FeeTier, error)
}
