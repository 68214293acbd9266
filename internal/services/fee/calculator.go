// Package fee implements the fee-tier resolution engine: it maps the
// day-distance of a scheduled transfer onto a configured tier table and
// computes the service fee from that tier's percentage and fixed
// components.
package fee

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"remessa/internal/errors"
)

// Calculator resolves service fees against an injected tier lookup.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	lookup Lookup
}

func NewCalculator(lookup Lookup) *Calculator {
	return &Calculator{lookup: lookup}
}

// Resolve computes the fee for a transfer of amount scheduled days
// calendar days ahead:
//
//	fee = amount * percentage + fixedAmount
//
// with an absent percentage or fixed amount contributing zero. All
// arithmetic is exact decimal; rounding is left to the caller. Returns
// ErrNoApplicableTier when no tier covers days.
func (c *Calculator) Resolve(ctx context.Context, amount decimal.Decimal, days int64) (decimal.Decimal, error) {
	tier, err := c.lookup.TierForDays(ctx, days)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fee tier lookup failed: %w", err)
	}
	if tier == nil {
		return decimal.Zero, errors.ErrNoApplicableTier
	}

	feeValue := decimal.Zero
	if tier.Percentage.Valid {
		feeValue = amount.Mul(tier.Percentage.Decimal)
	}
	if tier.FixedAmount.Valid {
		feeValue = feeValue.Add(tier.FixedAmount.Decimal)
	}
	return feeValue, nil
}
