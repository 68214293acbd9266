package fee

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"remessa/internal/errors"
	"remessa/internal/models"
)

// ValidateTable checks that tiers form a clean partition of the day
// range [0, maxDays]: every tier well-formed, no two ranges
// overlapping, and no day in the range left uncovered. It is run at
// seed time so a broken table fails fast instead of surfacing as
// per-request resolution errors.
func ValidateTable(tiers []models.FeeTier, maxDays int64) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: table is empty", errors.ErrInvalidTierTable)
	}

	sorted := make([]models.FeeTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinDays < sorted[j].MinDays })

	for _, t := range sorted {
		if t.MinDays < 0 {
			return fmt.Errorf("%w: tier [%d,%d] has a negative lower bound", errors.ErrInvalidTierTable, t.MinDays, t.MaxDays)
		}
		if t.MinDays > t.MaxDays {
			return fmt.Errorf("%w: tier [%d,%d] has min above max", errors.ErrInvalidTierTable, t.MinDays, t.MaxDays)
		}
		if t.Percentage.Valid && t.Percentage.Decimal.IsNegative() {
			return fmt.Errorf("%w: tier [%d,%d] has a negative percentage", errors.ErrInvalidTierTable, t.MinDays, t.MaxDays)
		}
		if t.FixedAmount.Valid && t.FixedAmount.Decimal.IsNegative() {
			return fmt.Errorf("%w: tier [%d,%d] has a negative fixed amount", errors.ErrInvalidTierTable, t.MinDays, t.MaxDays)
		}
	}

	if sorted[0].MinDays != 0 {
		return fmt.Errorf("%w: days [0,%d] are uncovered", errors.ErrInvalidTierTable, sorted[0].MinDays-1)
	}
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.MinDays <= prev.MaxDays {
			return fmt.Errorf("%w: tiers [%d,%d] and [%d,%d] overlap", errors.ErrInvalidTierTable,
				prev.MinDays, prev.MaxDays, cur.MinDays, cur.MaxDays)
		}
		if cur.MinDays > prev.MaxDays+1 {
			return fmt.Errorf("%w: days [%d,%d] are uncovered", errors.ErrInvalidTierTable,
				prev.MaxDays+1, cur.MinDays-1)
		}
	}
	if last := sorted[len(sorted)-1]; last.MaxDays < maxDays {
		return fmt.Errorf("%w: days [%d,%d] are uncovered", errors.ErrInvalidTierTable, last.MaxDays+1, maxDays)
	}

	return nil
}

// DefaultTable returns the reference tier table shipped with the
// service, covering day-distances 0 through 50.
func DefaultTable() []models.FeeTier {
	dec := func(s string) decimal.NullDecimal {
		return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
	}
	none := decimal.NullDecimal{}

	return []models.FeeTier{
		{MinDays: 0, MaxDays: 0, Percentage: dec("0.025"), FixedAmount: dec("3.00")},
		{MinDays: 1, MaxDays: 10, Percentage: none, FixedAmount: dec("12.00")},
		{MinDays: 11, MaxDays: 20, Percentage: dec("0.082"), FixedAmount: none},
		{MinDays: 21, MaxDays: 30, Percentage: dec("0.069"), FixedAmount: none},
		{MinDays: 31, MaxDays: 40, Percentage: dec("0.047"), FixedAmount: none},
		{MinDays: 41, MaxDays: 50, Percentage: dec("0.017"), FixedAmount: none},
	}
}
