package models

import (
	"github.com/shopspring/decimal"
)

// FeeTier defines the fee rule for a closed, inclusive range of
// day-distances between the scheduling date and the transfer date.
// Percentage and FixedAmount are independently optional; an absent
// component contributes zero to the fee.
type FeeTier struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	MinDays     int64               `gorm:"not null;index" json:"min_days"`
	MaxDays     int64               `gorm:"not null" json:"max_days"`
	Percentage  decimal.NullDecimal `gorm:"type:numeric(8,5)" json:"percentage"`
	FixedAmount decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"fixed_amount"`
}

// Covers reports whether days falls within the tier's inclusive range.
func (t FeeTier) Covers(days int64) bool {
	return days >= t.MinDays && days <= t.MaxDays
}
