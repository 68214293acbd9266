package fee

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "remessa/internal/errors"
	"remessa/internal/models"
)

// tableLookup serves tiers from a slice in order, mirroring the
// ascending min_days order the repository guarantees.
type tableLookup struct {
	tiers []models.FeeTier
}

func (l tableLookup) TierForDays(_ context.Context, days int64) (*models.FeeTier, error) {
	for i := range l.tiers {
		if l.tiers[i].Covers(days) {
			return &l.tiers[i], nil
		}
	}
	return nil, nil
}

type failingLookup struct{}

func (failingLookup) TierForDays(_ context.Context, _ int64) (*models.FeeTier, error) {
	return nil, errors.New("connection refused")
}

func TestCalculator_Resolve_ReferenceTable(t *testing.T) {
	calc := NewCalculator(tableLookup{tiers: DefaultTable()})
	amount := decimal.RequireFromString("100.00")

	tests := []struct {
		name    string
		days    int64
		wantFee string
	}{
		{name: "same day applies percentage plus fixed", days: 0, wantFee: "5.50"},
		{name: "1 to 10 days applies fixed only", days: 5, wantFee: "12.00"},
		{name: "11 to 20 days applies percentage only", days: 15, wantFee: "8.20"},
		{name: "21 to 30 days", days: 25, wantFee: "6.90"},
		{name: "31 to 40 days", days: 35, wantFee: "4.70"},
		{name: "41 to 50 days", days: 45, wantFee: "1.70"},
		{name: "lower tier boundary", days: 11, wantFee: "8.20"},
		{name: "upper tier boundary", days: 50, wantFee: "1.70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := calc.Resolve(context.Background(), amount, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFee, fee.StringFixed(2))
		})
	}
}

func TestCalculator_Resolve_MissingComponentsTreatedAsZero(t *testing.T) {
	amount := decimal.RequireFromString("250.00")

	t.Run("absent percentage yields exactly the fixed amount", func(t *testing.T) {
		calc := NewCalculator(tableLookup{tiers: []models.FeeTier{{
			MinDays:     0,
			MaxDays:     10,
			FixedAmount: decimal.NullDecimal{Decimal: decimal.RequireFromString("12.00"), Valid: true},
		}}})
		fee, err := calc.Resolve(context.Background(), amount, 3)
		require.NoError(t, err)
		assert.True(t, fee.Equal(decimal.RequireFromString("12.00")))
	})

	t.Run("absent fixed amount yields exactly amount times percentage", func(t *testing.T) {
		calc := NewCalculator(tableLookup{tiers: []models.FeeTier{{
			MinDays:    0,
			MaxDays:    10,
			Percentage: decimal.NullDecimal{Decimal: decimal.RequireFromString("0.082"), Valid: true},
		}}})
		fee, err := calc.Resolve(context.Background(), amount, 3)
		require.NoError(t, err)
		assert.True(t, fee.Equal(amount.Mul(decimal.RequireFromString("0.082"))))
	})

	t.Run("both components absent yields zero", func(t *testing.T) {
		calc := NewCalculator(tableLookup{tiers: []models.FeeTier{{MinDays: 0, MaxDays: 10}}})
		fee, err := calc.Resolve(context.Background(), amount, 3)
		require.NoError(t, err)
		assert.True(t, fee.IsZero())
	})
}

func TestCalculator_Resolve_ExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 style inputs must not pick up binary float noise.
	calc := NewCalculator(tableLookup{tiers: []models.FeeTier{{
		MinDays:    0,
		MaxDays:    50,
		Percentage: decimal.NullDecimal{Decimal: decimal.RequireFromString("0.1"), Valid: true},
	}}})

	fee, err := calc.Resolve(context.Background(), decimal.RequireFromString("0.30"), 1)
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.RequireFromString("0.03")), "got %s", fee)
}

func TestCalculator_Resolve_NoApplicableTier(t *testing.T) {
	calc := NewCalculator(tableLookup{tiers: []models.FeeTier{{MinDays: 0, MaxDays: 10}}})

	_, err := calc.Resolve(context.Background(), decimal.NewFromInt(100), 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoApplicableTier)
}

func TestCalculator_Resolve_LookupFailure(t *testing.T) {
	calc := NewCalculator(failingLookup{})

	_, err := calc.Resolve(context.Background(), decimal.NewFromInt(100), 5)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrNoApplicableTier)
}

func TestCalculator_Resolve_OverlapFirstMatchWins(t *testing.T) {
	// Overlapping tables never pass ValidateTable, but if one slips
	// through the resolver must stay deterministic: first tier in
	// lookup order wins.
	calc := NewCalculator(tableLookup{tiers: []models.FeeTier{
		{MinDays: 0, MaxDays: 10, FixedAmount: decimal.NullDecimal{Decimal: decimal.RequireFromString("1.00"), Valid: true}},
		{MinDays: 5, MaxDays: 15, FixedAmount: decimal.NullDecimal{Decimal: decimal.RequireFromString("9.00"), Valid: true}},
	}})

	fee, err := calc.Resolve(context.Background(), decimal.NewFromInt(100), 7)
	require.NoError(t, err)
	assert.Equal(t, "1.00", fee.StringFixed(2))
}

func TestCalculator_Resolve_Idempotent(t *testing.T) {
	calc := NewCalculator(tableLookup{tiers: DefaultTable()})
	amount := decimal.RequireFromString("847.31")

	first, err := calc.Resolve(context.Background(), amount, 27)
	require.NoError(t, err)
	second, err := calc.Resolve(context.Background(), amount, 27)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
