package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainerrors "remessa/internal/errors"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		transferDate time.Time
		want         int64
	}{
		{name: "same instant", transferDate: base, want: 0},
		{name: "later the same day", transferDate: base.Add(8 * time.Hour), want: 0},
		{name: "earlier the same day", transferDate: base.Add(-4 * time.Hour), want: 0},
		{name: "next day just after midnight", transferDate: time.Date(2025, 3, 11, 0, 1, 0, 0, time.UTC), want: 1},
		{name: "previous day", transferDate: base.AddDate(0, 0, -1), want: -1},
		{name: "ten days ahead", transferDate: base.AddDate(0, 0, 10), want: 10},
		{name: "fifty one days ahead", transferDate: base.AddDate(0, 0, 51), want: 51},
		{name: "across a month boundary", transferDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), want: 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(base, tt.transferDate))
		})
	}
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name    string
		days    int64
		maxDays int64
		wantErr bool
	}{
		{name: "zero days is allowed", days: 0, maxDays: 50},
		{name: "limit itself is allowed", days: 50, maxDays: 50},
		{name: "inside the window", days: 25, maxDays: 50},
		{name: "negative distance is rejected", days: -1, maxDays: 50, wantErr: true},
		{name: "one past the limit is rejected", days: 51, maxDays: 50, wantErr: true},
		{name: "limit is configurable", days: 15, maxDays: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDateRange(tt.days, tt.maxDays)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
