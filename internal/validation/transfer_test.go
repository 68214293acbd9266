package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remessa/internal/errors"
)

type accountFields struct {
	SourceAccount      string `validate:"required,len=10,numeric"`
	DestinationAccount string `validate:"required,len=10,numeric"`
	TransferDate       string `validate:"required,datetime=2006-01-02"`
}

func TestStruct(t *testing.T) {
	valid := accountFields{
		SourceAccount:      "1234567890",
		DestinationAccount: "0987654321",
		TransferDate:       "2025-03-15",
	}

	t.Run("valid request passes", func(t *testing.T) {
		require.NoError(t, Struct(valid))
	})

	tests := []struct {
		name    string
		mutate  func(*accountFields)
		wantMsg string
	}{
		{
			name:    "missing source account",
			mutate:  func(f *accountFields) { f.SourceAccount = "" },
			wantMsg: "required",
		},
		{
			name:    "short account number",
			mutate:  func(f *accountFields) { f.SourceAccount = "12345" },
			wantMsg: "10 digit account number",
		},
		{
			name:    "non numeric account number",
			mutate:  func(f *accountFields) { f.DestinationAccount = "12345abcde" },
			wantMsg: "10 digit account number",
		},
		{
			name:    "wrong date layout",
			mutate:  func(f *accountFields) { f.TransferDate = "15/03/2025" },
			wantMsg: "2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)

			err := Struct(f)
			require.Error(t, err)

			var derr *errors.DomainError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, "VALIDATION_ERROR", derr.Code)
			assert.Contains(t, derr.Message, tt.wantMsg)
		})
	}
}
