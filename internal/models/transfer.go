package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer is a scheduled account-to-account transfer with its resolved
// service fee. The fee is computed once at scheduling time and stored
// alongside the request.
type Transfer struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	Reference          string          `gorm:"type:uuid;uniqueIndex;not null" json:"reference"`
	SourceAccount      string          `gorm:"size:10;not null;index" json:"source_account"`
	DestinationAccount string          `gorm:"size:10;not null" json:"destination_account"`
	Amount             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Fee                decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"fee"`
	SchedulingDate     time.Time       `gorm:"not null" json:"scheduling_date"`
	TransferDate       time.Time       `gorm:"not null" json:"transfer_date"`
	CreatedAt          time.Time       `json:"created_at"`
}
