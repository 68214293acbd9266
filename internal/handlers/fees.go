package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"remessa/internal/models"
	"remessa/internal/utils/response"
)

// TierLister reads the active fee tier table.
type TierLister interface {
	List(ctx context.Context) ([]models.FeeTier, error)
}

// FeeHandler exposes the configured fee tier table.
type FeeHandler struct {
	tiers TierLister
}

func NewFeeHandler(tiers TierLister) *FeeHandler {
	return &FeeHandler{tiers: tiers}
}

type feeTierResponse struct {
	MinDays     int64   `json:"min_days"`
	MaxDays     int64   `json:"max_days"`
	Percentage  *string `json:"percentage"`
	FixedAmount *string `json:"fixed_amount"`
}

// ListTiers handles GET /api/fees.
func (h *FeeHandler) ListTiers(c *fiber.Ctx) error {
	tiers, err := h.tiers.List(c.Context())
	if err != nil {
		return response.ServerError(c, "failed to load fee tiers")
	}

	items := make([]feeTierResponse, 0, len(tiers))
	for _, t := range tiers {
		item := feeTierResponse{MinDays: t.MinDays, MaxDays: t.MaxDays}
		if t.Percentage.Valid {
			s := t.Percentage.Decimal.String()
			item.Percentage = &s
		}
		if t.FixedAmount.Valid {
			s := t.FixedAmount.Decimal.StringFixed(2)
			item.FixedAmount = &s
		}
		items = append(items, item)
	}
	return response.Success(c, "active fee tiers", items)
}
