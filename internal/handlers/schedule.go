package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"remessa/internal/models"
	"remessa/internal/services/scheduling"
	"remessa/internal/utils/pagination"
	"remessa/internal/utils/response"
	"remessa/internal/validation"
)

const dateLayout = "2006-01-02"

// ScheduleHandler exposes the transfer scheduling endpoints.
type ScheduleHandler struct {
	service scheduling.Service
}

func NewScheduleHandler(s scheduling.Service) *ScheduleHandler {
	return &ScheduleHandler{service: s}
}

type scheduleRequest struct {
	SourceAccount      string          `json:"source_account" validate:"required,len=10,numeric"`
	DestinationAccount string          `json:"destination_account" validate:"required,len=10,numeric"`
	Amount             decimal.Decimal `json:"amount"`
	TransferDate       string          `json:"transfer_date" validate:"required,datetime=2006-01-02"`
}

type transferResponse struct {
	ID                 uint   `json:"id"`
	Reference          string `json:"reference"`
	SourceAccount      string `json:"source_account"`
	DestinationAccount string `json:"destination_account"`
	Amount             string `json:"amount"`
	Fee                string `json:"fee"`
	SchedulingDate     string `json:"scheduling_date"`
	TransferDate       string `json:"transfer_date"`
}

func newTransferResponse(t *models.Transfer) transferResponse {
	return transferResponse{
		ID:                 t.ID,
		Reference:          t.Reference,
		SourceAccount:      t.SourceAccount,
		DestinationAccount: t.DestinationAccount,
		Amount:             t.Amount.StringFixed(2),
		Fee:                t.Fee.StringFixed(2),
		SchedulingDate:     t.SchedulingDate.UTC().Format(dateLayout),
		TransferDate:       t.TransferDate.UTC().Format(dateLayout),
	}
}

// CreateSchedule handles POST /api/schedules.
func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		return response.DomainErr(c, err)
	}

	transferDate, err := time.ParseInLocation(dateLayout, req.TransferDate, time.UTC)
	if err != nil {
		return response.BadRequest(c, "transfer_date must be a date in the form 2006-01-02")
	}

	result, err := h.service.Schedule(c.Context(), scheduling.ScheduleRequest{
		SourceAccount:      req.SourceAccount,
		DestinationAccount: req.DestinationAccount,
		Amount:             req.Amount,
		TransferDate:       transferDate,
	})
	if err != nil {
		return response.DomainErr(c, err)
	}

	return response.Created(c, "transfer scheduled", newTransferResponse(result.Transfer))
}

// ListSchedules handles GET /api/schedules.
func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	transfers, total, err := h.service.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "failed to list scheduled transfers")
	}
	p.Total = total

	items := make([]transferResponse, 0, len(transfers))
	for i := range transfers {
		items = append(items, newTransferResponse(&transfers[i]))
	}
	return c.JSON(pagination.Response(p, items))
}

// DeleteSchedule handles DELETE /api/schedules/:id.
func (h *ScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "invalid transfer id")
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		return response.DomainErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
