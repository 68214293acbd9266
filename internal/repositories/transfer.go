package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"remessa/internal/errors"
	"remessa/internal/models"
)

type TransferRepository struct {
	db *gorm.DB
}

// NewTransferRepository returns the Postgres-backed store for
// scheduled transfers.
func NewTransferRepository(db *gorm.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) Create(ctx context.Context, transfer *models.Transfer) error {
	if err := r.db.WithContext(ctx).Create(transfer).Error; err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

// List returns a page of scheduled transfers, newest first, together
// with the total row count.
func (r *TransferRepository) List(ctx context.Context, limit, offset int) ([]models.Transfer, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Transfer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	var transfers []models.Transfer
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Offset(offset).
		Find(&transfers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfers: %w", err)
	}
	return transfers, total, nil
}

func (r *TransferRepository) GetByID(ctx context.Context, id uint) (*models.Transfer, error) {
	var transfer models.Transfer
	if err := r.db.WithContext(ctx).First(&transfer, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return &transfer, nil
}

func (r *TransferRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Transfer{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete transfer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.ErrTransferNotFound
	}
	return nil
}
