package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"remessa/internal/models"
	"remessa/internal/repositories/cache"
)

const tierTableCacheKey = "fee_tiers:all"

type FeeTierRepository struct {
	db *gorm.DB
}

// NewFeeTierRepository returns the Postgres-backed fee tier store.
func NewFeeTierRepository(db *gorm.DB) *FeeTierRepository {
	return &FeeTierRepository{db: db}
}

// TierForDays returns the first tier whose range contains days,
// ordered by ascending min_days, or nil when no tier covers it.
func (r *FeeTierRepository) TierForDays(ctx context.Context, days int64) (*models.FeeTier, error) {
	var tier models.FeeTier
	err := r.db.WithContext(ctx).
		Where("min_days <= ? AND max_days >= ?", days, days).
		Order("min_days asc").
		First(&tier).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query fee tier: %w", err)
	}
	return &tier, nil
}

// List returns all tiers ordered by ascending min_days.
func (r *FeeTierRepository) List(ctx context.Context) ([]models.FeeTier, error) {
	var tiers []models.FeeTier
	if err := r.db.WithContext(ctx).Order("min_days asc").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to list fee tiers: %w", err)
	}
	return tiers, nil
}

// Replace swaps the whole tier table inside a transaction.
func (r *FeeTierRepository) Replace(ctx context.Context, tiers []models.FeeTier) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FeeTier{}).Error; err != nil {
			return fmt.Errorf("failed to clear fee tiers: %w", err)
		}
		if err := tx.Create(&tiers).Error; err != nil {
			return fmt.Errorf("failed to insert fee tiers: %w", err)
		}
		return nil
	})
}

// CachedFeeTierRepository serves tier lookups from the cached table,
// falling back to the database and repopulating on a miss. The table is
// tiny, so the whole thing is cached rather than individual day keys.
type CachedFeeTierRepository struct {
	inner *FeeTierRepository
	cache *cache.Service
}

// NewCachedFeeTierRepository wraps inner with the shared cache. A nil
// cache is allowed; every read then goes straight to the database.
func NewCachedFeeTierRepository(inner *FeeTierRepository, c *cache.Service) *CachedFeeTierRepository {
	return &CachedFeeTierRepository{inner: inner, cache: c}
}

func (r *CachedFeeTierRepository) TierForDays(ctx context.Context, days int64) (*models.FeeTier, error) {
	tiers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tiers {
		if tiers[i].Covers(days) {
			return &tiers[i], nil
		}
	}
	return nil, nil
}

func (r *CachedFeeTierRepository) List(ctx context.Context) ([]models.FeeTier, error) {
	if r.cache != nil {
		var tiers []models.FeeTier
		hit, err := r.cache.Get(ctx, tierTableCacheKey, &tiers)
		if err == nil && hit {
			return tiers, nil
		}
		// Cache errors degrade to a database read.
	}

	tiers, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		_ = r.cache.Set(ctx, tierTableCacheKey, tiers)
	}
	return tiers, nil
}

func (r *CachedFeeTierRepository) Replace(ctx context.Context, tiers []models.FeeTier) error {
	if err := r.inner.Replace(ctx, tiers); err != nil {
		return err
	}
	if r.cache != nil {
		_ = r.cache.Delete(ctx, tierTableCacheKey)
	}
	return nil
}
