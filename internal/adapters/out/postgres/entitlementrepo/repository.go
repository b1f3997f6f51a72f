package entitlementrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEntitlementRepository implements EntitlementRepository using GORM.
type GormEntitlementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEntitlementRepository creates a new GORM entitlement repository.
func NewGormEntitlementRepository(db *gorm.DB, tracker aggregateTracker) *GormEntitlementRepository {
	return &GormEntitlementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new entitlement to the database.
func (r *GormEntitlementRepository) Add(ctx context.Context, aggregate *entitlement.Entitlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing entitlement conditionally on its loaded version.
// Returns errs.ErrVersionConflict when a concurrent writer got there first.
func (r *GormEntitlementRepository) Update(ctx context.Context, aggregate *entitlement.Entitlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EntitlementDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"plan":        dto.Plan,
			"active":      dto.Active,
			"expires_at":  dto.ExpiresAt,
			"usage_date":  dto.UsageDate,
			"usage_count": dto.UsageCount,
			"version":     dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("entitlementID", aggregate.ID().String(), aggregate.Version())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCustomer retrieves the entitlement for a customer.
func (r *GormEntitlementRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*entitlement.Entitlement, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto EntitlementDTO
	if err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerID", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveExpired retrieves entitlements still flagged active whose
// expiry has passed.
func (r *GormEntitlementRepository) GetAllActiveExpired(ctx context.Context, now time.Time) ([]*entitlement.Entitlement, error) {
	var dtos []EntitlementDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "active = ? AND expires_at <= ?", true, now).Error; err != nil {
		return nil, err
	}

	entitlements := make([]*entitlement.Entitlement, 0, len(dtos))
	for _, dto := range dtos {
		ent, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entitlements = append(entitlements, ent)
	}

	return entitlements, nil
}
