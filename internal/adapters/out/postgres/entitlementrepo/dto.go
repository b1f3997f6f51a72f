// Package entitlementrepo provides data transfer objects and mapping
// functions for entitlement persistence.
package entitlementrepo

import (
	"time"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntitlementDTO represents the database structure for persisting
// entitlement aggregates. One row per customer.
type EntitlementDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Plan       int
	Active     bool `gorm:"index"`
	ExpiresAt  time.Time
	UsageDate  string
	UsageCount int
	Version    int
}

// TableName specifies the database table name for entitlement entities.
func (EntitlementDTO) TableName() string {
	return "entitlements"
}

func fromDomain(aggregate *entitlement.Entitlement) EntitlementDTO {
	return EntitlementDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Plan:       int(aggregate.Plan()),
		Active:     aggregate.Active(),
		ExpiresAt:  aggregate.ExpiresAt(),
		UsageDate:  aggregate.UsageDate(),
		UsageCount: aggregate.UsageCount(),
		Version:    aggregate.Version(),
	}
}

func toDomain(dto EntitlementDTO) (*entitlement.Entitlement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return entitlement.RestoreEntitlement(
		id,
		customerID,
		entitlement.Plan(dto.Plan),
		dto.Active,
		dto.ExpiresAt,
		dto.UsageDate,
		dto.UsageCount,
		dto.Version,
	)
}
