// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column carries the optimistic concurrency token; every
// successful update bumps it by one.
type OrderDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID     `gorm:"type:uuid;index"`
	PickupAgentID   *uuid.UUID    `gorm:"type:uuid;index"`
	DeliveryAgentID *uuid.UUID    `gorm:"type:uuid;index"`
	VendorID        *uuid.UUID    `gorm:"type:uuid;index"`
	Items           []LineItemDTO `gorm:"foreignKey:OrderID;references:ID"`
	Address         string
	Phone           string
	Code            string
	PaymentMethod   int
	PaymentStatus   int
	TotalPrice      int
	Status          int       `gorm:"index"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
	Version         int
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one service line of an order. Line items are
// written at placement and never updated.
type LineItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	UnitPrice int
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	toRaw := func(id *kernel.UUID) *uuid.UUID {
		if id == nil {
			return nil
		}
		raw := id.Bytes()
		return &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		PickupAgentID:   toRaw(aggregate.PickupAgent()),
		DeliveryAgentID: toRaw(aggregate.DeliveryAgent()),
		VendorID:        toRaw(aggregate.Vendor()),
		Items:           items,
		Address:         aggregate.Address(),
		Phone:           aggregate.Phone().String(),
		Code:            aggregate.Code().String(),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		TotalPrice:      aggregate.TotalPrice(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	fromRaw := func(raw *uuid.UUID) (*kernel.UUID, error) {
		if raw == nil {
			return nil, nil
		}
		id, err := kernel.UUIDFromBytes((*raw)[:])
		if err != nil {
			return nil, err
		}
		return &id, nil
	}

	pickupAgentID, err := fromRaw(dto.PickupAgentID)
	if err != nil {
		return nil, err
	}
	deliveryAgentID, err := fromRaw(dto.DeliveryAgentID)
	if err != nil {
		return nil, err
	}
	vendorID, err := fromRaw(dto.VendorID)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	code, err := order.HandoffCodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewLineItem(itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		dto.Address,
		phone,
		order.PaymentMethod(dto.PaymentMethod),
		order.PaymentStatus(dto.PaymentStatus),
		dto.TotalPrice,
		code,
		order.Status(dto.Status),
		pickupAgentID,
		deliveryAgentID,
		vendorID,
		dto.CreatedAt,
		dto.Version,
	)
}
