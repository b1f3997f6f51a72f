package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler retrieves a vendor's processing queue from
// the database.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor queue queries.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle returns the vendor's orders in Washing or Washed status, newest
// first.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]GetVendorOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			address,
			code,
			created_at
		FROM orders
		WHERE vendor_id = ? AND status IN (?, ?)
		ORDER BY created_at DESC
	`, query.VendorID().Bytes(), int(order.StatusWashing), int(order.StatusWashed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetVendorOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			status    int
			address   string
			code      string
			createdAt time.Time
		)

		if err := rows.Scan(&id, &status, &address, &code, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, GetVendorOrdersQueryResponse{
			ID:        orderID,
			Status:    order.Status(status).String(),
			Address:   address,
			Code:      code,
			CreatedAt: createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
