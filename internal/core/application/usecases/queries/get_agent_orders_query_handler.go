package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler retrieves an agent's active claims from the
// database. The unclaimed listing response shape is reused; it already
// omits the handoff code.
type GetAgentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentOrdersQueryHandler creates a handler for agent claim queries.
func NewGetAgentOrdersQueryHandler(db *gorm.DB) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{db: db}
}

// Handle returns the non-terminal orders the agent holds on the leg,
// newest first.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
) ([]GetUnclaimedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	claimColumn := "pickup_agent_id"
	if query.Leg() == order.LegDelivery {
		claimColumn = "delivery_agent_id"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			address,
			total_price,
			created_at
		FROM orders
		WHERE `+claimColumn+` = ? AND status NOT IN (?, ?, ?)
		ORDER BY created_at DESC
	`, query.AgentID().Bytes(),
		int(order.StatusDelivered), int(order.StatusCompleted), int(order.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUnclaimedOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			status     int
			address    string
			totalPrice int
			createdAt  time.Time
		)

		if err := rows.Scan(&id, &customerID, &status, &address, &totalPrice, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		custID, err := kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}

		orders = append(orders, GetUnclaimedOrdersQueryResponse{
			ID:         orderID,
			CustomerID: custID,
			Status:     order.Status(status).String(),
			Address:    address,
			TotalPrice: totalPrice,
			CreatedAt:  createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
