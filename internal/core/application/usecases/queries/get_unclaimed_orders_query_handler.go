package queries

import (
	"context"
	"iter"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnclaimedOrdersQueryHandler streams open deals from the database.
// The returned sequence is lazy and restartable: the query runs when the
// sequence is ranged over, and ranging again re-runs it, so a consumer that
// lost a claim race can simply iterate once more to see the current open
// set.
type GetUnclaimedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnclaimedOrdersQueryHandler creates a handler for open deal queries.
func NewGetUnclaimedOrdersQueryHandler(db *gorm.DB) GetUnclaimedOrdersQueryHandler {
	return GetUnclaimedOrdersQueryHandler{db: db}
}

// Handle returns the open deals for the query's leg, newest first. Row
// errors surface through the sequence's second value.
func (h GetUnclaimedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnclaimedOrdersQuery,
) (iter.Seq2[GetUnclaimedOrdersQueryResponse, error], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var condition string
	var statuses []any
	switch query.Leg() {
	case order.LegPickup:
		condition = "pickup_agent_id IS NULL AND status IN (?, ?)"
		statuses = []any{int(order.StatusScheduled), int(order.StatusInProgress)}
	case order.LegDelivery:
		condition = "delivery_agent_id IS NULL AND status = ?"
		statuses = []any{int(order.StatusWashed)}
	}

	return func(yield func(GetUnclaimedOrdersQueryResponse, error) bool) {
		rows, err := h.db.WithContext(ctx).Raw(`
			SELECT
				id,
				customer_id,
				status,
				address,
				total_price,
				created_at
			FROM orders
			WHERE `+condition+`
			ORDER BY created_at DESC
		`, statuses...).Rows()
		if err != nil {
			yield(GetUnclaimedOrdersQueryResponse{}, err)
			return
		}
		defer rows.Close()

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
				yield(GetUnclaimedOrdersQueryResponse{}, err)
				return
			}

			orderID, err := kernel.UUIDFromBytes(id[:])
			if err != nil {
				yield(GetUnclaimedOrdersQueryResponse{}, err)
				return
			}
			custID, err := kernel.UUIDFromBytes(customerID[:])
			if err != nil {
				yield(GetUnclaimedOrdersQueryResponse{}, err)
				return
			}

			resp := GetUnclaimedOrdersQueryResponse{
				ID:         orderID,
				CustomerID: custID,
				Status:     order.Status(status).String(),
				Address:    address,
				TotalPrice: totalPrice,
				CreatedAt:  createdAt,
			}
			if !yield(resp, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(GetUnclaimedOrdersQueryResponse{}, err)
		}
	}, nil
}
