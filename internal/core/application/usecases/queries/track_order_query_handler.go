package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackOrderQueryHandler retrieves one order with its line items for the
// owning customer.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle returns the order when it belongs to the querying customer and an
// object-not-found error otherwise.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			address,
			phone,
			total_price,
			payment_method,
			payment_status,
			code,
			created_at
		FROM orders
		WHERE id = ? AND customer_id = ?
	`, query.OrderID().Bytes(), query.CustomerID().Bytes()).Row()

	var (
		id            uuid.UUID
		status        int
		address       string
		phone         string
		totalPrice    int
		paymentMethod int
		paymentStatus int
		code          string
		createdAt     time.Time
	)

	err := row.Scan(&id, &status, &address, &phone, &totalPrice,
		&paymentMethod, &paymentStatus, &code, &createdAt)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	response := TrackOrderQueryResponse{
		ID:            orderID,
		Status:        order.Status(status).String(),
		Address:       address,
		Phone:         phone,
		TotalPrice:    totalPrice,
		PaymentMethod: order.PaymentMethod(paymentMethod).String(),
		PaymentStatus: order.PaymentStatus(paymentStatus).String(),
		Code:          code,
		CreatedAt:     createdAt,
		Items:         make([]TrackedItemResponse, 0),
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, unit_price, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item TrackedItemResponse
		if err := itemRows.Scan(&item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		response.Items = append(response.Items, item)
	}

	if err := itemRows.Err(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return response, nil
}
