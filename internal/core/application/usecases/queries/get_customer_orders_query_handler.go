package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history from
// the database.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest first, split into current
// and past by terminal status.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) (GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}

	response := GetCustomerOrdersQueryResponse{
		Current: make([]CustomerOrderResponse, 0),
		Past:    make([]CustomerOrderResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			address,
			total_price,
			payment_method,
			payment_status,
			code,
			created_at
		FROM orders
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uuid.UUID
			status        int
			address       string
			totalPrice    int
			paymentMethod int
			paymentStatus int
			code          string
			createdAt     time.Time
		)

		if err := rows.Scan(&id, &status, &address, &totalPrice,
			&paymentMethod, &paymentStatus, &code, &createdAt); err != nil {
			return GetCustomerOrdersQueryResponse{}, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return GetCustomerOrdersQueryResponse{}, err
		}

		resp := CustomerOrderResponse{
			ID:            orderID,
			Status:        order.Status(status).String(),
			Address:       address,
			TotalPrice:    totalPrice,
			PaymentMethod: order.PaymentMethod(paymentMethod).String(),
			PaymentStatus: order.PaymentStatus(paymentStatus).String(),
			Code:          code,
			CreatedAt:     createdAt,
		}

		if order.Status(status).IsTerminal() {
			response.Past = append(response.Past, resp)
		} else {
			response.Current = append(response.Current, resp)
		}
	}

	if err := rows.Err(); err != nil {
		return GetCustomerOrdersQueryResponse{}, err
	}

	return response, nil
}
