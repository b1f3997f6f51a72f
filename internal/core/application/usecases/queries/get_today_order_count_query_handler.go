package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetTodayOrderCountQueryHandler counts today's orders.
type GetTodayOrderCountQueryHandler struct {
	db *gorm.DB
}

// NewGetTodayOrderCountQueryHandler creates a handler for the daily order count.
func NewGetTodayOrderCountQueryHandler(db *gorm.DB) GetTodayOrderCountQueryHandler {
	return GetTodayOrderCountQueryHandler{db: db}
}

// Handle returns how many orders were placed since midnight in the query's
// timezone.
func (h GetTodayOrderCountQueryHandler) Handle(ctx context.Context, query GetTodayOrderCountQuery) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().In(query.Location())
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, query.Location())

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE created_at >= ?
	`, midnight.UTC()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
