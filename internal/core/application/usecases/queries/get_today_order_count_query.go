package queries

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetTodayOrderCountQueryIsNotConstructed = errors.New(
	"GetTodayOrderCountQuery must be created via NewGetTodayOrderCountQuery constructor",
)

// GetTodayOrderCountQuery counts the orders placed since midnight in the
// given timezone. Used on the admin dashboard.
type GetTodayOrderCountQuery struct { //nolint:recvcheck //using for validation
	loc *time.Location

	guard guard.ConstructorGuard
}

// NewGetTodayOrderCountQuery creates a query for today's order count.
func NewGetTodayOrderCountQuery(loc *time.Location) (GetTodayOrderCountQuery, error) {
	query := GetTodayOrderCountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLocation(loc); err != nil {
		return GetTodayOrderCountQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTodayOrderCountQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayOrderCountQueryIsNotConstructed)
}

// Location returns the timezone that defines "today".
func (q GetTodayOrderCountQuery) Location() *time.Location {
	return q.loc
}

func (q *GetTodayOrderCountQuery) setLocation(loc *time.Location) error {
	if loc == nil {
		return errs.NewValueIsRequiredError("location")
	}
	q.loc = loc
	return nil
}
