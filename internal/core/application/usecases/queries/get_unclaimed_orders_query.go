package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetUnclaimedOrdersQueryIsNotConstructed = errors.New(
	"GetUnclaimedOrdersQuery must be created via NewGetUnclaimedOrdersQuery constructor",
)

// GetUnclaimedOrdersQuery retrieves orders whose leg is open for claiming,
// newest first. The response never carries the handoff code; agents browse
// this listing before they hold custody of anything.
//
// Example:
//
//	query, _ := NewGetUnclaimedOrdersQuery(order.LegPickup)
//	handler := NewGetUnclaimedOrdersQueryHandler(db)
//
//	seq, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for deal, err := range seq {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%s at %s\n", deal.ID, deal.Address)
//	}
type GetUnclaimedOrdersQuery struct { //nolint:recvcheck //using for validation
	leg order.Leg

	guard guard.ConstructorGuard
}

// NewGetUnclaimedOrdersQuery creates a query for open deals on a leg.
func NewGetUnclaimedOrdersQuery(leg order.Leg) (GetUnclaimedOrdersQuery, error) {
	query := GetUnclaimedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setLeg(leg); err != nil {
		return GetUnclaimedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnclaimedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedOrdersQueryIsNotConstructed)
}

// Leg returns which leg's open deals are requested.
func (q GetUnclaimedOrdersQuery) Leg() order.Leg {
	return q.leg
}

func (q *GetUnclaimedOrdersQuery) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	q.leg = leg
	return nil
}

// GetUnclaimedOrdersQueryResponse is one open deal. It deliberately omits
// the handoff code.
type GetUnclaimedOrdersQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Status     string
	Address    string
	TotalPrice int
	CreatedAt  time.Time
}
