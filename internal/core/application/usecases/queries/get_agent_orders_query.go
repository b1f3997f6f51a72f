package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves the orders an agent currently holds on a
// leg. Listings never include the handoff code; the customer or vendor
// presents it at the handoff.
type GetAgentOrdersQuery struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	leg     order.Leg

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for an agent's claimed orders.
func NewGetAgentOrdersQuery(agentID kernel.UUID, leg order.Leg) (GetAgentOrdersQuery, error) {
	query := GetAgentOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setAgentID(agentID),
		query.setLeg(leg),
	); err != nil {
		return GetAgentOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// AgentID returns the claiming agent.
func (q GetAgentOrdersQuery) AgentID() kernel.UUID {
	return q.agentID
}

// Leg returns which leg's claims are requested.
func (q GetAgentOrdersQuery) Leg() order.Leg {
	return q.leg
}

func (q *GetAgentOrdersQuery) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	q.agentID = agentID
	return nil
}

func (q *GetAgentOrdersQuery) setLeg(leg order.Leg) error {
	if err := leg.Validate(); err != nil {
		return err
	}
	q.leg = leg
	return nil
}
