package queries_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnclaimedOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetUnclaimedOrdersQuery(order.LegPickup)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.LegPickup, query.Leg())
}

func TestNewGetUnclaimedOrdersQuery_InvalidLeg(t *testing.T) {
	_, err := queries.NewGetUnclaimedOrdersQuery(order.LegUnknown)
	require.Error(t, err)
}

func TestGetUnclaimedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnclaimedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnclaimedOrdersQueryIsNotConstructed)
}

func TestNewGetCustomerOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetCustomerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}

func TestNewTrackOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewTrackOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestTrackOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.TrackOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrTrackOrderQueryIsNotConstructed)
}

func TestNewGetAgentOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAgentOrdersQuery(kernel.NewUUID(), order.LegDelivery)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.LegDelivery, query.Leg())
}

func TestNewGetAgentOrdersQuery_InvalidLeg(t *testing.T) {
	_, err := queries.NewGetAgentOrdersQuery(kernel.NewUUID(), order.Leg(99))
	require.Error(t, err)
}

func TestNewGetVendorOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetVendorOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetTodayOrderCountQuery_Valid(t *testing.T) {
	query, err := queries.NewGetTodayOrderCountQuery(time.UTC)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetTodayOrderCountQuery_NilLocation(t *testing.T) {
	_, err := queries.NewGetTodayOrderCountQuery(nil)
	require.Error(t, err)
}
