package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/entitlement"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricing(t *testing.T) services.PricingService {
	t.Helper()
	svc, err := services.NewPricingService(time.UTC)
	require.NoError(t, err)
	return svc
}

func activeEntitlement(t *testing.T, now time.Time) *entitlement.Entitlement {
	t.Helper()
	e, err := entitlement.NewEntitlement(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, e.Activate(entitlement.PlanMonthly, now))
	return e
}

func items(t *testing.T, quantity int) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem("Wash & Fold", 100, quantity)
	require.NoError(t, err)
	return []order.LineItem{item}
}

func TestPricingService(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should price a cash order as items plus delivery fee", func(t *testing.T) {
		quote, err := testPricing(t).Price(nil, items(t, 1), 20,
			order.PaymentMethodCOD, false, now)

		require.NoError(t, err)
		assert.Equal(t, 120, quote.TotalPrice)
		assert.Equal(t, order.PaymentMethodCOD, quote.PaymentMethod)
		assert.Equal(t, order.PaymentStatusNotPaid, quote.PaymentStatus)
		assert.False(t, quote.FreeOrder)
	})

	t.Run("should mark a confirmed online payment as paid", func(t *testing.T) {
		quote, err := testPricing(t).Price(nil, items(t, 1), 20,
			order.PaymentMethodOnline, true, now)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentStatusPaid, quote.PaymentStatus)
	})

	t.Run("should quote a free order for an active subscriber", func(t *testing.T) {
		ent := activeEntitlement(t, now)

		quote, err := testPricing(t).Price(ent, items(t, 1), 20,
			order.PaymentMethodCOD, false, now)

		require.NoError(t, err)
		assert.Equal(t, 0, quote.TotalPrice)
		assert.Equal(t, order.PaymentMethodSubscription, quote.PaymentMethod)
		assert.Equal(t, order.PaymentStatusFreeSubscribed, quote.PaymentStatus)
		assert.True(t, quote.FreeOrder)
		assert.Equal(t, 1, ent.UsageCount())
	})

	t.Run("should reject more than one unit under a subscription", func(t *testing.T) {
		ent := activeEntitlement(t, now)

		_, err := testPricing(t).Price(ent, items(t, 2), 20,
			order.PaymentMethodCOD, false, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, entitlement.ErrQuantityExceeded)
		assert.Equal(t, 0, ent.UsageCount())
	})

	t.Run("should fall back to paid pricing past the daily cap", func(t *testing.T) {
		ent := activeEntitlement(t, now)
		svc := testPricing(t)
		for i := 0; i < entitlement.DailyFreeOrderCap; i++ {
			_, err := svc.Price(ent, items(t, 1), 20, order.PaymentMethodCOD, false, now)
			require.NoError(t, err)
		}

		quote, err := svc.Price(ent, items(t, 1), 20, order.PaymentMethodCOD, false, now)

		require.NoError(t, err)
		assert.False(t, quote.FreeOrder)
		assert.Equal(t, 120, quote.TotalPrice)
		assert.Equal(t, order.PaymentStatusNotPaid, quote.PaymentStatus)
	})

	t.Run("should grant a fresh allowance on the next day", func(t *testing.T) {
		ent := activeEntitlement(t, now)
		svc := testPricing(t)
		for i := 0; i < entitlement.DailyFreeOrderCap; i++ {
			_, err := svc.Price(ent, items(t, 1), 20, order.PaymentMethodCOD, false, now)
			require.NoError(t, err)
		}

		quote, err := svc.Price(ent, items(t, 1), 20,
			order.PaymentMethodCOD, false, now.Add(24*time.Hour))

		require.NoError(t, err)
		assert.True(t, quote.FreeOrder)
		assert.Equal(t, 1, ent.UsageCount())
	})

	t.Run("should ignore a lapsed subscription", func(t *testing.T) {
		ent := activeEntitlement(t, now)
		later := now.Add(60 * 24 * time.Hour)

		quote, err := testPricing(t).Price(ent, items(t, 1), 20,
			order.PaymentMethodCOD, false, later)

		require.NoError(t, err)
		assert.False(t, quote.FreeOrder)
		assert.Equal(t, 120, quote.TotalPrice)
	})

	t.Run("should reject the subscription method for a paid order", func(t *testing.T) {
		_, err := testPricing(t).Price(nil, items(t, 1), 20,
			order.PaymentMethodSubscription, false, now)

		require.Error(t, err)
	})
}
