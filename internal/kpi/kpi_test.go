package kpi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mamadou288/shop-api/internal/dependency/mocks"
	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testEnd   = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	testRange = entity.TimeRange{From: testEnd.Add(-90 * day), To: testEnd}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func order(user uuid.UUID, status entity.OrderStatus, amount string, at time.Time) entity.OrderFact {
	return entity.OrderFact{
		ID:          uuid.New(),
		UserID:      user,
		Status:      status,
		TotalAmount: dec(amount),
		CreatedAt:   at,
	}
}

func customer(orders, delivered int, revenue string) entity.CustomerStats {
	return entity.CustomerStats{
		UserID:           uuid.New(),
		Email:            "user@example.com",
		CreatedAt:        testEnd.AddDate(-1, 0, 0),
		OrderCount:       orders,
		DeliveredCount:   delivered,
		DeliveredRevenue: dec(revenue),
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	src := mocks.NewAnalytics(t)

	u := uuid.New()
	orders := []entity.OrderFact{
		order(u, entity.OrderStatusDelivered, "50.00", testEnd.Add(-day)),
	}
	customers := []entity.CustomerStats{customer(1, 1, "50.00")}

	src.EXPECT().ListOrders(mock.Anything, mock.Anything, mock.Anything).Return(orders, nil)
	src.EXPECT().ListCustomerStats(mock.Anything).Return(customers, nil)
	src.EXPECT().ListDeliveredItems(mock.Anything).Return(nil, nil)
	src.EXPECT().ListProducts(mock.Anything).Return(nil, nil)
	src.EXPECT().ListCategories(mock.Anything).Return(nil, nil)

	d, err := New(src).Dashboard(ctx, testRange)
	require.NoError(t, err)
	require.NotNil(t, d.Business)
	require.NotNil(t, d.Products)
	require.NotNil(t, d.Users)

	assert.True(t, dec("50").Equal(d.Business.TotalRevenue))
	assert.Equal(t, 1, d.Users.TotalUsers)
	assert.Empty(t, d.Products.TopByRevenue)
}

func TestDashboardStoreError(t *testing.T) {
	src := mocks.NewAnalytics(t)
	storeErr := errors.New("connection refused")
	src.EXPECT().ListOrders(mock.Anything, mock.Anything, mock.Anything).Return(nil, storeErr)

	_, err := New(src).Dashboard(context.Background(), testRange)
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestGrowthPct(t *testing.T) {
	tests := []struct {
		cur, prev string
		want      float64
	}{
		{"500", "0", 0},
		{"0", "0", 0},
		{"150", "100", 50},
		{"50", "100", -50},
		{"100", "300", -66.67},
		{"200", "300", -33.33},
		{"0", "-5", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, growthPct(dec(tt.cur), dec(tt.prev)), "%s vs %s", tt.cur, tt.prev)
	}
}

func TestRatePct(t *testing.T) {
	assert.Equal(t, 0.0, ratePct(3, 0))
	assert.Equal(t, 50.0, ratePct(1, 2))
	assert.Equal(t, 33.33, ratePct(1, 3))
	assert.Equal(t, 66.67, ratePct(2, 3))
	assert.Equal(t, 100.0, ratePct(4, 4))
}

func TestMean(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(mean(dec("10"), 0)))
	assert.True(t, dec("200").Equal(mean(dec("600"), 3)))
	assert.True(t, dec("33.33").Equal(mean(dec("100"), 3)))
}
