package kpi

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mamadou288/shop-api/internal/dependency/mocks"
	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/mamadou288/shop-api/internal/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func businessFor(t *testing.T, tr entity.TimeRange, orders []entity.OrderFact, customers []entity.CustomerStats) *entity.BusinessKPIs {
	t.Helper()
	src := mocks.NewAnalytics(t)
	src.EXPECT().ListOrders(mock.Anything, mock.Anything, mock.Anything).Return(orders, nil)
	src.EXPECT().ListCustomerStats(mock.Anything).Return(customers, nil)

	m, err := New(src).Business(context.Background(), tr)
	require.NoError(t, err)
	return m
}

func TestBusinessRevenueAndAOV(t *testing.T) {
	u := uuid.New()
	orders := []entity.OrderFact{
		order(u, entity.OrderStatusDelivered, "100.00", testEnd.Add(-10*day)),
		order(u, entity.OrderStatusDelivered, "200.00", testEnd.Add(-20*day)),
		order(u, entity.OrderStatusDelivered, "300.00", testEnd.Add(-40*day)),
		order(u, entity.OrderStatusPending, "999.00", testEnd.Add(-5*day)),
		order(u, entity.OrderStatusCancelled, "80.00", testEnd.Add(-3*day)),
		// outside the period
		order(u, entity.OrderStatusDelivered, "1000.00", testEnd.Add(-120*day)),
	}

	m := businessFor(t, testRange, orders, nil)

	assert.True(t, dec("600.00").Equal(m.TotalRevenue), m.TotalRevenue.String())
	assert.True(t, dec("200.00").Equal(m.AvgOrderValue), m.AvgOrderValue.String())
	assert.Equal(t, 5, m.TotalOrders)
	assert.Equal(t, testRange, m.Period)
}

func TestBusinessStatusBreakdown(t *testing.T) {
	u := uuid.New()
	orders := []entity.OrderFact{
		order(u, entity.OrderStatusDelivered, "10", testEnd.Add(-day)),
		order(u, entity.OrderStatusShipped, "10", testEnd.Add(-day)),
		order(u, entity.OrderStatusShipped, "10", testEnd.Add(-2*day)),
	}

	m := businessFor(t, testRange, orders, nil)

	require.Len(t, m.OrdersByStatus, len(entity.OrderStatuses))
	sum := 0
	for _, st := range entity.OrderStatuses {
		n, ok := m.OrdersByStatus[st]
		assert.True(t, ok, "missing status %s", st)
		sum += n
	}
	assert.Equal(t, m.TotalOrders, sum)
	assert.Equal(t, 2, m.OrdersByStatus[entity.OrderStatusShipped])
	assert.Equal(t, 0, m.OrdersByStatus[entity.OrderStatusPending])
}

func TestBusinessNoDeliveredOrders(t *testing.T) {
	u := uuid.New()
	orders := []entity.OrderFact{
		order(u, entity.OrderStatusPending, "10", testEnd.Add(-day)),
	}

	m := businessFor(t, testRange, orders, nil)

	assert.True(t, m.TotalRevenue.IsZero())
	assert.True(t, m.AvgOrderValue.IsZero())
	assert.True(t, m.CustomerLifetime.IsZero())
	assert.Equal(t, 0.0, m.RepeatPurchaseRate)
	assert.Equal(t, 0.0, m.RevenueGrowth)
}

func TestBusinessEmptyStore(t *testing.T) {
	m := businessFor(t, testRange, nil, nil)

	assert.Equal(t, 0, m.TotalOrders)
	assert.True(t, m.TotalRevenue.IsZero())
	assert.Equal(t, 0.0, m.OrdersGrowth)
	assert.NotEmpty(t, m.RevenueByMonth)
	for _, p := range m.RevenueByMonth {
		assert.True(t, p.Value.IsZero())
	}
}

func TestBusinessGrowth(t *testing.T) {
	u := uuid.New()

	t.Run("previous window empty", func(t *testing.T) {
		orders := []entity.OrderFact{
			order(u, entity.OrderStatusDelivered, "500.00", testEnd.Add(-5*day)),
		}
		m := businessFor(t, testRange, orders, nil)
		assert.Equal(t, 0.0, m.RevenueGrowth)
		assert.Equal(t, 0.0, m.OrdersGrowth)
	})

	t.Run("both windows populated", func(t *testing.T) {
		orders := []entity.OrderFact{
			order(u, entity.OrderStatusDelivered, "150.00", testEnd.Add(-5*day)),
			order(u, entity.OrderStatusPending, "10.00", testEnd.Add(-6*day)),
			order(u, entity.OrderStatusDelivered, "100.00", testEnd.Add(-45*day)),
		}
		m := businessFor(t, testRange, orders, nil)
		assert.Equal(t, 50.0, m.RevenueGrowth)
		assert.Equal(t, 100.0, m.OrdersGrowth)
	})

	t.Run("boundary order counts in both windows", func(t *testing.T) {
		orders := []entity.OrderFact{
			order(u, entity.OrderStatusDelivered, "100.00", testEnd.Add(-30*day)),
		}
		m := businessFor(t, testRange, orders, nil)
		assert.Equal(t, 0.0, m.RevenueGrowth)
		assert.Equal(t, 0.0, m.OrdersGrowth)
	})

	t.Run("windows trail the end of a short period", func(t *testing.T) {
		short := entity.TimeRange{From: testEnd.Add(-7 * day), To: testEnd}
		orders := []entity.OrderFact{
			order(u, entity.OrderStatusDelivered, "300.00", testEnd.Add(-20*day)),
			order(u, entity.OrderStatusDelivered, "100.00", testEnd.Add(-50*day)),
		}
		m := businessFor(t, short, orders, nil)
		assert.Equal(t, 200.0, m.RevenueGrowth)
		assert.True(t, m.TotalRevenue.IsZero())
	})
}

func TestBusinessRevenueByMonth(t *testing.T) {
	u := uuid.New()
	tr := entity.TimeRange{
		From: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	orders := []entity.OrderFact{
		// before the period start but inside its first month
		order(u, entity.OrderStatusDelivered, "40.00", time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)),
		order(u, entity.OrderStatusDelivered, "60.00", time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)),
		order(u, entity.OrderStatusPending, "99.00", time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)),
		// after the period end but inside its last month
		order(u, entity.OrderStatusDelivered, "70.00", time.Date(2024, time.March, 31, 23, 0, 0, 0, time.UTC)),
		// first instant of the next month is excluded
		order(u, entity.OrderStatusDelivered, "5.00", time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
	}

	m := businessFor(t, tr, orders, nil)

	require.Len(t, m.RevenueByMonth, 3)
	assert.Equal(t, "2024-01", m.RevenueByMonth[0].Month)
	assert.Equal(t, "2024-02", m.RevenueByMonth[1].Month)
	assert.Equal(t, "2024-03", m.RevenueByMonth[2].Month)
	assert.True(t, dec("100").Equal(m.RevenueByMonth[0].Value))
	assert.True(t, m.RevenueByMonth[1].Value.IsZero())
	assert.True(t, dec("70").Equal(m.RevenueByMonth[2].Value))

	assert.True(t, dec("60").Equal(m.TotalRevenue))
}

func TestBusinessAllTimeMetricsIgnorePeriod(t *testing.T) {
	customers := []entity.CustomerStats{
		customer(3, 2, "300.00"),
		customer(1, 1, "100.00"),
		customer(1, 0, "0"),
		customer(0, 0, "0"),
	}
	customers[0].IsStaff = true

	a := businessFor(t, testRange, nil, customers)
	b := businessFor(t, entity.TimeRange{From: testEnd.Add(-7 * day), To: testEnd}, nil, customers)

	assert.True(t, dec("200.00").Equal(a.CustomerLifetime), a.CustomerLifetime.String())
	assert.Equal(t, 33.33, a.RepeatPurchaseRate)

	assert.True(t, a.CustomerLifetime.Equal(b.CustomerLifetime))
	assert.Equal(t, a.RepeatPurchaseRate, b.RepeatPurchaseRate)
}

func TestBusinessWindow(t *testing.T) {
	short := entity.TimeRange{
		From: time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	from, to := businessWindow(short, period.Months(short.From, short.To))
	assert.Equal(t, short.To.Add(-60*day), from)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), to)

	long := entity.TimeRange{
		From: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	}
	from, to = businessWindow(long, period.Months(long.From, long.To))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), to)

	from, to = businessWindow(short, nil)
	assert.Equal(t, short.To.Add(-60*day), from)
	assert.Equal(t, short.To, to)
}

func TestBusinessRevenueByMonthUsesPeriodLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	u := uuid.New()
	tr := entity.TimeRange{
		From: time.Date(2024, time.January, 15, 0, 0, 0, 0, paris),
		To:   time.Date(2024, time.February, 15, 0, 0, 0, 0, paris),
	}
	orders := []entity.OrderFact{
		// 31 Jan 23:30 UTC is already February in Paris
		order(u, entity.OrderStatusDelivered, "30.00", time.Date(2024, time.January, 31, 23, 30, 0, 0, time.UTC)),
		order(u, entity.OrderStatusDelivered, "20.00", time.Date(2024, time.January, 31, 22, 59, 59, 0, time.UTC)),
		// 31 Dec 23:00 UTC is 1 Jan in Paris
		order(u, entity.OrderStatusDelivered, "10.00", time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)),
	}

	m := businessFor(t, tr, orders, nil)

	require.Len(t, m.RevenueByMonth, 2)
	assert.True(t, dec("30").Equal(m.RevenueByMonth[0].Value), m.RevenueByMonth[0].Value.String())
	assert.Equal(t, 2, m.RevenueByMonth[0].Count)
	assert.True(t, dec("30").Equal(m.RevenueByMonth[1].Value), m.RevenueByMonth[1].Value.String())
	assert.Equal(t, 1, m.RevenueByMonth[1].Count)
}
