package kpi

import (
	"context"
	"time"

	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/mamadou288/shop-api/internal/period"
	"github.com/shopspring/decimal"
)

// Business computes revenue and order KPIs for tr.
//
// Revenue, order counts and AOV are scoped to tr. The monthly series uses
// whole calendar months, the growth windows trail tr.To, and CLV and repeat
// purchase rate are all-time.
func (e *Engine) Business(ctx context.Context, tr entity.TimeRange) (*entity.BusinessKPIs, error) {
	buckets := period.Months(tr.From, tr.To)
	from, to := businessWindow(tr, buckets)

	orders, err := e.src.ListOrders(ctx, from, to)
	if err != nil {
		return nil, wrap("list orders", err)
	}
	customers, err := e.src.ListCustomerStats(ctx)
	if err != nil {
		return nil, wrap("list customer stats", err)
	}

	m := summarizeOrders(orders, tr)
	m.Period = tr
	m.RevenueByMonth = revenueByMonth(orders, buckets)
	m.RevenueGrowth, m.OrdersGrowth = momGrowth(orders, tr.To)
	m.CustomerLifetime = customerLifetimeValue(customers)
	m.RepeatPurchaseRate = repeatPurchaseRate(customers)
	return m, nil
}

// businessWindow spans the period, its monthly buckets and both growth windows.
func businessWindow(tr entity.TimeRange, buckets []period.Bucket) (from, to time.Time) {
	from, to = tr.From, tr.To
	if len(buckets) > 0 {
		if buckets[0].Start.Before(from) {
			from = buckets[0].Start
		}
		if last := buckets[len(buckets)-1].End; last.After(to) {
			to = last
		}
	}
	if prev := tr.To.Add(-2 * growthWindow); prev.Before(from) {
		from = prev
	}
	return from, to
}

func summarizeOrders(orders []entity.OrderFact, tr entity.TimeRange) *entity.BusinessKPIs {
	m := &entity.BusinessKPIs{
		TotalRevenue:   decimal.Zero,
		AvgOrderValue:  decimal.Zero,
		OrdersByStatus: make(map[entity.OrderStatus]int, len(entity.OrderStatuses)),
	}
	for _, st := range entity.OrderStatuses {
		m.OrdersByStatus[st] = 0
	}

	delivered := 0
	for i := range orders {
		o := &orders[i]
		if !tr.Contains(o.CreatedAt) {
			continue
		}
		m.TotalOrders++
		m.OrdersByStatus[o.Status]++
		if o.Delivered() {
			m.TotalRevenue = m.TotalRevenue.Add(o.TotalAmount)
			delivered++
		}
	}
	m.AvgOrderValue = mean(m.TotalRevenue, delivered)
	return m
}

// revenueByMonth sums delivered revenue per bucket over every order, not only
// those inside the period.
func revenueByMonth(orders []entity.OrderFact, buckets []period.Bucket) []entity.MonthlyValue {
	series := make([]entity.MonthlyValue, len(buckets))
	for i, b := range buckets {
		series[i] = entity.MonthlyValue{Month: b.Label, Value: decimal.Zero}
	}
	ix := period.NewIndex(buckets)
	for i := range orders {
		o := &orders[i]
		if !o.Delivered() {
			continue
		}
		if j, ok := ix.Find(o.CreatedAt); ok {
			series[j].Value = series[j].Value.Add(o.TotalAmount)
			series[j].Count++
		}
	}
	return series
}

// momGrowth compares [end-30d, end] with [end-60d, end-30d]. Both windows are
// inclusive so an order exactly at end-30d counts in both.
func momGrowth(orders []entity.OrderFact, end time.Time) (revenue, count float64) {
	cur := entity.TimeRange{From: end.Add(-growthWindow), To: end}
	prev := entity.TimeRange{From: end.Add(-2 * growthWindow), To: cur.From}

	curRev, prevRev := decimal.Zero, decimal.Zero
	curN, prevN := 0, 0
	for i := range orders {
		o := &orders[i]
		if cur.Contains(o.CreatedAt) {
			curN++
			if o.Delivered() {
				curRev = curRev.Add(o.TotalAmount)
			}
		}
		if prev.Contains(o.CreatedAt) {
			prevN++
			if o.Delivered() {
				prevRev = prevRev.Add(o.TotalAmount)
			}
		}
	}
	return growthPct(curRev, prevRev), growthPct(decimal.NewFromInt(int64(curN)), decimal.NewFromInt(int64(prevN)))
}

// customerLifetimeValue is all-time delivered revenue per customer with a delivered order.
func customerLifetimeValue(customers []entity.CustomerStats) decimal.Decimal {
	revenue := decimal.Zero
	paying := 0
	for i := range customers {
		c := &customers[i]
		if c.DeliveredCount == 0 {
			continue
		}
		revenue = revenue.Add(c.DeliveredRevenue)
		paying++
	}
	return mean(revenue, paying)
}

// repeatPurchaseRate is the share of customers with any order that placed at least two.
func repeatPurchaseRate(customers []entity.CustomerStats) float64 {
	buyers, repeat := 0, 0
	for i := range customers {
		n := customers[i].OrderCount
		if n >= 1 {
			buyers++
		}
		if n >= repeatMinOrders {
			repeat++
		}
	}
	return ratePct(repeat, buyers)
}
