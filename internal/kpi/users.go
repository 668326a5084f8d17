package kpi

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/mamadou288/shop-api/internal/period"
)

// Users computes customer base KPIs for tr. Staff and superuser accounts are
// excluded from counts, series, top customers and segments. Retention uses
// every order in the period.
func (e *Engine) Users(ctx context.Context, tr entity.TimeRange) (*entity.UserKPIs, error) {
	customers, err := e.src.ListCustomerStats(ctx)
	if err != nil {
		return nil, wrap("list customer stats", err)
	}
	orders, err := e.src.ListOrders(ctx, tr.From, tr.To)
	if err != nil {
		return nil, wrap("list orders", err)
	}

	privileged := make(map[uuid.UUID]bool, len(customers))
	m := &entity.UserKPIs{Period: tr}
	var regular []entity.CustomerStats
	for i := range customers {
		c := &customers[i]
		if c.Privileged() {
			privileged[c.UserID] = true
			continue
		}
		regular = append(regular, *c)
		m.TotalUsers++
		if tr.Contains(c.CreatedAt) {
			m.NewUsers++
		}
		m.Segments = addToSegment(m.Segments, c.OrderCount)
	}

	m.ActiveUsers = activeUsers(orders, tr, privileged)
	m.RetentionRate = retentionRate(orders, tr)
	m.UsersByMonth = usersByMonth(regular, period.Months(tr.From, tr.To))
	m.TopCustomers = topCustomers(regular)
	return m, nil
}

func addToSegment(s entity.UserSegments, orders int) entity.UserSegments {
	switch {
	case orders == 0:
		s.New++
	case orders == 1:
		s.OneTime++
	case orders < loyalMinOrders:
		s.Repeat++
	default:
		s.Loyal++
	}
	return s
}

// activeUsers counts distinct non-privileged users with an order in tr.
func activeUsers(orders []entity.OrderFact, tr entity.TimeRange, privileged map[uuid.UUID]bool) int {
	active := make(map[uuid.UUID]struct{})
	for i := range orders {
		o := &orders[i]
		if !tr.Contains(o.CreatedAt) || privileged[o.UserID] {
			continue
		}
		active[o.UserID] = struct{}{}
	}
	return len(active)
}

// retentionRate splits tr at its midpoint into [From, mid) and [mid, To] and
// returns the share of first-half buyers that also bought in the second half.
func retentionRate(orders []entity.OrderFact, tr entity.TimeRange) float64 {
	mid := tr.From.Add(tr.To.Sub(tr.From) / 2)
	first := make(map[uuid.UUID]struct{})
	second := make(map[uuid.UUID]struct{})
	for i := range orders {
		o := &orders[i]
		switch {
		case o.CreatedAt.Before(tr.From) || o.CreatedAt.After(tr.To):
		case o.CreatedAt.Before(mid):
			first[o.UserID] = struct{}{}
		default:
			second[o.UserID] = struct{}{}
		}
	}
	retained := 0
	for id := range first {
		if _, ok := second[id]; ok {
			retained++
		}
	}
	return ratePct(retained, len(first))
}

// usersByMonth counts registrations per bucket.
func usersByMonth(customers []entity.CustomerStats, buckets []period.Bucket) []entity.MonthlyValue {
	series := make([]entity.MonthlyValue, len(buckets))
	for i, b := range buckets {
		series[i].Month = b.Label
	}
	ix := period.NewIndex(buckets)
	for i := range customers {
		if j, ok := ix.Find(customers[i].CreatedAt); ok {
			series[j].Count++
		}
	}
	return series
}

// topCustomers ranks customers with delivered orders by delivered spend.
func topCustomers(customers []entity.CustomerStats) []entity.CustomerSpend {
	var out []entity.CustomerSpend
	for i := range customers {
		c := &customers[i]
		if c.DeliveredCount == 0 {
			continue
		}
		out = append(out, entity.CustomerSpend{
			UserID:     c.UserID,
			Email:      c.Email,
			Name:       c.FullName(),
			TotalSpent: c.DeliveredRevenue,
			OrderCount: c.DeliveredCount,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent.GreaterThan(out[j].TotalSpent)
	})
	if len(out) > topCustomersLimit {
		out = out[:topCustomersLimit]
	}
	return out
}
