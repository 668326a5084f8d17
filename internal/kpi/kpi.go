// Package kpi aggregates orders, products and users into business metrics.
//
// The store only filters and groups rows; every KPI is computed here as a
// pure function of the rows returned by dependency.Analytics.
package kpi

import (
	"context"
	"fmt"
	"time"

	"github.com/mamadou288/shop-api/internal/dependency"
	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	day = 24 * time.Hour

	// growthWindow is the length of the current and previous month-over-month windows.
	growthWindow = 30 * day

	topProductsLimit   = 10
	topCategoriesLimit = 10
	distributionLimit  = 10
	topCustomersLimit  = 10
	lowStockLimit      = 20

	// lowStockThreshold is exclusive: stock 1..9 is low.
	lowStockThreshold = 10

	repeatMinOrders = 2
	loyalMinOrders  = 5
)

var hundred = decimal.NewFromInt(100)

// Engine computes KPI families from an analytics source.
type Engine struct {
	src dependency.Analytics
}

func New(src dependency.Analytics) *Engine {
	return &Engine{src: src}
}

// Dashboard computes all three families for the same period.
func (e *Engine) Dashboard(ctx context.Context, tr entity.TimeRange) (*entity.DashboardKPIs, error) {
	b, err := e.Business(ctx, tr)
	if err != nil {
		return nil, err
	}
	p, err := e.Products(ctx)
	if err != nil {
		return nil, err
	}
	u, err := e.Users(ctx, tr)
	if err != nil {
		return nil, err
	}
	return &entity.DashboardKPIs{
		Business: b,
		Products: p,
		Users:    u,
	}, nil
}

// growthPct returns (cur-prev)/prev*100 rounded to 2 places, or 0 when prev is not positive.
func growthPct(cur, prev decimal.Decimal) float64 {
	if !prev.IsPositive() {
		return 0
	}
	return cur.Sub(prev).Div(prev).Mul(hundred).Round(2).InexactFloat64()
}

// ratePct returns part/whole*100 rounded to 2 places, or 0 when whole is 0.
func ratePct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return decimal.NewFromInt(int64(part)).
		Div(decimal.NewFromInt(int64(whole))).
		Mul(hundred).
		Round(2).
		InexactFloat64()
}

// mean returns sum/n rounded to 2 places, or 0 when n is 0.
func mean(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}

func wrap(op string, err error) error {
	return fmt.Errorf("can't %s: %w", op, err)
}
