package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimeRange is an inclusive [From, To] interval.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies in the inclusive range.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.From) && !t.After(tr.To)
}

// BusinessKPIs contains revenue and order metrics for a reporting period.
type BusinessKPIs struct {
	Period TimeRange

	TotalRevenue   decimal.Decimal
	RevenueGrowth  float64
	TotalOrders    int
	OrdersByStatus map[OrderStatus]int
	OrdersGrowth   float64

	AvgOrderValue      decimal.Decimal
	CustomerLifetime   decimal.Decimal
	RepeatPurchaseRate float64

	RevenueByMonth []MonthlyValue
}

// MonthlyValue is one calendar-month point of a time series.
type MonthlyValue struct {
	Month string
	Value decimal.Decimal
	Count int
}

// ProductKPIs contains all-time catalog and sales metrics.
type ProductKPIs struct {
	TopByRevenue  []ProductSales
	TopByQuantity []ProductSales

	LowStock        []ProductStock
	OutOfStockCount int

	TopCategories        []CategorySales
	CategoryDistribution []CategoryCount

	InventoryValue decimal.Decimal
}

type ProductSales struct {
	ProductID uuid.UUID
	Name      string
	Slug      string
	Price     decimal.Decimal
	Revenue   decimal.Decimal
	UnitsSold int
}

type CategorySales struct {
	CategoryID    uuid.UUID
	Name          string
	Slug          string
	Revenue       decimal.Decimal
	UnitsSold     int
	ProductsCount int
}

type CategoryCount struct {
	CategoryID   uuid.UUID
	Name         string
	ProductCount int
}

// UserKPIs contains customer base metrics. Staff and superusers are excluded.
type UserKPIs struct {
	Period TimeRange

	TotalUsers    int
	NewUsers      int
	ActiveUsers   int
	RetentionRate float64

	TopCustomers []CustomerSpend
	UsersByMonth []MonthlyValue
	Segments     UserSegments
}

type CustomerSpend struct {
	UserID     uuid.UUID
	Email      string
	Name       string
	TotalSpent decimal.Decimal
	OrderCount int
}

// UserSegments partitions users by all-time order count.
type UserSegments struct {
	New     int
	OneTime int
	Repeat  int
	Loyal   int
}

func (s UserSegments) Total() int {
	return s.New + s.OneTime + s.Repeat + s.Loyal
}

// DashboardKPIs combines every KPI family for one period.
type DashboardKPIs struct {
	Business *BusinessKPIs
	Products *ProductKPIs
	Users    *UserKPIs
}
