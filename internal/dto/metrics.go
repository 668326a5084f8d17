package dto

import (
	"time"

	"github.com/mamadou288/shop-api/internal/currency"
	"github.com/mamadou288/shop-api/internal/entity"
	"golang.org/x/text/language"
)

// Options controls how KPI entities are rendered.
type Options struct {
	Currency string
	Language language.Tag
	Location *time.Location
}

func (o Options) currency() string {
	return currency.Normalize(o.Currency)
}

func (o Options) language() language.Tag {
	if o.Language == language.Und {
		return language.French
	}
	return o.Language
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type Percentage struct {
	Percentage float64 `json:"percentage"`
}

// business

type Business struct {
	Period             Period         `json:"period"`
	Revenue            Revenue        `json:"revenue"`
	Orders             Orders         `json:"orders"`
	AOV                Money          `json:"aov"`
	CLV                Money          `json:"clv"`
	RepeatPurchaseRate Percentage     `json:"repeat_purchase_rate"`
	Charts             BusinessCharts `json:"charts"`
}

type Revenue struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	Growth   float64 `json:"growth"`
}

type Orders struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	StatusChart []StatusSlice  `json:"status_chart"`
	Growth      float64        `json:"growth"`
}

type StatusSlice struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
}

type BusinessCharts struct {
	RevenueByMonth []MonthRevenue `json:"revenue_by_month"`
}

type MonthRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// products

type Products struct {
	TopProducts TopProducts `json:"top_products"`
	StockAlerts StockAlerts `json:"stock_alerts"`
	Categories  Categories  `json:"categories"`
	Inventory   Inventory   `json:"inventory"`
}

type TopProducts struct {
	ByRevenue  []ProductSales `json:"by_revenue"`
	ByQuantity []ProductSales `json:"by_quantity"`
}

type ProductSales struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	Revenue   float64 `json:"revenue"`
	UnitsSold int     `json:"units_sold"`
}

type StockAlerts struct {
	LowStock        []LowStockProduct `json:"low_stock"`
	OutOfStockCount int               `json:"out_of_stock_count"`
}

type LowStockProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Slug  string  `json:"slug"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

type Categories struct {
	TopByRevenue []CategorySales `json:"top_by_revenue"`
	Distribution []CategoryCount `json:"distribution"`
}

type CategorySales struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Revenue       float64 `json:"revenue"`
	UnitsSold     int     `json:"units_sold"`
	ProductsCount int     `json:"products_count"`
}

type CategoryCount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

type Inventory struct {
	TotalValue float64 `json:"total_value"`
	Currency   string  `json:"currency"`
}

// users

type Users struct {
	Period        Period       `json:"period"`
	TotalUsers    int          `json:"total_users"`
	NewUsers      int          `json:"new_users"`
	ActiveUsers   int          `json:"active_users"`
	RetentionRate Percentage   `json:"retention_rate"`
	TopCustomers  []Customer   `json:"top_customers"`
	UsersByMonth  []MonthCount `json:"users_by_month"`
	Segments      Segments     `json:"segments"`
}

type Customer struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	TotalSpent float64 `json:"total_spent"`
	OrderCount int     `json:"order_count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

type Segments struct {
	New     int `json:"new"`
	OneTime int `json:"one_time"`
	Repeat  int `json:"repeat"`
	Loyal   int `json:"loyal"`
}

// responses

type BusinessResponse struct {
	*Business
	GeneratedAt string `json:"generated_at"`
}

type ProductsResponse struct {
	*Products
	GeneratedAt string `json:"generated_at"`
}

type UsersResponse struct {
	*Users
	GeneratedAt string `json:"generated_at"`
}

type DashboardResponse struct {
	Business    *Business `json:"business"`
	Products    *Products `json:"products"`
	Users       *Users    `json:"users"`
	GeneratedAt string    `json:"generated_at"`
}

// FormatTime formats an instant in the configured location.
func (o Options) FormatTime(t time.Time) string {
	return t.In(o.location()).Format(time.RFC3339)
}

func (o Options) period(tr entity.TimeRange) Period {
	return Period{
		StartDate: o.FormatTime(tr.From),
		EndDate:   o.FormatTime(tr.To),
	}
}

func ConvertBusinessKPIs(m *entity.BusinessKPIs, o Options) *Business {
	if m == nil {
		return nil
	}
	cur := o.currency()

	byStatus := make(map[string]int, len(m.OrdersByStatus))
	for st, n := range m.OrdersByStatus {
		byStatus[string(st)] = n
	}
	chart := make([]StatusSlice, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		chart = append(chart, StatusSlice{
			Status: string(st),
			Label:  StatusLabel(st, o.language()),
			Count:  m.OrdersByStatus[st],
		})
	}
	months := make([]MonthRevenue, 0, len(m.RevenueByMonth))
	for _, p := range m.RevenueByMonth {
		months = append(months, MonthRevenue{
			Month:   p.Month,
			Revenue: currency.Float(p.Value, cur),
		})
	}

	return &Business{
		Period: o.period(m.Period),
		Revenue: Revenue{
			Total:    currency.Float(m.TotalRevenue, cur),
			Currency: cur,
			Growth:   m.RevenueGrowth,
		},
		Orders: Orders{
			Total:       m.TotalOrders,
			ByStatus:    byStatus,
			StatusChart: chart,
			Growth:      m.OrdersGrowth,
		},
		AOV:                Money{Value: currency.Float(m.AvgOrderValue, cur), Currency: cur},
		CLV:                Money{Value: currency.Float(m.CustomerLifetime, cur), Currency: cur},
		RepeatPurchaseRate: Percentage{Percentage: m.RepeatPurchaseRate},
		Charts:             BusinessCharts{RevenueByMonth: months},
	}
}

func ConvertProductKPIs(m *entity.ProductKPIs, o Options) *Products {
	if m == nil {
		return nil
	}
	cur := o.currency()

	low := make([]LowStockProduct, 0, len(m.LowStock))
	for _, p := range m.LowStock {
		low = append(low, LowStockProduct{
			ID:    p.ID.String(),
			Name:  p.Name,
			Slug:  p.Slug,
			Stock: p.Stock,
			Price: currency.Float(p.Price, cur),
		})
	}
	cats := make([]CategorySales, 0, len(m.TopCategories))
	for _, c := range m.TopCategories {
		cats = append(cats, CategorySales{
			ID:            c.CategoryID.String(),
			Name:          c.Name,
			Slug:          c.Slug,
			Revenue:       currency.Float(c.Revenue, cur),
			UnitsSold:     c.UnitsSold,
			ProductsCount: c.ProductsCount,
		})
	}
	dist := make([]CategoryCount, 0, len(m.CategoryDistribution))
	for _, c := range m.CategoryDistribution {
		dist = append(dist, CategoryCount{
			ID:           c.CategoryID.String(),
			Name:         c.Name,
			ProductCount: c.ProductCount,
		})
	}

	return &Products{
		TopProducts: TopProducts{
			ByRevenue:  productSales(m.TopByRevenue, cur),
			ByQuantity: productSales(m.TopByQuantity, cur),
		},
		StockAlerts: StockAlerts{
			LowStock:        low,
			OutOfStockCount: m.OutOfStockCount,
		},
		Categories: Categories{
			TopByRevenue: cats,
			Distribution: dist,
		},
		Inventory: Inventory{
			TotalValue: currency.Float(m.InventoryValue, cur),
			Currency:   cur,
		},
	}
}

func productSales(ps []entity.ProductSales, cur string) []ProductSales {
	out := make([]ProductSales, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProductSales{
			ID:        p.ProductID.String(),
			Name:      p.Name,
			Slug:      p.Slug,
			Price:     currency.Float(p.Price, cur),
			Revenue:   currency.Float(p.Revenue, cur),
			UnitsSold: p.UnitsSold,
		})
	}
	return out
}

func ConvertUserKPIs(m *entity.UserKPIs, o Options) *Users {
	if m == nil {
		return nil
	}
	cur := o.currency()

	top := make([]Customer, 0, len(m.TopCustomers))
	for _, c := range m.TopCustomers {
		top = append(top, Customer{
			ID:         c.UserID.String(),
			Email:      c.Email,
			Name:       c.Name,
			TotalSpent: currency.Float(c.TotalSpent, cur),
			OrderCount: c.OrderCount,
		})
	}
	months := make([]MonthCount, 0, len(m.UsersByMonth))
	for _, p := range m.UsersByMonth {
		months = append(months, MonthCount{Month: p.Month, Count: p.Count})
	}

	return &Users{
		Period:        o.period(m.Period),
		TotalUsers:    m.TotalUsers,
		NewUsers:      m.NewUsers,
		ActiveUsers:   m.ActiveUsers,
		RetentionRate: Percentage{Percentage: m.RetentionRate},
		TopCustomers:  top,
		UsersByMonth:  months,
		Segments: Segments{
			New:     m.Segments.New,
			OneTime: m.Segments.OneTime,
			Repeat:  m.Segments.Repeat,
			Loyal:   m.Segments.Loyal,
		},
	}
}

func ConvertDashboardKPIs(m *entity.DashboardKPIs, o Options) *DashboardResponse {
	if m == nil {
		return nil
	}
	return &DashboardResponse{
		Business: ConvertBusinessKPIs(m.Business, o),
		Products: ConvertProductKPIs(m.Products, o),
		Users:    ConvertUserKPIs(m.Users, o),
	}
}
