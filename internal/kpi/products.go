package kpi

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/mamadou288/shop-api/internal/entity"
	"github.com/shopspring/decimal"
)

// Products computes all-time catalog KPIs. Stock is live, so every call re-reads the catalog.
func (e *Engine) Products(ctx context.Context) (*entity.ProductKPIs, error) {
	items, err := e.src.ListDeliveredItems(ctx)
	if err != nil {
		return nil, wrap("list delivered items", err)
	}
	products, err := e.src.ListProducts(ctx)
	if err != nil {
		return nil, wrap("list products", err)
	}
	categories, err := e.src.ListCategories(ctx)
	if err != nil {
		return nil, wrap("list categories", err)
	}

	sales := productSales(items)
	m := &entity.ProductKPIs{
		TopByRevenue: topProducts(sales, func(a, b *entity.ProductSales) bool {
			return a.Revenue.GreaterThan(b.Revenue)
		}),
		TopByQuantity: topProducts(sales, func(a, b *entity.ProductSales) bool {
			return a.UnitsSold > b.UnitsSold
		}),
		TopCategories:        topCategories(items),
		CategoryDistribution: categoryDistribution(categories, products),
	}
	m.LowStock, m.OutOfStockCount, m.InventoryValue = stockAlerts(products)
	return m, nil
}

// productSales aggregates items per product in first-seen order.
func productSales(items []entity.ItemSale) []entity.ProductSales {
	idx := make(map[uuid.UUID]int)
	var sales []entity.ProductSales
	for i := range items {
		it := &items[i]
		j, ok := idx[it.ProductID]
		if !ok {
			j = len(sales)
			idx[it.ProductID] = j
			sales = append(sales, entity.ProductSales{
				ProductID: it.ProductID,
				Name:      it.ProductName,
				Slug:      it.ProductSlug,
				Price:     it.ProductPrice,
				Revenue:   decimal.Zero,
			})
		}
		sales[j].Revenue = sales[j].Revenue.Add(it.Revenue())
		sales[j].UnitsSold += it.Quantity
	}
	return sales
}

// topProducts returns a sorted copy capped at topProductsLimit. Ties keep first-seen order.
func topProducts(sales []entity.ProductSales, less func(a, b *entity.ProductSales) bool) []entity.ProductSales {
	out := make([]entity.ProductSales, len(sales))
	copy(out, sales)
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	if len(out) > topProductsLimit {
		out = out[:topProductsLimit]
	}
	return out
}

// stockAlerts scans active products for low and empty stock and sums inventory value.
func stockAlerts(products []entity.ProductStock) (low []entity.ProductStock, outOfStock int, value decimal.Decimal) {
	value = decimal.Zero
	for i := range products {
		p := &products[i]
		if !p.IsActive {
			continue
		}
		value = value.Add(p.StockValue())
		switch {
		case p.Stock == 0:
			outOfStock++
		case p.Stock > 0 && p.Stock < lowStockThreshold:
			low = append(low, *p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Stock < low[j].Stock
	})
	if len(low) > lowStockLimit {
		low = low[:lowStockLimit]
	}
	return low, outOfStock, value
}

// topCategories aggregates delivered items per category. Items without a category are skipped.
func topCategories(items []entity.ItemSale) []entity.CategorySales {
	idx := make(map[uuid.UUID]int)
	seen := make(map[uuid.UUID]map[uuid.UUID]struct{})
	var cats []entity.CategorySales
	for i := range items {
		it := &items[i]
		if !it.CategoryID.Valid {
			continue
		}
		id := it.CategoryID.UUID
		j, ok := idx[id]
		if !ok {
			j = len(cats)
			idx[id] = j
			seen[id] = make(map[uuid.UUID]struct{})
			cats = append(cats, entity.CategorySales{
				CategoryID: id,
				Name:       it.CategoryName.String,
				Slug:       it.CategorySlug.String,
				Revenue:    decimal.Zero,
			})
		}
		cats[j].Revenue = cats[j].Revenue.Add(it.Revenue())
		cats[j].UnitsSold += it.Quantity
		seen[id][it.ProductID] = struct{}{}
		cats[j].ProductsCount = len(seen[id])
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Revenue.GreaterThan(cats[j].Revenue)
	})
	if len(cats) > topCategoriesLimit {
		cats = cats[:topCategoriesLimit]
	}
	return cats
}

// categoryDistribution counts active products per category, including empty categories.
func categoryDistribution(categories []entity.Category, products []entity.ProductStock) []entity.CategoryCount {
	active := make(map[uuid.UUID]int)
	for i := range products {
		p := &products[i]
		if p.IsActive && p.CategoryID.Valid {
			active[p.CategoryID.UUID]++
		}
	}
	out := make([]entity.CategoryCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, entity.CategoryCount{
			CategoryID:   c.ID,
			Name:         c.Name,
			ProductCount: active[c.ID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ProductCount > out[j].ProductCount
	})
	if len(out) > distributionLimit {
		out = out[:distributionLimit]
	}
	return out
}
