package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mamadou288/shop-api/internal/dependency"
	"github.com/mamadou288/shop-api/internal/entity"
)

type analyticsStore struct {
	*SQLStore
}

// Analytics returns the read-only KPI source.
func (ss *SQLStore) Analytics() dependency.Analytics {
	return &analyticsStore{SQLStore: ss}
}

func (as *analyticsStore) ListOrders(ctx context.Context, from, to time.Time) ([]entity.OrderFact, error) {
	query := `
		SELECT id, user_id, status, total_amount, created_at
		FROM orders
		WHERE created_at >= :from AND created_at <= :to
		ORDER BY created_at, id`

	orders, err := QueryListNamed[entity.OrderFact](ctx, as.db, query, map[string]any{
		"from": from.UTC(),
		"to":   to.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("can't list orders: %w", err)
	}
	return orders, nil
}

func (as *analyticsStore) ListCustomerStats(ctx context.Context) ([]entity.CustomerStats, error) {
	query := `
		SELECT
			u.id AS user_id,
			u.email,
			u.first_name,
			u.last_name,
			u.is_staff,
			u.is_superuser,
			u.created_at,
			COUNT(o.id) AS order_count,
			COALESCE(SUM(CASE WHEN o.status = 'delivered' THEN 1 ELSE 0 END), 0) AS delivered_count,
			COALESCE(SUM(CASE WHEN o.status = 'delivered' THEN o.total_amount ELSE 0 END), 0) AS delivered_revenue
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		GROUP BY u.id, u.email, u.first_name, u.last_name, u.is_staff, u.is_superuser, u.created_at
		ORDER BY u.created_at, u.id`

	stats, err := QueryListNamed[entity.CustomerStats](ctx, as.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("can't list customer stats: %w", err)
	}
	return stats, nil
}

func (as *analyticsStore) ListDeliveredItems(ctx context.Context) ([]entity.ItemSale, error) {
	query := `
		SELECT
			oi.id AS order_item_id,
			p.id AS product_id,
			p.name AS product_name,
			p.slug AS product_slug,
			p.price AS product_price,
			c.id AS category_id,
			c.name AS category_name,
			c.slug AS category_slug,
			oi.product_price AS unit_price,
			oi.quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE o.status = :status
		ORDER BY oi.created_at, oi.id`

	items, err := QueryListNamed[entity.ItemSale](ctx, as.db, query, map[string]any{
		"status": string(entity.OrderStatusDelivered),
	})
	if err != nil {
		return nil, fmt.Errorf("can't list delivered items: %w", err)
	}
	return items, nil
}

func (as *analyticsStore) ListProducts(ctx context.Context) ([]entity.ProductStock, error) {
	query := `
		SELECT id, name, slug, price, stock, category_id, is_active
		FROM products
		ORDER BY name, id`

	products, err := QueryListNamed[entity.ProductStock](ctx, as.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}
	return products, nil
}

func (as *analyticsStore) ListCategories(ctx context.Context) ([]entity.Category, error) {
	query := `
		SELECT id, name, slug, parent_id
		FROM categories
		ORDER BY name, id`

	categories, err := QueryListNamed[entity.Category](ctx, as.db, query, nil)
	if err != nil {
		return nil, fmt.Errorf("can't list categories: %w", err)
	}
	return categories, nil
}
