package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mamadou288/shop-api/internal/entity"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	// Analytics is the read-only source of KPI inputs.
	Analytics interface {
		// ListOrders returns orders with created_at in [from, to], both inclusive, ordered by created_at.
		ListOrders(ctx context.Context, from, to time.Time) ([]entity.OrderFact, error)
		// ListCustomerStats returns every user with all-time order counts and delivered revenue.
		ListCustomerStats(ctx context.Context) ([]entity.CustomerStats, error)
		// ListDeliveredItems returns order items of delivered orders joined with product and category, in insertion order.
		ListDeliveredItems(ctx context.Context) ([]entity.ItemSale, error)
		// ListProducts returns the live catalog.
		ListProducts(ctx context.Context) ([]entity.ProductStock, error)
		// ListCategories returns every category.
		ListCategories(ctx context.Context) ([]entity.Category, error)
	}

	Repository interface {
		Analytics() Analytics
		Ping(ctx context.Context) error
		Close()
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		Rebind(query string) string
	}

	// ResultCache stores encoded KPI payloads with a per-key TTL.
	ResultCache interface {
		// Get returns the value and true on hit, false on miss or expiry.
		Get(ctx context.Context, key string) ([]byte, bool, error)
		Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
		Close() error
	}
)
