package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStats is one user row with all-time order aggregates.
// Users without orders have zero counts.
type CustomerStats struct {
	UserID           uuid.UUID       `db:"user_id"`
	Email            string          `db:"email"`
	FirstName        string          `db:"first_name"`
	LastName         string          `db:"last_name"`
	IsStaff          bool            `db:"is_staff"`
	IsSuperuser      bool            `db:"is_superuser"`
	CreatedAt        time.Time       `db:"created_at"`
	OrderCount       int             `db:"order_count"`
	DeliveredCount   int             `db:"delivered_count"`
	DeliveredRevenue decimal.Decimal `db:"delivered_revenue"`
}

// Privileged reports whether the account is staff or superuser.
func (c *CustomerStats) Privileged() bool {
	return c.IsStaff || c.IsSuperuser
}

func (c *CustomerStats) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
