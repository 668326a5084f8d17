// Package period turns request date inputs into a normalized reporting window.
package period

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/mamadou288/shop-api/internal/entity"
)

const (
	day = 24 * time.Hour

	// DefaultWindow applies when no usable date input is given.
	DefaultWindow = 90 * day

	// DateLayout formats the day keys used in cache keys.
	DateLayout = "2006-01-02"
)

// Shortcut names a trailing window ending now.
type Shortcut string

const (
	Last7Days  Shortcut = "7d"
	Last30Days Shortcut = "30d"
	Last90Days Shortcut = "90d"
	LastYear   Shortcut = "1y"
)

var shortcutDays = map[Shortcut]int{
	Last7Days:  7,
	Last30Days: 30,
	Last90Days: 90,
	LastYear:   365,
}

// Window returns the length of the shortcut. Unknown shortcuts fall back to 90 days.
func (s Shortcut) Window() time.Duration {
	if d, ok := shortcutDays[s]; ok {
		return time.Duration(d) * day
	}
	return DefaultWindow
}

// layouts without an offset are parsed in the resolver location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	DateLayout,
}

// Query holds the raw date inputs of a KPI request.
type Query struct {
	StartDate string
	EndDate   string
	Period    string
}

// QueryFromValues reads start_date, end_date and period.
func QueryFromValues(v url.Values) Query {
	return Query{
		StartDate: strings.TrimSpace(v.Get("start_date")),
		EndDate:   strings.TrimSpace(v.Get("end_date")),
		Period:    strings.TrimSpace(v.Get("period")),
	}
}

// Resolver resolves queries against an injected clock in a canonical location.
type Resolver struct {
	loc *time.Location
	now func() time.Time
}

// NewResolver returns a Resolver. A nil location means UTC and a nil clock means time.Now.
func NewResolver(loc *time.Location, now func() time.Time) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{loc: loc, now: now}
}

// Location returns the canonical location.
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Now returns the current instant in the canonical location.
func (r *Resolver) Now() time.Time {
	return r.now().In(r.loc)
}

// Resolve returns an always-populated inclusive window.
//
// Two valid explicit dates win over the shortcut. Otherwise the shortcut sets
// a trailing window ending now. Otherwise a single valid date replaces its
// side of the default 90 day window. Malformed dates are ignored.
func (r *Resolver) Resolve(ctx context.Context, q Query) entity.TimeRange {
	end := r.Now()
	start := end.Add(-DefaultWindow)

	from, fromOK := r.parse(ctx, "start_date", q.StartDate)
	to, toOK := r.parse(ctx, "end_date", q.EndDate)

	switch {
	case fromOK && toOK:
		start, end = from, to
	case q.Period != "":
		start = end.Add(-Shortcut(q.Period).Window())
	case fromOK:
		start = from
	case toOK:
		end = to
		start = end.Add(-DefaultWindow)
	}

	if start.After(end) {
		start, end = end, start
	}
	return entity.TimeRange{From: start, To: end}
}

// Parse parses a single date input in the canonical location.
func (r *Resolver) Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(r.loc), true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, r.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func (r *Resolver) parse(ctx context.Context, field, s string) (time.Time, bool) {
	t, ok := r.Parse(s)
	if !ok && s != "" {
		slog.Default().DebugContext(ctx, "ignoring malformed date",
			slog.String("field", field),
			slog.String("value", s),
		)
	}
	return t, ok
}

// DateKey formats the calendar day of t.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
