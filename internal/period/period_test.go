package period

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC)

func testResolver() *Resolver {
	return NewResolver(time.UTC, func() time.Time { return fixedNow })
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	r := testResolver()

	jan1 := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan31 := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		q        Query
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "default window",
			q:        Query{},
			wantFrom: fixedNow.Add(-90 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "explicit dates win over shortcut",
			q:        Query{StartDate: "2024-01-01", EndDate: "2024-01-31", Period: "7d"},
			wantFrom: jan1,
			wantTo:   jan31,
		},
		{
			name:     "shortcut 7d",
			q:        Query{Period: "7d"},
			wantFrom: fixedNow.Add(-7 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "shortcut 30d",
			q:        Query{Period: "30d"},
			wantFrom: fixedNow.Add(-30 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "shortcut 1y",
			q:        Query{Period: "1y"},
			wantFrom: fixedNow.Add(-365 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "unknown shortcut falls back to 90 days",
			q:        Query{Period: "2w"},
			wantFrom: fixedNow.Add(-90 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "shortcut with one malformed date",
			q:        Query{StartDate: "2024-01-01", EndDate: "garbage", Period: "30d"},
			wantFrom: fixedNow.Add(-30 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "lone start date",
			q:        Query{StartDate: "2024-01-01"},
			wantFrom: jan1,
			wantTo:   fixedNow,
		},
		{
			name:     "lone end date moves default start",
			q:        Query{EndDate: "2024-01-31"},
			wantFrom: jan31.Add(-90 * day),
			wantTo:   jan31,
		},
		{
			name:     "malformed dates are ignored",
			q:        Query{StartDate: "01/02/2024", EndDate: "tomorrow"},
			wantFrom: fixedNow.Add(-90 * day),
			wantTo:   fixedNow,
		},
		{
			name:     "reversed dates are swapped",
			q:        Query{StartDate: "2024-01-31", EndDate: "2024-01-01"},
			wantFrom: jan1,
			wantTo:   jan31,
		},
		{
			name:     "rfc3339 with offset is converted",
			q:        Query{StartDate: "2024-01-01T02:00:00+02:00", EndDate: "2024-01-31T00:00:00Z"},
			wantFrom: jan1,
			wantTo:   jan31,
		},
		{
			name:     "local datetime",
			q:        Query{StartDate: "2024-01-01T08:15:00", EndDate: "2024-01-31"},
			wantFrom: jan1.Add(8*time.Hour + 15*time.Minute),
			wantTo:   jan31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := r.Resolve(ctx, tt.q)
			assert.True(t, tt.wantFrom.Equal(tr.From), "from: want %s got %s", tt.wantFrom, tr.From)
			assert.True(t, tt.wantTo.Equal(tr.To), "to: want %s got %s", tt.wantTo, tr.To)
			assert.False(t, tr.From.After(tr.To))
		})
	}
}

func TestResolveConvertsToLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	r := NewResolver(paris, func() time.Time { return fixedNow })
	tr := r.Resolve(context.Background(), Query{
		StartDate: "2024-01-01T00:00:00Z",
		EndDate:   "2024-01-31",
	})

	assert.Equal(t, paris, tr.From.Location())
	assert.Equal(t, 1, tr.From.Hour())
	assert.Equal(t, paris, tr.To.Location())
	assert.Equal(t, 0, tr.To.Hour())
}

func TestShortcutMatchesExplicitDates(t *testing.T) {
	ctx := context.Background()
	r := testResolver()

	short := r.Resolve(ctx, Query{Period: "30d"})
	explicit := r.Resolve(ctx, Query{
		StartDate: short.From.Format(time.RFC3339Nano),
		EndDate:   short.To.Format(time.RFC3339Nano),
	})

	assert.True(t, short.From.Equal(explicit.From))
	assert.True(t, short.To.Equal(explicit.To))
}

func TestQueryFromValues(t *testing.T) {
	v := url.Values{}
	v.Set("start_date", " 2024-01-01 ")
	v.Set("end_date", "2024-02-01")
	v.Set("period", "30d")

	q := QueryFromValues(v)
	assert.Equal(t, Query{StartDate: "2024-01-01", EndDate: "2024-02-01", Period: "30d"}, q)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-06-15", DateKey(fixedNow))
}
