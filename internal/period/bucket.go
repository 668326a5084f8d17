package period

import "time"

// MonthLayout is the label format of a monthly bucket.
const MonthLayout = "2006-01"

// Bucket is a half-open [Start, End) calendar month.
type Bucket struct {
	Start time.Time
	End   time.Time
	Label string
}

func (b Bucket) Contains(t time.Time) bool {
	return !t.Before(b.Start) && t.Before(b.End)
}

// Months returns the calendar months overlapping [from, to] in order. The
// first bucket starts on the 1st of from's month in from's location. It is
// empty when to is before from.
func Months(from, to time.Time) []Bucket {
	if to.Before(from) {
		return nil
	}
	var buckets []Bucket
	cur := monthStart(from)
	for !cur.After(to) {
		next := cur.AddDate(0, 1, 0)
		buckets = append(buckets, Bucket{
			Start: cur,
			End:   next,
			Label: cur.Format(MonthLayout),
		})
		cur = next
	}
	return buckets
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// Index finds the bucket of an instant by its month label.
type Index struct {
	loc *time.Location
	pos map[string]int
}

// NewIndex indexes buckets built by Months.
func NewIndex(buckets []Bucket) Index {
	ix := Index{loc: time.UTC, pos: make(map[string]int, len(buckets))}
	if len(buckets) > 0 {
		ix.loc = buckets[0].Start.Location()
	}
	for i, b := range buckets {
		ix.pos[b.Label] = i
	}
	return ix
}

// Find returns the position of the bucket containing t.
func (ix Index) Find(t time.Time) (int, bool) {
	i, ok := ix.pos[t.In(ix.loc).Format(MonthLayout)]
	return i, ok
}
