package month

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

// Month identifies a calendar month with no day or time component.
type Month struct {
	Year  int
	Month time.Month
}

// New returns a normalized Month. Out-of-range months roll over the year,
// so New(2025, 13) is January 2026.
func New(year int, m time.Month) Month {
	t := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Of returns the month containing t.
func Of(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Parse parses "2025-01" (or the lenient "2025-1") into a Month.
func Parse(s string) (Month, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Month{}, fmt.Errorf("invalid month %q: want YYYY-MM", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Month{}, fmt.Errorf("invalid year in month %q: %w", s, err)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Month{}, fmt.Errorf("invalid month in %q: %w", s, err)
	}
	if m < 1 || m > 12 {
		return Month{}, fmt.Errorf("invalid month in %q: %d out of range", s, m)
	}

	return Month{Year: year, Month: time.Month(m)}, nil
}

// String formats the month as "2025-01".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool { return m.Year == 0 && m.Month == 0 }

// Start returns midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the month at midnight UTC.
func (m Month) End() time.Time {
	return m.Next().Start().AddDate(0, 0, -1)
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month { return New(m.Year, m.Month+time.Month(n)) }

// Next returns the following month.
func (m Month) Next() Month { return m.AddMonths(1) }

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after o.
func (m Month) Compare(o Month) int {
	switch {
	case m.Year < o.Year:
		return -1
	case m.Year > o.Year:
		return 1
	case m.Month < o.Month:
		return -1
	case m.Month > o.Month:
		return 1
	default:
		return 0
	}
}

// Before reports whether m is strictly before o.
func (m Month) Before(o Month) bool { return m.Compare(o) < 0 }

// After reports whether m is strictly after o.
func (m Month) After(o Month) bool { return m.Compare(o) > 0 }

// Contains reports whether t falls inside m.
func (m Month) Contains(t time.Time) bool { return Of(t) == m }

// Max returns the later of a and b.
func Max(a, b Month) Month {
	if a.Before(b) {
		return b
	}
	return a
}

// Span yields every month from first through last, inclusive.
// Nothing is yielded when last is before first.
func Span(first, last Month) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		for m := first; !m.After(last); m = m.Next() {
			if !yield(m) {
				return
			}
		}
	}
}

// Between returns the number of months from a to b (negative if b is before a).
func Between(a, b Month) int {
	return (b.Year-a.Year)*12 + int(b.Month) - int(a.Month)
}

// MarshalText encodes the month as "2025-01".
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes "2025-01".
func (m *Month) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
