// Package calendar provides the civil-date type used as the selection key.
//
// A Date's String form (YYYY-MM-DD, zero padded) is the seed input for the
// daily selection, so Parse is deliberately strict: "2026-2-11" is rejected
// rather than silently producing a different seed.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zones resolve on hosts without a zoneinfo database
)

// Layout is the canonical date key format.
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDate is returned when a string is not a canonical YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date: expected YYYY-MM-DD")

// Date is a calendar day with no time or zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date, normalising out-of-range values the way time.Date does
// (e.g. February 30 becomes March 2).
func New(year int, month time.Month, day int) Date {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Parse accepts exactly the canonical form and rejects anything that does not
// round-trip, such as missing zero padding or impossible days.
func Parse(s string) (Date, error) {
	if len(s) != len(Layout) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d := fromTime(t)
	if d.String() != s {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the civil date of now in loc. A nil loc means UTC.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return fromTime(now.In(loc))
}

// String returns the canonical key, e.g. "2026-02-11".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns d shifted by n days with month and year rollover.
func (d Date) AddDays(n int) Date {
	return fromTime(d.time().AddDate(0, 0, n))
}

// Next returns the following day.
func (d Date) Next() Date {
	return d.AddDays(1)
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.compare(other) < 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.compare(other) > 0
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysUntil returns the number of days from d to other. It is negative when
// other is earlier.
func (d Date) DaysUntil(other Date) int {
	return int(other.unixDay() - d.unixDay())
}

// unixDay counts days since 1970-01-01; both dates sit at UTC midnight, so
// the division is exact.
func (d Date) unixDay() int64 {
	return d.time().Unix() / secondsPerDay
}

func (d Date) compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return cmpInt(d.Year, other.Year)
	case d.Month != other.Month:
		return cmpInt(int(d.Month), int(other.Month))
	default:
		return cmpInt(d.Day, other.Day)
	}
}

func (d Date) time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) Date {
	y, m, day := t.Date()
	return Date{Year: y, Month: m, Day: day}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// LoadLocation resolves an IANA zone name. Names of the form "UTC+8" or
// "UTC-05:30" are accepted as fixed offsets for hosts without tzdata.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "UTC") {
		return time.UTC, nil
	}
	if loc, ok := fixedOffset(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func fixedOffset(name string) (*time.Location, bool) {
	upper := strings.ToUpper(name)
	if !strings.HasPrefix(upper, "UTC") || len(upper) < 5 {
		return nil, false
	}
	rest := upper[3:]
	sign := 1
	switch rest[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return nil, false
	}
	hh, mm, hasMinutes := strings.Cut(rest[1:], ":")
	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 14 {
		return nil, false
	}
	minutes := 0
	if hasMinutes {
		minutes, err = strconv.Atoi(mm)
		if err != nil || minutes < 0 || minutes > 59 {
			return nil, false
		}
	}
	offset := sign * (hours*3600 + minutes*60)
	return time.FixedZone(name, offset), true
}
