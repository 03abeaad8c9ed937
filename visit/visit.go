package visit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xy-planning-network/rango"
)

const (
	// VisitsKey stores the number of visits in a session.
	VisitsKey = "visits"

	// LastVisitKey stores when the latest visit began in a session.
	LastVisitKey = "last_visit"

	// Layout formats a last visit timestamp.
	// The fractional seconds are always written so that
	// dropping the last suffixLen characters yields parseLayout.
	Layout = "2006-01-02 15:04:05.000000"

	parseLayout = "2006-01-02 15:04:05"
	suffixLen   = len(".000000")
)

// A Store is the per-client session state visits are recorded in.
type Store interface {
	Get(key string) any
	Put(key string, val any)
}

// A MapStore is a Store kept in memory.
type MapStore map[string]any

func (m MapStore) Get(key string) any      { return m[key] }
func (m MapStore) Put(key string, val any) { m[key] = val }

// FormatVisit renders t for storing under LastVisitKey.
func FormatVisit(t time.Time) string { return t.Format(Layout) }

// ParseVisit parses a value stored under LastVisitKey in loc.
//
// ParseVisit drops the fractional seconds by cutting a fixed number of characters
// off the end of raw, so raw must be formatted with Layout.
// Otherwise, ParseVisit returns an error wrapping rango.ErrNotValid.
func ParseVisit(raw string, loc *time.Location) (time.Time, error) {
	if len(raw) <= suffixLen {
		return time.Time{}, fmt.Errorf("%w: last visit %q is too short", rango.ErrNotValid, raw)
	}

	if loc == nil {
		loc = time.UTC
	}

	t, err := time.ParseInLocation(parseLayout, raw[:len(raw)-suffixLen], loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: last visit %q: %s", rango.ErrNotValid, raw, err)
	}

	return t, nil
}

// Handle records a page view at now in s using the CalendarDay policy,
// returning the resulting number of visits.
//
// Cf. HandleWith.
func Handle(s Store, now time.Time) (int, error) { return HandleWith(s, now, CalendarDay) }

// HandleWith records a page view at now in s.
//
// When policy reports a new visit began since the one stored in s,
// the number of visits increments and the last visit becomes now.
// Otherwise, the number of visits and the last visit are written back unchanged.
// Missing keys default to a first visit happening at now.
//
// If either stored value cannot be read, HandleWith returns an error
// wrapping rango.ErrNotValid and does not write to s.
func HandleWith(s Store, now time.Time, policy Policy) (int, error) {
	if policy == nil {
		policy = CalendarDay
	}

	visits, err := readVisits(s.Get(VisitsKey))
	if err != nil {
		return 0, err
	}

	raw, err := readLastVisit(s.Get(LastVisitKey), now)
	if err != nil {
		return 0, err
	}

	last, err := ParseVisit(raw, now.Location())
	if err != nil {
		return 0, err
	}

	if policy(last, now) {
		visits++
		s.Put(LastVisitKey, FormatVisit(now))
	} else {
		s.Put(LastVisitKey, raw)
	}

	s.Put(VisitsKey, visits)

	return visits, nil
}

// readVisits converts the value stored under VisitsKey into an int.
func readVisits(val any) (int, error) {
	var n int
	switch v := val.(type) {
	case nil:
		return 1, nil
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case uint:
		n = int(v)
	case uint32:
		n = int(v)
	case uint64:
		n = int(v)
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: visits %v is not whole", rango.ErrNotValid, v)
		}
		n = int(v)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: visits %q: %s", rango.ErrNotValid, v, err)
		}
		n = i
	default:
		return 0, fmt.Errorf("%w: visits stored as %T", rango.ErrNotValid, val)
	}

	if n < 1 {
		return 0, fmt.Errorf("%w: visits %d is less than 1", rango.ErrNotValid, n)
	}

	return n, nil
}

// readLastVisit returns the value stored under LastVisitKey as a string.
func readLastVisit(val any, now time.Time) (string, error) {
	switch v := val.(type) {
	case nil:
		return FormatVisit(now), nil
	case string:
		return v, nil
	case time.Time:
		return FormatVisit(v.In(now.Location())), nil
	default:
		return "", fmt.Errorf("%w: last visit stored as %T", rango.ErrNotValid, val)
	}
}
