package visit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/rango"
	"github.com/xy-planning-network/rango/visit"
)

func TestHandle(t *testing.T) {
	stored := "2024-01-01 10:00:00.000000"
	for _, tc := range []struct {
		name       string
		session    visit.MapStore
		now        time.Time
		wantVisits int
		wantLast   string
	}{
		{
			"Empty-Session",
			visit.MapStore{},
			time.Date(2024, 1, 1, 9, 30, 15, 123456000, time.UTC),
			1,
			"2024-01-01 09:30:15.123456",
		},
		{
			"Same-Day",
			visit.MapStore{visit.VisitsKey: 5, visit.LastVisitKey: stored},
			time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			5,
			stored,
		},
		{
			"Two-Days-Later",
			visit.MapStore{visit.VisitsKey: 5, visit.LastVisitKey: stored},
			time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
			6,
			"2024-01-03 08:00:00.000000",
		},
		{
			"Next-Day-Under-24h",
			visit.MapStore{visit.VisitsKey: 2, visit.LastVisitKey: "2024-01-01 23:59:00.000000"},
			time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC),
			3,
			"2024-01-02 00:01:00.000000",
		},
		{
			"Same-Day-23h-Apart",
			visit.MapStore{visit.VisitsKey: 2, visit.LastVisitKey: "2024-01-01 00:30:00.000000"},
			time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC),
			2,
			"2024-01-01 00:30:00.000000",
		},
		{
			"Visits-Missing",
			visit.MapStore{visit.LastVisitKey: stored},
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			2,
			"2024-02-01 00:00:00.000000",
		},
		{
			"Last-Visit-Missing",
			visit.MapStore{visit.VisitsKey: 7},
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			7,
			"2024-02-01 00:00:00.000000",
		},
		{
			"Visits-As-String",
			visit.MapStore{visit.VisitsKey: " 5", visit.LastVisitKey: stored},
			time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
			6,
			"2024-01-03 08:00:00.000000",
		},
		{
			"Visits-As-Float",
			visit.MapStore{visit.VisitsKey: float64(5), visit.LastVisitKey: stored},
			time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
			5,
			stored,
		},
		{
			"Last-Visit-As-Time",
			visit.MapStore{visit.VisitsKey: 1, visit.LastVisitKey: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
			time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
			1,
			stored,
		},
		{
			"Clock-Behind",
			visit.MapStore{visit.VisitsKey: 4, visit.LastVisitKey: stored},
			time.Date(2023, 12, 31, 11, 0, 0, 0, time.UTC),
			4,
			stored,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			visits, err := visit.Handle(tc.session, tc.now)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.wantVisits, visits)
			require.Equal(t, tc.wantVisits, tc.session.Get(visit.VisitsKey))
			require.Equal(t, tc.wantLast, tc.session.Get(visit.LastVisitKey))
		})
	}
}

func TestHandleInvalid(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		name    string
		session visit.MapStore
	}{
		{"Last-Visit-Garbage", visit.MapStore{visit.LastVisitKey: "yesterday at noon"}},
		{"Last-Visit-Too-Short", visit.MapStore{visit.LastVisitKey: "2024"}},
		{"Last-Visit-No-Fraction", visit.MapStore{visit.LastVisitKey: "2024-01-01 10:00:00"}},
		{"Last-Visit-Wrong-Type", visit.MapStore{visit.LastVisitKey: 1704103200}},
		{"Visits-Garbage", visit.MapStore{visit.VisitsKey: "five"}},
		{"Visits-Zero", visit.MapStore{visit.VisitsKey: 0}},
		{"Visits-Fraction", visit.MapStore{visit.VisitsKey: 1.5}},
		{"Visits-Wrong-Type", visit.MapStore{visit.VisitsKey: []int{1}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			before := make(visit.MapStore)
			for k, v := range tc.session {
				before[k] = v
			}

			// Act
			visits, err := visit.Handle(tc.session, now)

			// Assert
			require.ErrorIs(t, err, rango.ErrNotValid)
			require.Zero(t, visits)
			require.Equal(t, before, tc.session)
		})
	}
}

func TestHandleDeterministic(t *testing.T) {
	// Arrange
	now := time.Date(2024, 3, 9, 18, 45, 0, 0, time.UTC)
	a := visit.MapStore{visit.VisitsKey: 3, visit.LastVisitKey: "2024-03-01 08:00:00.000000"}
	b := visit.MapStore{visit.VisitsKey: 3, visit.LastVisitKey: "2024-03-01 08:00:00.000000"}

	// Act
	va, errA := visit.Handle(a, now)
	vb, errB := visit.Handle(b, now)

	// Assert
	require.Nil(t, errA)
	require.Nil(t, errB)
	require.Equal(t, va, vb)
	require.Equal(t, a, b)

	// Act
	again, err := visit.Handle(a, now)

	// Assert
	require.Nil(t, err)
	require.Equal(t, va, again)
	require.Equal(t, b, a)
}

func TestHandleWithRolling(t *testing.T) {
	// Arrange
	s := visit.MapStore{visit.VisitsKey: 1, visit.LastVisitKey: "2024-01-01 23:59:00.000000"}
	policy := visit.Rolling(24 * time.Hour)

	// Act
	visits, err := visit.HandleWith(s, time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC), policy)

	// Assert
	require.Nil(t, err)
	require.Equal(t, 1, visits)

	// Act
	visits, err = visit.HandleWith(s, time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC), policy)

	// Assert
	require.Nil(t, err)
	require.Equal(t, 2, visits)
	require.Equal(t, "2024-01-02 23:59:00.000000", s.Get(visit.LastVisitKey))
}

func TestFormatParseVisit(t *testing.T) {
	// Arrange
	loc := time.FixedZone("test", -5*60*60)
	now := time.Date(2024, 6, 1, 7, 8, 9, 0, loc)

	// Act
	raw := visit.FormatVisit(now)
	parsed, err := visit.ParseVisit(raw, loc)

	// Assert
	require.Equal(t, "2024-06-01 07:08:09.000000", raw)
	require.Nil(t, err)
	require.True(t, now.Equal(parsed))

	// Act
	parsed, err = visit.ParseVisit(raw, nil)

	// Assert
	require.Nil(t, err)
	require.Equal(t, time.UTC, parsed.Location())

	// Act
	_, err = visit.ParseVisit("", loc)

	// Assert
	require.ErrorIs(t, err, rango.ErrNotValid)
}

func TestDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		ny = time.FixedZone("EST", -5*60*60)
	}

	for _, tc := range []struct {
		name     string
		last     time.Time
		now      time.Time
		expected int
	}{
		{"Same-Instant", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"Minutes-Across-Midnight", time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC), 1},
		{"Leap-Day", time.Date(2024, 2, 28, 12, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), 2},
		{"Across-Years", time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), 1},
		{"Backwards", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), -2},
		{"Across-DST", time.Date(2024, 3, 9, 12, 0, 0, 0, ny), time.Date(2024, 3, 11, 0, 30, 0, 0, ny), 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, visit.Days(tc.last, tc.now))
		})
	}
}
