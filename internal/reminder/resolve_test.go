package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func local(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func TestResolve_FutureUnchanged(t *testing.T) {
	now := local(2024, time.January, 10, 8, 0, 0)
	raw := local(2024, time.January, 10, 9, 0, 0)

	assert.Equal(t, raw, Resolve(raw, now))
}

func TestResolve_EqualToNowUnchanged(t *testing.T) {
	now := local(2024, time.January, 10, 8, 0, 0)

	assert.Equal(t, now, Resolve(now, now))
}

func TestResolve_TimePassedTodayMovesToTomorrow(t *testing.T) {
	now := local(2024, time.January, 10, 8, 0, 0)
	raw := local(2024, time.January, 10, 7, 0, 0)

	assert.Equal(t, local(2024, time.January, 11, 7, 0, 0), Resolve(raw, now))
}

func TestResolve_PastDateLaterClockMovesToToday(t *testing.T) {
	now := local(2024, time.January, 10, 8, 0, 0)
	raw := local(2024, time.January, 9, 20, 0, 0)

	assert.Equal(t, local(2024, time.January, 10, 20, 0, 0), Resolve(raw, now))
}

func TestResolve_EqualClockTimeMovesToTomorrow(t *testing.T) {
	now := local(2024, time.January, 10, 8, 0, 0)
	raw := local(2024, time.January, 9, 8, 0, 0)

	assert.Equal(t, local(2024, time.January, 11, 8, 0, 0), Resolve(raw, now))
}

func TestResolve_MonthRollover(t *testing.T) {
	now := local(2024, time.January, 31, 23, 0, 0)
	raw := local(2024, time.January, 31, 22, 0, 0)

	assert.Equal(t, local(2024, time.February, 1, 22, 0, 0), Resolve(raw, now))
}

func TestResolve_YearRollover(t *testing.T) {
	now := local(2024, time.December, 31, 23, 30, 0)
	raw := local(2024, time.December, 31, 10, 0, 0)

	assert.Equal(t, local(2025, time.January, 1, 10, 0, 0), Resolve(raw, now))
}

func TestResolve_NeverInPast(t *testing.T) {
	now := local(2024, time.June, 15, 12, 34, 56)

	cases := []time.Time{
		local(2023, time.June, 15, 12, 0, 0),
		local(2024, time.June, 15, 12, 34, 55),
		local(2024, time.June, 14, 23, 59, 59),
		local(2020, time.January, 1, 0, 0, 0),
	}

	for _, raw := range cases {
		resolved := Resolve(raw, now)
		assert.False(t, resolved.Before(now), "resolved %s for raw %s is before now", resolved, raw)
		assert.Equal(t, raw.Hour(), resolved.Hour())
		assert.Equal(t, raw.Minute(), resolved.Minute())
		assert.Equal(t, raw.Second(), resolved.Second())
	}
}
