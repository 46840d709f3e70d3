package reminder

import "time"

// Resolve turns a possibly past-dated naive date-time into a concrete future
// instant relative to now.
//
// A raw value at or after now passes through unchanged. A past value is
// disambiguated by its time-of-day alone: if that clock time is still ahead
// of now's, the user meant later today, so the date is rewritten to today;
// otherwise the clock time has already passed and the date becomes tomorrow.
// time.Date carries day/month overflow, so month and year boundaries need no
// special handling.
func Resolve(raw, now time.Time) time.Time {
	if !raw.Before(now) {
		return raw
	}

	day := now
	if !laterInDay(raw, now) {
		day = now.AddDate(0, 0, 1)
	}

	return time.Date(day.Year(), day.Month(), day.Day(),
		raw.Hour(), raw.Minute(), raw.Second(), raw.Nanosecond(), raw.Location())
}

// laterInDay reports whether a's time-of-day is strictly after b's.
func laterInDay(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	if ah != bh {
		return ah > bh
	}
	if am != bm {
		return am > bm
	}
	if as != bs {
		return as > bs
	}
	return a.Nanosecond() > b.Nanosecond()
}
