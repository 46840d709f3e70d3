package reminder

import "time"

// ISOLayout is the naive local date-time layout used on the wire and in
// storage. No timezone offset: the agent operates in the host's local time.
const ISOLayout = "2006-01-02T15:04:05"

// Status values for stored reminders.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Parsed is the output of the natural-language parser: a task description,
// the raw date-time string as the user expressed it, and an importance flag.
// DateTime is empty when no usable date/time could be extracted.
type Parsed struct {
	Task      string `json:"task"`
	DateTime  string `json:"datetime"`
	Important bool   `json:"is_important"`
}

// Record is a durable reminder row. RemindTime keeps the raw pre-resolution
// ISO string; the resolved fire time lives only in the scheduler.
type Record struct {
	ID          int64  `json:"id"`
	Message     string `json:"message"`
	RemindTime  string `json:"remind_time"`
	IsImportant bool   `json:"is_important"`
	Status      string `json:"status"`
}

// ParseLocal parses a naive ISO date-time in the host's local time zone.
func ParseLocal(iso string) (time.Time, error) {
	return time.ParseInLocation(ISOLayout, iso, time.Local)
}
