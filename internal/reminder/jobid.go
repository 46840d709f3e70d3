package reminder

const (
	jobIDPrefix    = "reminder_"
	jobIDTaskRunes = 10
)

// JobID derives the scheduler job identifier for a reminder from its raw ISO
// date-time string and task text. Deterministic: the same inputs always map
// to the same id, so a re-sent reminder replaces its earlier registration.
// Distinct tasks sharing a raw time and a 10-rune prefix collide; the
// scheduler logs when such a replacement happens.
func JobID(rawISO, task string) string {
	runes := []rune(task)
	if len(runes) > jobIDTaskRunes {
		runes = runes[:jobIDTaskRunes]
	}
	return jobIDPrefix + rawISO + "_" + string(runes)
}
