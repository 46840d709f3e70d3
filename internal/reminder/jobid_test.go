package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobID_Deterministic(t *testing.T) {
	a := JobID("2024-01-10T09:00:00", "buy groceries")
	b := JobID("2024-01-10T09:00:00", "buy groceries")

	assert.Equal(t, a, b)
}

func TestJobID_Format(t *testing.T) {
	id := JobID("2024-01-10T09:00:00", "buy groceries for the week")

	assert.Equal(t, "reminder_2024-01-10T09:00:00_buy grocer", id)
}

func TestJobID_ShortTask(t *testing.T) {
	id := JobID("2024-01-10T09:00:00", "gym")

	assert.Equal(t, "reminder_2024-01-10T09:00:00_gym", id)
}

func TestJobID_DifferentTimesDiffer(t *testing.T) {
	a := JobID("2024-01-10T09:00:00", "buy groceries")
	b := JobID("2024-01-10T10:00:00", "buy groceries")

	assert.NotEqual(t, a, b)
}

func TestJobID_PrefixCollision(t *testing.T) {
	// Tasks sharing the first 10 runes collide on purpose; the scheduler
	// logs the replacement.
	a := JobID("2024-01-10T09:00:00", "call mom about dinner")
	b := JobID("2024-01-10T09:00:00", "call mom about the weekend")

	assert.Equal(t, a, b)
}

func TestJobID_MultibyteTask(t *testing.T) {
	// Truncation counts runes, not bytes.
	id := JobID("2024-01-10T09:00:00", "читать книгу перед сном")

	assert.Equal(t, "reminder_2024-01-10T09:00:00_читать кни", id)
}
