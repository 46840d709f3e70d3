package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jmhodges/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct {
	mu    sync.Mutex
	calls []Job
	fired chan struct{}
}

func newMockDispatcher() *mockDispatcher {
	return &mockDispatcher{fired: make(chan struct{}, 16)}
}

func (m *mockDispatcher) Dispatch(_ context.Context, task, senderID string) {
	m.mu.Lock()
	m.calls = append(m.calls, Job{Task: task, SenderID: senderID})
	m.mu.Unlock()
	m.fired <- struct{}{}
}

func (m *mockDispatcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockDispatcher) waitFired(t *testing.T) {
	t.Helper()
	select {
	case <-m.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not happen")
	}
}

func testClock(t *testing.T) clock.FakeClock {
	t.Helper()
	fc := clock.NewFake()
	fc.Set(time.Date(2024, time.January, 10, 8, 0, 0, 0, time.Local))
	return fc
}

func TestSchedule_RejectsPastTime(t *testing.T) {
	fc := testClock(t)
	s := New(newMockDispatcher(), fc, time.Second)

	err := s.Schedule(Job{
		ID:     "reminder_x",
		FireAt: fc.Now().Add(-time.Minute),
	})

	assert.ErrorIs(t, err, ErrPastTime)
	assert.Equal(t, 0, s.PendingCount())
}

func TestSchedule_AcceptsFireAtEqualNow(t *testing.T) {
	fc := testClock(t)
	s := New(newMockDispatcher(), fc, time.Second)

	require.NoError(t, s.Schedule(Job{ID: "reminder_x", FireAt: fc.Now()}))
	assert.Equal(t, 1, s.PendingCount())
}

func TestSweep_FiresDueJobOnce(t *testing.T) {
	fc := testClock(t)
	d := newMockDispatcher()
	s := New(d, fc, time.Second)

	require.NoError(t, s.Schedule(Job{
		ID:       "reminder_2024-01-10T09:00:00_standup",
		FireAt:   fc.Now().Add(time.Hour),
		Task:     "standup",
		SenderID: "whatsapp:+15551234567",
	}))

	// Not due yet.
	s.sweep(context.Background())
	assert.Equal(t, 0, d.callCount())
	assert.Equal(t, 1, s.PendingCount())

	fc.Add(time.Hour)
	s.sweep(context.Background())
	d.waitFired(t)

	assert.Equal(t, 0, s.PendingCount())

	// A later sweep must not fire it again.
	fc.Add(time.Hour)
	s.sweep(context.Background())
	assert.Equal(t, 1, d.callCount())

	d.mu.Lock()
	defer d.mu.Unlock()
	assert.Equal(t, "standup", d.calls[0].Task)
	assert.Equal(t, "whatsapp:+15551234567", d.calls[0].SenderID)
}

func TestSchedule_SameIDReplaces(t *testing.T) {
	fc := testClock(t)
	d := newMockDispatcher()
	s := New(d, fc, time.Second)

	require.NoError(t, s.Schedule(Job{ID: "reminder_x", FireAt: fc.Now().Add(time.Hour), Task: "first"}))
	require.NoError(t, s.Schedule(Job{ID: "reminder_x", FireAt: fc.Now().Add(2 * time.Hour), Task: "second"}))

	assert.Equal(t, 1, s.PendingCount())

	// Only the replacement fires, at its own time.
	fc.Add(time.Hour)
	s.sweep(context.Background())
	assert.Equal(t, 0, d.callCount())

	fc.Add(time.Hour)
	s.sweep(context.Background())
	d.waitFired(t)

	d.mu.Lock()
	defer d.mu.Unlock()
	require.Len(t, d.calls, 1)
	assert.Equal(t, "second", d.calls[0].Task)
}

func TestSweep_FiresMultipleDueJobs(t *testing.T) {
	fc := testClock(t)
	d := newMockDispatcher()
	s := New(d, fc, time.Second)

	require.NoError(t, s.Schedule(Job{ID: "reminder_a", FireAt: fc.Now().Add(time.Minute), Task: "a"}))
	require.NoError(t, s.Schedule(Job{ID: "reminder_b", FireAt: fc.Now().Add(2 * time.Minute), Task: "b"}))
	require.NoError(t, s.Schedule(Job{ID: "reminder_c", FireAt: fc.Now().Add(time.Hour), Task: "c"}))

	fc.Add(5 * time.Minute)
	s.sweep(context.Background())
	d.waitFired(t)
	d.waitFired(t)

	assert.Equal(t, 2, d.callCount())
	assert.Equal(t, 1, s.PendingCount())
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := New(newMockDispatcher(), nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
