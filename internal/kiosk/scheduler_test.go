package kiosk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualScheduler(t *testing.T) {
	t.Parallel()

	s := NewManualScheduler()
	order := ""
	s.AfterFunc(3*time.Second, func() { order += "c" })
	s.AfterFunc(time.Second, func() { order += "a" })
	b := s.AfterFunc(2*time.Second, func() { order += "b" })
	s.AfterFunc(time.Second, func() { order += "A" })
	require.Equal(t, 4, s.Pending())

	next, ok := s.Next()
	assert.True(t, ok)
	assert.Equal(t, time.Second, next)

	assert.True(t, b.Stop())
	assert.False(t, b.Stop())
	assert.Equal(t, 2, s.Advance(1500*time.Millisecond))
	assert.Equal(t, "aA", order)
	assert.Equal(t, 1500*time.Millisecond, s.Now())

	next, _ = s.Next()
	assert.Equal(t, 1500*time.Millisecond, next)
	assert.Equal(t, 1, s.Advance(time.Hour))
	assert.Equal(t, "aAc", order)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestManualSchedulerNested(t *testing.T) {
	t.Parallel()

	// callback arming new timer, like Post from timer callback re-arming in loop
	s := NewManualScheduler()
	fired := 0
	var f func()
	f = func() {
		fired++
		s.AfterFunc(time.Second, f)
	}
	s.AfterFunc(time.Second, f)
	assert.Equal(t, 3, s.Advance(3500*time.Millisecond))
	assert.Equal(t, 3, fired)
	assert.Equal(t, 1, s.Pending())
}

func TestTimerSlot(t *testing.T) {
	t.Parallel()

	s := NewManualScheduler()
	var slot timerSlot
	assert.False(t, slot.armed())
	slot.t = s.AfterFunc(time.Second, func() {})
	slot.tag = 7
	assert.True(t, slot.match(7))
	assert.False(t, slot.match(6))
	slot.disarm()
	assert.False(t, slot.match(7))
	assert.Equal(t, 0, s.Pending())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Idle", StateIdle.String())
	assert.Equal(t, "Unlocking", StateUnlocking.String())
	assert.Equal(t, "State(9)", State(9).String())
	b, err := StateActive.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Active", string(b))
}
