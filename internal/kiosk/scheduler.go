package kiosk

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs f once after d unless stopped.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	// Stop returns false if timer already fired or was stopped.
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

func NewScheduler() Scheduler { return realScheduler{} }

// ManualScheduler is virtual time for tests. Callbacks run on the goroutine
// calling Advance, without internal lock held.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	s   *ManualScheduler
	at  time.Duration
	seq uint64
	f   func()
}

func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

func (self *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.seq++
	t := &manualTimer{s: self, at: self.now + d, seq: self.seq, f: f}
	self.timers = append(self.timers, t)
	sort.SliceStable(self.timers, func(i, j int) bool {
		a, b := self.timers[i], self.timers[j]
		return a.at < b.at || (a.at == b.at && a.seq < b.seq)
	})
	return t
}

func (self *manualTimer) Stop() bool {
	self.s.mu.Lock()
	defer self.s.mu.Unlock()
	return self.s.remove(self)
}

// Advance moves virtual time forward by d firing due timers in order.
// Returns number of fired timers.
func (self *ManualScheduler) Advance(d time.Duration) int {
	self.mu.Lock()
	target := self.now + d
	self.mu.Unlock()

	fired := 0
	for {
		self.mu.Lock()
		if len(self.timers) == 0 || self.timers[0].at > target {
			self.now = target
			self.mu.Unlock()
			return fired
		}
		t := self.timers[0]
		self.timers = self.timers[1:]
		self.now = t.at
		self.mu.Unlock()

		t.f()
		fired++
	}
}

// Pending is number of armed timers.
func (self *ManualScheduler) Pending() int {
	self.mu.Lock()
	defer self.mu.Unlock()
	return len(self.timers)
}

// Next returns time left until earliest armed timer.
func (self *ManualScheduler) Next() (time.Duration, bool) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if len(self.timers) == 0 {
		return 0, false
	}
	return self.timers[0].at - self.now, true
}

func (self *ManualScheduler) Now() time.Duration {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.now
}

func (self *ManualScheduler) remove(t *manualTimer) bool {
	for i, x := range self.timers {
		if x == t {
			self.timers = append(self.timers[:i], self.timers[i+1:]...)
			return true
		}
	}
	return false
}

// timerSlot is one logical timer. Rearm invalidates previous generation,
// so late callback of stopped timer is ignored by tag.
type timerSlot struct {
	t   Timer
	tag uint64
}

func (self *timerSlot) armed() bool { return self.t != nil }

func (self *timerSlot) match(tag uint64) bool { return self.t != nil && self.tag == tag }

func (self *timerSlot) disarm() {
	if self.t != nil {
		self.t.Stop()
	}
	self.t = nil
	self.tag = 0
}
