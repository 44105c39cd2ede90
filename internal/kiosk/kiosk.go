// Package kiosk is the booth lifecycle controller: screensaver, unlock theater,
// visitor session with idle timeout. All state is owned by Loop goroutine,
// others Post events and read published Snapshot.
package kiosk

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"github.com/nbkstem/booth/hardware/text_display"
	kiosk_config "github.com/nbkstem/booth/internal/kiosk/config"
	"github.com/nbkstem/booth/internal/media"
	"github.com/nbkstem/booth/internal/state"
	"github.com/nbkstem/booth/internal/types"
	"github.com/nbkstem/booth/internal/vkeyboard"
	tele_api "github.com/nbkstem/booth/tele"
	"github.com/temoto/atomic_clock"
)

const eventQueueSize = 64

// Report subjects from front end host.
const (
	ReportAudio      = "audio"
	ReportFullscreen = "fullscreen"
	ReportVideo      = "video"
)

var ErrStopped = errors.New("kiosk is stopped")

type Cuer interface {
	Play(ctx context.Context) string
}

var _ Cuer = &media.Cue{}

type Kiosk struct { //nolint:maligned
	// Optional, set before Init.
	Scheduler Scheduler
	Cue       Cuer

	config   *kiosk_config.Config
	g        *state.Global
	state    State
	display  *text_display.TextDisplay
	keyboard *vkeyboard.Keyboard
	assets   *media.Assets
	eventch  chan types.Event

	view        types.View
	overlays    types.Overlay
	lines       [2]string
	introFailed bool
	session     *session
	phase       timerSlot
	activity    timerSlot
	gen         uint64
	seq         uint64
	done        []chan struct{}

	snapshot     atomic.Value // Snapshot
	lastActivity atomic_clock.Clock
	lastCue      atomic.Value // string

	subMu sync.Mutex
	subs  map[string]func(Snapshot)

	XXX_testHook func(State)
}

type session struct {
	id        string
	start     time.Time
	inputs    uint32
	views     []string
	endReason string
}

func (self *Kiosk) Init(ctx context.Context) error {
	self.g = state.GetGlobal(ctx)
	self.config = &self.g.Config.UI
	if self.Scheduler == nil {
		self.Scheduler = NewScheduler()
	}
	if self.Cue == nil {
		self.Cue = self.g.Cue()
	}
	self.display = self.g.MustTextDisplay()
	self.assets = self.g.Assets()
	self.keyboard = vkeyboard.New(nil)
	self.eventch = make(chan types.Event, eventQueueSize)
	self.subs = make(map[string]func(Snapshot))
	self.lastCue.Store("")
	self.lastActivity.SetNow()

	if self.g.Hardware.Input == nil {
		return errors.Errorf("code error kiosk Init before input dispatch")
	}
	self.g.Hardware.Input.SubscribeFunc("kiosk", func(e types.InputEvent) {
		self.Post(types.Event{Kind: types.EventInput, Input: e})
	}, self.g.Alive.StopChan())
	self.assets.SetOnChange(func() { self.Post(types.Event{Kind: types.EventPing}) })

	self.setState(StateIdle)
	self.setLines(self.config.MsgIdle1, self.config.MsgIdle2)
	self.publish()
	return nil
}

// Post enqueues event for Loop. Returns false when kiosk is stopping.
func (self *Kiosk) Post(e types.Event) bool {
	select {
	case self.eventch <- e:
		return true
	case <-self.g.Alive.StopChan():
		return false
	}
}

// Do posts event and waits until it is handled.
// Returned snapshot is published after event, maybe later.
func (self *Kiosk) Do(ctx context.Context, e types.Event) (Snapshot, error) {
	e.Done = make(chan struct{})
	stopch := self.g.Alive.StopChan()
	select {
	case self.eventch <- e:
	case <-ctx.Done():
		return Snapshot{}, errors.Trace(ctx.Err())
	case <-stopch:
		return self.Snapshot(), ErrStopped
	}
	select {
	case <-e.Done:
		return self.Snapshot(), nil
	case <-ctx.Done():
		return Snapshot{}, errors.Trace(ctx.Err())
	case <-stopch:
		return self.Snapshot(), ErrStopped
	}
}

func (self *Kiosk) Snapshot() Snapshot {
	s, _ := self.snapshot.Load().(Snapshot)
	return s
}

// SinceActivity is time since last visitor input.
func (self *Kiosk) SinceActivity() time.Duration { return atomic_clock.Since(&self.lastActivity) }

// Subscribe f to every new snapshot. f runs on Loop goroutine and must not block.
func (self *Kiosk) Subscribe(name string, f func(Snapshot)) {
	self.subMu.Lock()
	defer self.subMu.Unlock()
	if _, ok := self.subs[name]; ok {
		panic("code error kiosk duplicate subscribe name=" + name)
	}
	self.subs[name] = f
}

func (self *Kiosk) Unsubscribe(name string) {
	self.subMu.Lock()
	delete(self.subs, name)
	self.subMu.Unlock()
}

func (self *Kiosk) wait() types.Event {
	self.publish()
	self.releaseDone()
	select {
	case e := <-self.eventch:
		if e.Done != nil {
			self.done = append(self.done, e.Done)
		}
		if e.Kind == types.EventInput {
			self.lastActivity.SetNow()
		}
		return e

	case <-self.g.Alive.StopChan():
		return types.Event{Kind: types.EventStop}
	}
}

func (self *Kiosk) releaseDone() {
	for _, ch := range self.done {
		close(ch)
	}
	self.done = self.done[:0]
}

func (self *Kiosk) publish() {
	s := Snapshot{
		State:      self.State(),
		View:       self.view,
		Overlays:   self.overlays,
		Keyboard:   self.keyboard.State(),
		Lines:      self.lines,
		TimerArmed: self.activity.armed(),
	}
	if self.session != nil {
		s.Session = self.session.id
	}
	if name := self.g.Config.Media.IntroVideo; name != "" && !self.introFailed && self.assets.Available(name) {
		s.IntroVideo = name
	}
	prev := self.Snapshot()
	s.Seq = prev.Seq
	if s == prev {
		return
	}
	self.seq++
	s.Seq = self.seq
	self.snapshot.Store(s)

	self.subMu.Lock()
	for _, f := range self.subs {
		f(s)
	}
	self.subMu.Unlock()
}

func (self *Kiosk) arm(slot *timerSlot, d time.Duration) {
	slot.disarm()
	self.gen++
	tag := self.gen
	slot.tag = tag
	slot.t = self.Scheduler.AfterFunc(d, func() {
		self.Post(types.Event{Kind: types.EventTime, Tag: tag})
	})
}

// rearm restarts idle countdown from full duration, unless suppressed by overlay.
func (self *Kiosk) rearm() {
	if self.overlays.Suppressing() {
		self.activity.disarm()
		return
	}
	self.arm(&self.activity, self.config.IdleTimeout())
}

func (self *Kiosk) setLines(l1, l2 string) {
	self.lines = [2]string{l1, l2}
	self.display.SetLines(l1, l2)
}

func (self *Kiosk) setOverlay(o types.Overlay, open bool) {
	self.overlays = self.overlays.Set(o, open)
	if o.Has(types.OverlayKeyboard) {
		self.keyboard.SetVisible(open)
	}
}

func (self *Kiosk) setView(v types.View) {
	if v == self.view {
		return
	}
	self.view = v
	if self.session != nil {
		self.session.views = append(self.session.views, v.String())
	}
}

// resetView closes every modal and clears keyboard.
func (self *Kiosk) resetView() {
	self.view = types.ViewHome
	self.overlays = 0
	self.keyboard.Clear()
}

func (self *Kiosk) playCue(ctx context.Context) {
	self.lastCue.Store("")
	if !self.g.Alive.Add(1) {
		return
	}
	go func() {
		defer self.g.Alive.Done()
		kind := self.Cue.Play(ctx)
		self.lastCue.Store(kind)
	}()
}

func (self *Kiosk) beginSession() {
	self.session = &session{
		id:    uuid.New().String(),
		start: time.Now(),
		views: []string{self.view.String()},
	}
	self.g.Log.Infof("kiosk session=%s begin", self.session.id)
}

func (self *Kiosk) endSession() {
	s := self.session
	if s == nil {
		return
	}
	self.session = nil
	duration := time.Since(s.start)
	self.g.Log.Infof("kiosk session=%s end reason=%s duration=%v inputs=%d", s.id, s.endReason, duration, s.inputs)
	self.g.Tele.Session(&tele_api.Telemetry_Session{
		Id:         s.id,
		Start:      s.start.Unix(),
		DurationMs: int64(duration / time.Millisecond),
		Inputs:     s.inputs,
		Views:      s.views,
		Cue:        self.lastCue.Load().(string),
		EndReason:  s.endReason,
	})
}
