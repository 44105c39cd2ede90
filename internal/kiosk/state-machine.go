package kiosk

import (
	"context"
	"sync/atomic"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/internal/types"
	tele_api "github.com/nbkstem/booth/tele"
)

//go:generate stringer -type=State -trimprefix=State
type State uint32

const (
	StateDefault State = iota

	StateIdle      // screensaver +tap/wake=Unlocking
	StateUnlocking // t=unlock_ms ->Granted +reset=Idle
	StateGranted   // cue, t=granted_ms ->Active +reset=Idle
	StateActive    // session, t=idle_timeout ->Idle +reset=Idle

	StateStop
)

const (
	endReasonTimeout = "timeout"
	endReasonReset   = "reset"
	endReasonStop    = "stop"
)

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s State) Tele() tele_api.State {
	switch s {
	case StateIdle:
		return tele_api.State_Idle
	case StateUnlocking:
		return tele_api.State_Unlocking
	case StateGranted:
		return tele_api.State_Granted
	case StateActive:
		return tele_api.State_Active
	}
	return tele_api.State_Invalid
}

func (self *Kiosk) State() State       { return State(atomic.LoadUint32((*uint32)(&self.state))) }
func (self *Kiosk) setState(new State) { atomic.StoreUint32((*uint32)(&self.state), uint32(new)) }

// Loop is the only goroutine mutating kiosk state.
func (self *Kiosk) Loop(ctx context.Context) {
	if !self.g.Alive.Add(1) {
		return
	}
	defer self.g.Alive.Done()
	next := StateDefault
	for next != StateStop && self.g.Alive.IsRunning() {
		current := self.State()
		next = self.enter(ctx, current)
		if next == StateDefault {
			self.g.Log.Fatalf("kiosk state=%s next=default", current.String())
		}
		self.exit(ctx, current, next)

		if !self.g.Alive.IsRunning() {
			self.g.Log.Debugf("kiosk Loop stopping because g.Alive")
			next = StateStop
		}

		self.setState(next)
		if self.XXX_testHook != nil {
			self.XXX_testHook(next)
		}
	}
	self.phase.disarm()
	self.activity.disarm()
	self.publish()
	self.releaseDone()
	self.g.Log.Debugf("kiosk loop end")
}

func (self *Kiosk) enter(ctx context.Context, s State) State {
	self.g.Log.Debugf("kiosk enter %s", s.String())
	self.g.Tele.State(s.Tele())
	switch s {
	case StateIdle:
		return self.onIdle(ctx)
	case StateUnlocking:
		return self.onUnlocking(ctx)
	case StateGranted:
		return self.onGranted(ctx)
	case StateActive:
		return self.onActive(ctx)
	default:
		self.g.Log.Fatalf("code error kiosk state=%s unhandled", s.String())
	}
	return StateDefault
}

func (self *Kiosk) exit(ctx context.Context, current, next State) {
	self.g.Log.Debugf("kiosk exit %s -> %s", current.String(), next.String())
	self.phase.disarm()
	if current == StateActive {
		self.activity.disarm()
		self.resetView()
		self.endSession()
	}
}

func (self *Kiosk) onIdle(ctx context.Context) State {
	self.activity.disarm()
	self.resetView()
	self.setLines(self.config.MsgIdle1, self.config.MsgIdle2)
	for {
		e := self.wait()
		switch e.Kind {
		case types.EventInput:
			if e.Input.IsTap() {
				return StateUnlocking
			}
		case types.EventWake:
			return StateUnlocking
		case types.EventReset:
			self.resetView()
		case types.EventStop:
			return StateStop
		default:
			self.handleCommon(ctx, e)
		}
	}
}

func (self *Kiosk) onUnlocking(ctx context.Context) State {
	self.setLines(self.config.MsgUnlocking1, self.config.MsgUnlocking2)
	self.arm(&self.phase, self.config.UnlockDelay())
	return self.phaseWait(ctx, StateGranted)
}

func (self *Kiosk) onGranted(ctx context.Context) State {
	self.setLines(self.config.MsgGranted1, self.config.MsgGranted2)
	self.playCue(ctx)
	self.arm(&self.phase, self.config.GrantDelay())
	return self.phaseWait(ctx, StateActive)
}

// phaseWait ignores taps until phase timer fires.
func (self *Kiosk) phaseWait(ctx context.Context, next State) State {
	for {
		e := self.wait()
		switch e.Kind {
		case types.EventTime:
			if self.phase.match(e.Tag) {
				self.phase.disarm()
				return next
			}
			self.g.Log.Debugf("kiosk stale timer tag=%d", e.Tag)
		case types.EventInput, types.EventWake:
		case types.EventReset:
			return StateIdle
		case types.EventStop:
			return StateStop
		default:
			self.handleCommon(ctx, e)
		}
	}
}

func (self *Kiosk) onActive(ctx context.Context) State {
	self.setLines(self.config.MsgActive1, self.config.MsgActive2)
	self.beginSession()
	self.rearm()
	for {
		e := self.wait()
		switch e.Kind {
		case types.EventInput:
			self.session.inputs++
			self.rearm()
		case types.EventWake:
			self.rearm()
		case types.EventOverlay:
			self.setOverlay(e.Overlay, e.Open)
			self.rearm()
		case types.EventView:
			self.setView(e.View)
			self.rearm()
		case types.EventKeyboard:
			self.onKeyboard(e)
			self.rearm()
		case types.EventTime:
			if self.activity.match(e.Tag) {
				self.activity.disarm()
				self.session.endReason = endReasonTimeout
				return StateIdle
			}
			self.g.Log.Debugf("kiosk stale timer tag=%d", e.Tag)
		case types.EventReset:
			self.session.endReason = endReasonReset
			return StateIdle
		case types.EventStop:
			self.session.endReason = endReasonStop
			return StateStop
		default:
			self.handleCommon(ctx, e)
		}
	}
}

func (self *Kiosk) onKeyboard(e types.Event) {
	kb := self.keyboard
	switch e.KeyOp {
	case types.KeyboardToggle:
		self.setOverlay(types.OverlayKeyboard, !kb.Visible())
	case types.KeyboardShow:
		self.setOverlay(types.OverlayKeyboard, true)
	case types.KeyboardHide:
		self.setOverlay(types.OverlayKeyboard, false)
	case types.KeyboardBuffer:
		kb.OnBufferChange(e.Text)
	case types.KeyboardKey:
		if !kb.OnSpecialKey(e.Text) {
			self.g.Log.Debugf("kiosk keyboard unknown key=%q", e.Text)
		}
	default:
		self.g.Log.Errorf("code error kiosk keyboard op=%s", e.KeyOp.String())
	}
}

// handleCommon serves events meaningful in any state.
func (self *Kiosk) handleCommon(ctx context.Context, e types.Event) {
	switch e.Kind {
	case types.EventReport:
		if e.Text == ReportVideo {
			self.introFailed = true
		}
		err := e.Err
		if err == nil {
			err = errors.New("unspecified")
		}
		self.g.Log.Error(errors.Annotatef(err, "kiosk host report subject=%s", e.Text))
	case types.EventPing:
	case types.EventTime:
		self.g.Log.Debugf("kiosk stale timer tag=%d", e.Tag)
	default:
		self.g.Log.Debugf("kiosk state=%s ignore %s", self.State().String(), e.String())
	}
}
