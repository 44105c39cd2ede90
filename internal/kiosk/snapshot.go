package kiosk

import (
	"time"

	"github.com/nbkstem/booth/internal/types"
	"github.com/nbkstem/booth/internal/vkeyboard"
	tele_api "github.com/nbkstem/booth/tele"
)

// Snapshot is published kiosk state, front end renders only this.
type Snapshot struct {
	State      State           `json:"state"`
	View       types.View      `json:"view"`
	Overlays   types.Overlay   `json:"overlays"`
	Keyboard   vkeyboard.State `json:"keyboard"`
	Session    string          `json:"session,omitempty"`
	IntroVideo string          `json:"intro_video,omitempty"` // empty = placeholder
	Lines      [2]string       `json:"lines"`
	TimerArmed bool            `json:"timer_armed"`
	Seq        uint64          `json:"seq"`
}

func (s *Snapshot) Telemetry(idle time.Duration) *tele_api.Telemetry_Snapshot {
	return &tele_api.Telemetry_Snapshot{
		State:      s.State.Tele(),
		View:       s.View.String(),
		Overlays:   uint32(s.Overlays),
		TimerArmed: s.TimerArmed,
		SessionId:  s.Session,
		IdleMs:     int64(idle / time.Millisecond),
	}
}
