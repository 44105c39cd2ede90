package types

import (
	"fmt"
)

//go:generate stringer -type=EventKind -trimprefix=Event
type EventKind uint8

const (
	EventInvalid EventKind = iota
	EventInput
	EventTime
	EventOverlay
	EventView
	EventKeyboard
	EventReport
	EventReset
	EventWake
	EventPing
	EventStop
)

//go:generate stringer -type=KeyboardOp -trimprefix=Keyboard
type KeyboardOp uint8

const (
	KeyboardInvalid KeyboardOp = iota
	KeyboardToggle
	KeyboardShow
	KeyboardHide
	KeyboardBuffer // Text is full raw widget buffer
	KeyboardKey    // Text is special key name
)

// Event is the only way to change kiosk controller state.
// Fields are meaningful per Kind, zero otherwise.
type Event struct {
	Input   InputEvent
	Text    string
	Err     error
	Done    chan struct{} // closed after event is handled and snapshot published
	Tag     uint64        // EventTime: timer generation
	Overlay Overlay
	View    View
	KeyOp   KeyboardOp
	Kind    EventKind
	Open    bool
}

func (e *Event) String() string {
	inner := ""
	switch e.Kind {
	case EventInput:
		inner = fmt.Sprintf(" source=%s kind=%s key=%d up=%t", e.Input.Source, e.Input.Kind.String(), e.Input.Key, e.Input.Up)
	case EventTime:
		inner = fmt.Sprintf(" tag=%d", e.Tag)
	case EventOverlay:
		inner = fmt.Sprintf(" overlay=%s open=%t", e.Overlay.String(), e.Open)
	case EventView:
		inner = fmt.Sprintf(" view=%s", e.View.String())
	case EventKeyboard:
		inner = fmt.Sprintf(" op=%s text=%q", e.KeyOp.String(), e.Text)
	case EventReport:
		inner = fmt.Sprintf(" subject=%s err=%v", e.Text, e.Err)
	}
	return fmt.Sprintf("Event(%s%s)", e.Kind.String(), inner)
}
