package input

import (
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/internal/types"
	"github.com/temoto/inputevent-go"
	"golang.org/x/sys/unix"
)

const DevInputEventTag = "dev-input-event"

// linux/input-event-codes.h
const (
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	relHWheel = 0x06
	relWheel  = 0x08
	btnLeft   = 0x110
	btnRight  = 0x111
	btnTouch  = 0x14a

	// _IOW('E', 0x90, int)
	ioctlEVIOCGRAB = 0x40044590
)

type DevInputEventSource struct {
	f io.ReadCloser
}

var _ Source = new(DevInputEventSource) // compile-time interface test

func (self *DevInputEventSource) String() string { return DevInputEventTag }

// NewDevInputEventSource opens evdev device. With grab, events are not
// delivered to other readers (X server), so taps on screensaver never reach browser.
func NewDevInputEventSource(device string, grab bool) (*DevInputEventSource, error) {
	f, err := os.Open(device)
	if err != nil {
		return nil, errors.Annotatef(err, "open device=%s", device)
	}
	if grab {
		if err = unix.IoctlSetInt(int(f.Fd()), ioctlEVIOCGRAB, 1); err != nil {
			f.Close()
			return nil, errors.Annotatef(err, "EVIOCGRAB device=%s", device)
		}
	}
	return &DevInputEventSource{f: f}, nil
}

func NewDevInputEventReader(r io.ReadCloser) *DevInputEventSource {
	return &DevInputEventSource{f: r}
}

func (self *DevInputEventSource) Close() error { return self.f.Close() }

// Read skips sync and unrelated events, returns next activity.
func (self *DevInputEventSource) Read() (types.InputEvent, error) {
	for {
		ie, err := inputevent.ReadOne(self.f)
		if err != nil {
			return types.InputEvent{}, err
		}
		if ev, ok := Translate(ie); ok {
			return ev, nil
		}
	}
}

func Translate(ie inputevent.InputEvent) (types.InputEvent, bool) {
	ev := types.InputEvent{Source: DevInputEventTag, Key: ie.Code}
	switch ie.Type {
	case evKey:
		if ie.Value == int32(inputevent.KeyStateHold) {
			return ev, false
		}
		ev.Up = ie.Value == int32(inputevent.KeyStateUp)
		switch ie.Code {
		case btnTouch:
			ev.Kind = types.InputTouch
		case btnLeft, btnRight:
			ev.Kind = types.InputPointerDown
		default:
			ev.Kind = types.InputKey
		}
	case evRel:
		switch ie.Code {
		case relWheel, relHWheel:
			ev.Kind = types.InputWheel
		default:
			ev.Kind = types.InputPointerMove
		}
	case evAbs:
		ev.Kind = types.InputPointerMove
	default:
		return ev, false
	}
	return ev, true
}
