package types

import "github.com/juju/errors"

type InputKind uint8

const (
	InputInvalid InputKind = iota
	InputPointerDown
	InputPointerMove
	InputClick
	InputTouch
	InputKey
	InputScroll
	InputWheel
)

var inputKindNames = [...]string{"invalid", "pointerdown", "pointermove", "click", "touch", "key", "scroll", "wheel"}

func (k InputKind) String() string {
	if int(k) < len(inputKindNames) {
		return inputKindNames[k]
	}
	return "invalid"
}

func ParseInputKind(s string) (InputKind, error) {
	for i, name := range inputKindNames {
		if i != 0 && name == s {
			return InputKind(i), nil
		}
	}
	return InputInvalid, errors.NotValidf("input kind=%q", s)
}

type InputEvent struct {
	Source string
	Key    uint16 // device scan code, when known
	Kind   InputKind
	Up     bool
}

func (e *InputEvent) IsZero() bool { return e.Kind == InputInvalid }

// IsTap reports press-like input that may wake the kiosk.
func (e *InputEvent) IsTap() bool {
	if e.Up {
		return false
	}
	switch e.Kind {
	case InputPointerDown, InputClick, InputTouch:
		return true
	}
	return false
}
