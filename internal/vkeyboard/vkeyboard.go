// Package vkeyboard bridges on-screen keyboard widget buffer and a text field
// through Telex transliteration. Field value is the single source of truth,
// widget is a dumb view re-seeded from it.
package vkeyboard

import (
	"unicode/utf8"

	"github.com/nbkstem/booth/internal/telex"
)

const (
	KeyEnter     = "enter"
	KeyBackspace = "backspace"
)

// Widget receives buffer contents. Implementations must not call back into Keyboard.
type Widget interface {
	SetBuffer(text string)
}

type Keyboard struct {
	widget  Widget
	value   string // field, always transliterated
	buffer  string // last known widget buffer
	visible bool
}

type State struct {
	Value   string `json:"value"`
	Buffer  string `json:"buffer"`
	Visible bool   `json:"visible"`
}

func New(w Widget) *Keyboard { return &Keyboard{widget: w} }

// SetWidget attaches a view late, e.g. after front end reconnect, and seeds it with current field.
func (self *Keyboard) SetWidget(w Widget) {
	self.widget = w
	self.seed()
}

func (self *Keyboard) Value() string     { return self.value }
func (self *Keyboard) Buffer() string    { return self.buffer }
func (self *Keyboard) Visible() bool     { return self.visible }
func (self *Keyboard) SetVisible(v bool) { self.visible = v }

// Toggle is the only user facing way to show keyboard; focus never opens it.
func (self *Keyboard) Toggle() bool {
	self.visible = !self.visible
	return self.visible
}

func (self *Keyboard) State() State {
	return State{Value: self.value, Buffer: self.buffer, Visible: self.visible}
}

// OnBufferChange takes full raw widget buffer after any keystroke.
// Widget is written back only when transliteration changed something.
func (self *Keyboard) OnBufferChange(raw string) string {
	display := telex.Transliterate(raw)
	self.value = display
	self.buffer = raw
	if display != raw {
		self.seed()
	}
	return display
}

// OnSpecialKey handles keys the widget does not put into its buffer.
// Returns false for unknown keys, state is unchanged then.
func (self *Keyboard) OnSpecialKey(key string) bool {
	switch key {
	case KeyEnter:
		self.value += "\n"
	case KeyBackspace:
		if self.value == "" {
			return true
		}
		_, size := utf8.DecodeLastRuneInString(self.value)
		self.value = self.value[:len(self.value)-size]
	default:
		return false
	}
	self.seed()
	return true
}

// SetValue replaces field programmatically, e.g. after chat submit.
func (self *Keyboard) SetValue(s string) {
	self.value = s
	self.seed()
}

// Clear empties field and hides keyboard.
func (self *Keyboard) Clear() {
	self.visible = false
	self.SetValue("")
}

func (self *Keyboard) seed() {
	self.buffer = self.value
	if self.widget != nil {
		self.widget.SetBuffer(self.value)
	}
}
