// Package text_display renders two status lines of fixed width with
// scrolling of long lines. Works on runes, so Vietnamese text keeps
// its width. Device is anything able to show two lines: kiosk front end,
// terminal, log.
package text_display

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/temoto/alive/v2"
)

const MaxWidth = 64

var spaceRunes = []rune(fmt.Sprintf("%*s", MaxWidth, ""))

type TextDisplay struct { //nolint:maligned
	alive *alive.Alive
	mu    sync.Mutex
	dev   Devicer
	width uint32
	state State

	tickd time.Duration
	tick  uint32
	upd   chan<- State
}

type TextDisplayConfig struct {
	ScrollDelay time.Duration
	Width       uint32
}

type Devicer interface {
	Show(line1, line2 string)
}

func NewTextDisplay(opt *TextDisplayConfig) (*TextDisplay, error) {
	if opt == nil {
		panic("code error TextDisplayConfig=nil")
	}
	if opt.Width == 0 || opt.Width > MaxWidth {
		return nil, fmt.Errorf("text display width=%d must be 1..%d", opt.Width, MaxWidth)
	}
	self := &TextDisplay{
		alive: alive.NewAlive(),
		tickd: opt.ScrollDelay,
		width: opt.Width,
	}
	return self, nil
}

func (self *TextDisplay) SetDevice(dev Devicer) {
	self.mu.Lock()
	defer self.mu.Unlock()

	self.dev = dev
}

func (self *TextDisplay) Width() uint32 { return atomic.LoadUint32(&self.width) }

func (self *TextDisplay) Clear() {
	self.mu.Lock()
	defer self.mu.Unlock()

	self.state.Clear()
	self.flush()
}

// Message shows s1,s2 while wait() runs, then restores previous lines.
func (self *TextDisplay) Message(s1, s2 string, wait func()) {
	next := State{
		L1: self.Translate(s1),
		L2: self.Translate(s2),
	}

	self.mu.Lock()
	prev := self.state
	self.state = next
	self.flush()
	self.mu.Unlock()

	wait()

	self.mu.Lock()
	self.state = prev
	self.flush()
	self.mu.Unlock()
}

func (self *TextDisplay) SetLines(line1, line2 string) {
	r1, r2 := self.Translate(line1), self.Translate(line2)

	self.mu.Lock()
	defer self.mu.Unlock()
	self.state.L1 = r1
	self.state.L2 = r2
	atomic.StoreUint32(&self.tick, 0)
	self.flush()
}

func (self *TextDisplay) Tick() {
	self.mu.Lock()
	defer self.mu.Unlock()

	atomic.AddUint32(&self.tick, 1)
	self.flush()
}

// Run scrolls long lines until Stop. No-op with zero scroll delay.
func (self *TextDisplay) Run() {
	self.mu.Lock()
	delay := self.tickd
	self.mu.Unlock()
	if delay == 0 {
		return
	}
	tmr := time.NewTicker(delay)
	defer tmr.Stop()
	stopch := self.alive.StopChan()
	for self.alive.IsRunning() {
		select {
		case <-tmr.C:
			self.Tick()
		case <-stopch:
			return
		}
	}
}

func (self *TextDisplay) Stop() { self.alive.Stop() }

// JustCenter may return b itself when it is wide enough.
func (self *TextDisplay) JustCenter(b []rune) []rune {
	l := len(b)
	w := int(self.Width())
	if l == 0 {
		return spaceRunes[:w]
	}
	if l >= w-1 {
		return b
	}
	padtotal := w - l
	n := padtotal / 2
	buf := make([]rune, 0, w)
	buf = append(buf, spaceRunes[:n]...)
	buf = append(buf, b...)
	buf = append(buf, spaceRunes[:n+padtotal%2]...)
	return buf
}

func (self *TextDisplay) PadRight(b []rune) []rune {
	return PadSpace(b, self.Width())
}

// Translate converts string for display. Trailing \x00 disables padding (cursor position).
func (self *TextDisplay) Translate(s string) []rune {
	if len(s) == 0 {
		return nil
	}
	pad := true
	if s[len(s)-1] == '\x00' {
		pad = false
		s = s[:len(s)-1]
	}
	result := []rune(s)
	if pad {
		result = self.PadRight(result)
	}
	return result
}

// SetUpdateChan receives every rendered state. Sends block, use buffered chan.
func (self *TextDisplay) SetUpdateChan(ch chan<- State) {
	self.mu.Lock()
	self.upd = ch
	self.mu.Unlock()
}

func (self *TextDisplay) State() State {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.state.Copy()
}

func (self *TextDisplay) flush() {
	var buf1 [MaxWidth]rune
	var buf2 [MaxWidth]rune
	b1 := buf1[:self.width]
	b2 := buf2[:self.width]
	tick := atomic.LoadUint32(&self.tick)
	n1 := scrollWrap(b1, self.state.L1, tick)
	n2 := scrollWrap(b2, self.state.L2, tick)

	if self.dev != nil {
		self.dev.Show(string(b1[:n1]), string(b2[:n2]))
	}
	if self.upd != nil {
		self.upd <- self.state.Copy()
	}
}

type State struct {
	L1, L2 []rune
}

func (s *State) Clear() {
	s.L1 = nil
	s.L2 = nil
}

func (s State) Copy() State {
	return State{
		L1: append([]rune(nil), s.L1...),
		L2: append([]rune(nil), s.L2...),
	}
}

func (s State) Format(width uint32) string {
	return fmt.Sprintf("%s\n%s",
		string(PadSpace(s.L1, width)),
		string(PadSpace(s.L2, width)),
	)
}

func (s State) String() string {
	return fmt.Sprintf("%s\n%s", string(s.L1), string(s.L2))
}

func PadSpace(b []rune, width uint32) []rune {
	l := uint32(len(b))
	if l == 0 {
		return spaceRunes[:width]
	}
	if l >= width {
		return b
	}
	buf := make([]rune, 0, width)
	buf = append(append(buf, b...), spaceRunes[:width-l]...)
	return buf
}

// relies that len(buf) == display width
func scrollWrap(buf []rune, content []rune, tick uint32) uint32 {
	length := uint32(len(content))
	width := uint32(len(buf))
	gap := width / 2
	n := 0
	if length <= width {
		n = copy(buf, content)
		copy(buf[n:], spaceRunes)
		return uint32(n)
	}

	offset := tick % (length + gap)
	if offset < length {
		n = copy(buf, content[offset:])
	} else {
		gap = gap - (offset - length)
	}
	n += copy(buf[n:], spaceRunes[:gap])
	n += copy(buf[n:], content)
	return uint32(n)
}
