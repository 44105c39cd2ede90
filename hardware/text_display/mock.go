package text_display

import "sync"

func NewMockTextDisplay(opt *TextDisplayConfig) *TextDisplay {
	display, err := NewTextDisplay(opt)
	if err != nil {
		panic(err)
	}
	display.dev = new(MockDevicer)
	return display
}

// MockDevicer remembers last shown frame.
type MockDevicer struct {
	mu     sync.Mutex
	l1, l2 string
}

func (self *MockDevicer) Show(line1, line2 string) {
	self.mu.Lock()
	self.l1, self.l2 = line1, line2
	self.mu.Unlock()
}

func (self *MockDevicer) Last() (string, string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.l1, self.l2
}
