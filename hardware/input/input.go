// Package input turns touch panel and keyboard devices into booth activity.
// Every tap, swipe or key press read from a device is handed to named
// listeners; kiosk is the one that matters, it resets the idle timer.
// Front end and console activity does not pass through here, it is posted
// to kiosk directly.
package input

import (
	"fmt"
	"sync"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/internal/types"
	"github.com/nbkstem/booth/log2"
)

// Drain discards activity already queued in ch without blocking.
func Drain(ch <-chan types.InputEvent) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// Source is one activity device, e.g. evdev touch panel.
// Read blocks until next event; error means device is gone.
type Source interface {
	Read() (types.InputEvent, error)
	String() string
}

type EventFunc func(types.InputEvent)

type listener struct {
	name string
	ch   chan<- types.InputEvent
	fun  EventFunc
	done <-chan struct{}
}

type Dispatch struct {
	Log       *log2.Log
	activity  chan types.InputEvent
	mu        sync.Mutex
	listeners map[string]*listener
	stop      <-chan struct{}
}

func NewDispatch(log *log2.Log, stop <-chan struct{}) *Dispatch {
	return &Dispatch{
		Log:       log,
		activity:  make(chan types.InputEvent),
		listeners: make(map[string]*listener, 4),
		stop:      stop,
	}
}

// SubscribeChan returns unbuffered channel of device activity, closed when done fires.
func (self *Dispatch) SubscribeChan(name string, done <-chan struct{}) chan types.InputEvent {
	target := make(chan types.InputEvent)
	self.listen(&listener{name: name, ch: target, done: done})
	return target
}

// SubscribeFunc calls fun on Run goroutine for each activity event. fun must not block.
func (self *Dispatch) SubscribeFunc(name string, fun EventFunc, done <-chan struct{}) {
	self.listen(&listener{name: name, fun: fun, done: done})
}

func (self *Dispatch) Unsubscribe(name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	l, ok := self.listeners[name]
	if !ok {
		panic("code error input listener not found name=" + name)
	}
	self.drop(l)
}

// Run starts a reader per device and hands activity to listeners until stop.
func (self *Dispatch) Run(sources []Source) {
	for _, source := range sources {
		go self.pump(source)
	}

	for {
		select {
		case event := <-self.activity:
			self.mu.Lock()
			n := len(self.listeners)
			for _, l := range self.listeners {
				self.deliver(l, event)
			}
			self.mu.Unlock()
			if n == 0 {
				self.Log.Debugf("input activity without listeners source=%s kind=%s", event.Source, event.Kind.String())
			}

		case <-self.stop:
			Drain(self.activity)
			return
		}
	}
}

// Emit injects activity as if read from a device.
// Blocks until Run takes it or dispatch stops.
func (self *Dispatch) Emit(event types.InputEvent) {
	select {
	case self.activity <- event:
	case <-self.stop:
	}
}

func (self *Dispatch) deliver(l *listener, event types.InputEvent) {
	select {
	case <-l.done:
		self.drop(l)
		return
	default:
	}

	if l.ch == nil && l.fun == nil {
		panic(fmt.Sprintf("code error input listener=%s ch=nil fun=nil", l.name))
	}
	if l.fun != nil {
		l.fun(event)
	}
	if l.ch != nil {
		select {
		case l.ch <- event:
		case <-l.done:
			self.drop(l)
		}
	}
}

// drop requires mu held.
func (self *Dispatch) drop(l *listener) {
	if l.ch != nil {
		close(l.ch)
	}
	delete(self.listeners, l.name)
}

func (self *Dispatch) listen(l *listener) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if existing, ok := self.listeners[l.name]; ok {
		select {
		case <-l.done:
			panic("code error input listen already done name=" + l.name)
		case <-existing.done:
			self.drop(existing)
		default:
			panic("code error input duplicate listener name=" + l.name)
		}
	}
	self.listeners[l.name] = l
}

func (self *Dispatch) pump(source Source) {
	tag := source.String()
	for {
		event, err := source.Read()
		if err != nil {
			// touch panel unplugged, booth keeps working from front end
			self.Log.Error(errors.Annotatef(err, "input source=%s", tag))
			return
		}
		if event.IsZero() {
			continue
		}
		self.Emit(event)
	}
}
