// Package media tracks screensaver and welcome cue files and plays the cue.
package media

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/juju/errors"
	"github.com/nbkstem/booth/log2"
)

const rescanDelay = 100 * time.Millisecond

// Assets knows which of named files under root exist right now.
type Assets struct {
	root     string
	log      *log2.Log
	mu       sync.RWMutex
	avail    map[string]bool
	onChange func()
}

func NewAssets(root string, names []string, log *log2.Log) *Assets {
	a := &Assets{
		root:  root,
		log:   log,
		avail: make(map[string]bool, len(names)),
	}
	for _, name := range names {
		if name != "" {
			a.avail[name] = false
		}
	}
	a.Scan()
	return a
}

func (self *Assets) Root() string { return self.root }

func (self *Assets) Path(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(self.root, name)
}

func (self *Assets) Available(name string) bool {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.avail[name]
}

func (self *Assets) Names() []string {
	self.mu.RLock()
	names := make([]string, 0, len(self.avail))
	for name := range self.avail {
		names = append(names, name)
	}
	self.mu.RUnlock()
	sort.Strings(names)
	return names
}

// SetOnChange callback runs on watcher goroutine after availability changed.
func (self *Assets) SetOnChange(f func()) {
	self.mu.Lock()
	self.onChange = f
	self.mu.Unlock()
}

// Scan stats every tracked file, returns true if anything changed.
func (self *Assets) Scan() bool {
	self.mu.Lock()
	changed := false
	for name, old := range self.avail {
		fi, err := os.Stat(self.Path(name))
		now := err == nil && fi.Mode().IsRegular() && fi.Size() > 0
		if now != old {
			self.avail[name] = now
			changed = true
			self.log.Debugf("media asset=%s available=%t", name, now)
		}
	}
	f := self.onChange
	self.mu.Unlock()
	if changed && f != nil {
		f()
	}
	return changed
}

// Watch rescans root when files appear or vanish, until stop.
func (self *Assets) Watch(stop <-chan struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Annotate(err, "media watch")
	}
	if err = w.Add(self.root); err != nil {
		w.Close()
		return errors.Annotatef(err, "media watch root=%s", self.root)
	}
	go self.watchLoop(w, stop)
	return nil
}

func (self *Assets) watchLoop(w *fsnotify.Watcher, stop <-chan struct{}) {
	defer w.Close()
	var debounce *time.Timer
	for {
		select {
		case <-stop:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !self.tracked(event.Name) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(rescanDelay, func() { self.Scan() })

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			self.log.Error(errors.Annotate(err, "media watch"))
		}
	}
}

func (self *Assets) tracked(path string) bool {
	self.mu.RLock()
	defer self.mu.RUnlock()
	for name := range self.avail {
		if filepath.Clean(self.Path(name)) == filepath.Clean(path) {
			return true
		}
	}
	return false
}
