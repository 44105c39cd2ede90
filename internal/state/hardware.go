package state

import (
	"context"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/hardware/input"
	"github.com/nbkstem/booth/hardware/text_display"
	"github.com/nbkstem/booth/helpers"
	"github.com/nbkstem/booth/internal/chat"
	"github.com/nbkstem/booth/internal/media"
	"github.com/nbkstem/booth/internal/store"
	"github.com/nbkstem/booth/log2"
)

type hardware struct {
	// HTTP is used by chat and store clients, nil means default client.
	HTTP  *http.Client
	Input *input.Dispatch
	// CueRunner replaces media.ExecRunner, nil means default.
	CueRunner media.Runner

	Marquee struct {
		once
		Display *text_display.TextDisplay
	}
	chat struct {
		once
		client *chat.Client
	}
	store struct {
		once
		s *store.Store
	}
	assets struct {
		once
		a *media.Assets
	}
	cue struct {
		once
		c *media.Cue
	}
}

// logDevice shows marquee frames in log when no front end is attached.
type logDevice struct{ log *log2.Log }

func (self logDevice) Show(line1, line2 string) {
	self.log.Debugf("marquee [%s] [%s]", strings.TrimSpace(line1), strings.TrimSpace(line2))
}

func (g *Global) MustTextDisplay() *text_display.TextDisplay {
	d, err := g.TextDisplay()
	if err != nil {
		g.Log.Fatal(err)
	}
	if d == nil {
		g.Log.Fatal("text display is not available")
	}
	return d
}

func (g *Global) TextDisplay() (*text_display.TextDisplay, error) {
	x := &g.Hardware.Marquee
	_ = x.do(func() error {
		if x.Display != nil { // state-new testing mode
			return nil
		}

		devConfig := &g.Config.Hardware.Marquee
		width := devConfig.Width
		if width == 0 {
			width = DefaultMarqueeWidth
		}
		displayConfig := &text_display.TextDisplayConfig{
			Width: uint32(width),
		}
		if devConfig.Enable {
			displayConfig.ScrollDelay = time.Duration(devConfig.ScrollDelayMs) * time.Millisecond
		}
		disp, err := text_display.NewTextDisplay(displayConfig)
		if err != nil {
			return errors.Annotatef(err, "NewTextDisplay config=%#v", displayConfig)
		}
		disp.SetDevice(logDevice{g.Log})
		x.Display = disp
		go func() {
			x.Display.Run()
		}()
		go func() {
			<-g.Alive.StopChan()
			x.Display.Stop()
		}()
		return nil
	})
	return x.Display, x.err
}

func (g *Global) Chat() *chat.Client {
	x := &g.Hardware.chat
	_ = x.do(func() error {
		cfg := &g.Config.Chat
		preface := cfg.Preface
		if cfg.PrefaceFile != "" {
			b, err := ioutil.ReadFile(cfg.PrefaceFile)
			if err != nil {
				// chat still works without booth context
				g.Error(errors.Annotatef(err, "config: chat.preface_file=%s", cfg.PrefaceFile))
			} else {
				preface = strings.TrimSpace(string(b))
			}
		}
		x.client = chat.New(chat.Config{
			Endpoint:   cfg.Endpoint,
			Timeout:    g.Config.ChatTimeout(),
			Preface:    preface,
			MsgStatus:  cfg.MsgStatus,
			MsgError:   cfg.MsgError,
			MsgEmpty:   cfg.MsgEmpty,
			MsgNetwork: cfg.MsgNetwork,
		}, g.Hardware.HTTP, g.Log)
		return nil
	})
	return x.client
}

func (g *Global) Store() (*store.Store, error) {
	x := &g.Hardware.store
	_ = x.do(func() error {
		cfg := &g.Config.Storage
		x.s = store.New(store.Config{
			PersistRoot:   g.Config.Persist.Root,
			Persist:       cfg.Persist,
			ScriptURL:     cfg.ScriptURL,
			Timeout:       helpers.IntSecondDefault(cfg.TimeoutSec, store.DefaultTimeout),
			AttachmentMax: cfg.AttachmentMaxKB * 1024,
			RetryMin:      helpers.IntSecondDefault(cfg.RetryMinSec, time.Second),
			RetryMax:      helpers.IntSecondDefault(cfg.RetryMaxSec, 5*time.Minute),
		}, g.Hardware.HTTP, g.Log)
		x.err = x.s.Init()
		return x.err
	})
	return x.s, x.err
}

func (g *Global) Assets() *media.Assets {
	x := &g.Hardware.assets
	_ = x.do(func() error {
		cfg := &g.Config.Media
		x.a = media.NewAssets(cfg.Root, []string{cfg.IntroVideo, cfg.WelcomeAudio}, g.Log)
		return nil
	})
	return x.a
}

func (g *Global) Cue() *media.Cue {
	x := &g.Hardware.cue
	_ = x.do(func() error {
		cfg := &g.Config.Media
		x.c = media.NewCue(media.CueConfig{
			Audio:         cfg.WelcomeAudio,
			Text:          g.Config.UI.MsgWelcome,
			AudioPlayer:   cfg.AudioPlayer,
			SpeechCommand: cfg.SpeechCommand,
			Timeout:       helpers.IntSecondDefault(cfg.CueTimeoutSec, media.DefaultCueTimeout),
		}, g.Assets(), g.Hardware.CueRunner, g.Log)
		return nil
	})
	return x.c
}

func (g *Global) initDisplay() error {
	d, err := g.TextDisplay()
	if d != nil {
		d.Clear()
	}
	return err
}

func (g *Global) initStore(ctx context.Context) error {
	s, err := g.Store()
	if err != nil {
		return errors.Annotate(err, "initStore")
	}
	if s.Remote() {
		if !g.Alive.Add(1) {
			return nil
		}
		go func() {
			defer g.Alive.Done()
			s.Run(ctx, g.Alive.StopChan())
		}()
	}
	return nil
}

func (g *Global) initAssets() error {
	a := g.Assets()
	if !g.Config.Media.Watch {
		return nil
	}
	if err := a.Watch(g.Alive.StopChan()); err != nil {
		// static availability from initial scan still works
		g.Error(errors.Annotatef(err, "media watch root=%s", a.Root()))
	}
	return nil
}

func (g *Global) initInput() error {
	g.Hardware.Input = input.NewDispatch(g.Log, g.Alive.StopChan())

	// support more input sources here
	sources := make([]input.Source, 0, 4)

	devConfig := &g.Config.Hardware.Input.DevInputEvent
	if !devConfig.Enable {
		g.Log.Infof("input=%s disabled", input.DevInputEventTag)
	} else {
		src, err := input.NewDevInputEventSource(devConfig.Device, devConfig.Grab)
		err = errors.Annotatef(err, "input=%s", input.DevInputEventTag)
		if err != nil {
			return err
		} else if src != nil {
			sources = append(sources, src)
		}
	}

	go g.Hardware.Input.Run(sources)
	return nil
}

type once struct {
	sync.Mutex
	called uint32 // atomic bool
	err    error
}

func (o *once) done() bool {
	return atomic.LoadUint32(&o.called) == 1
}

func (o *once) do(f func() error) error {
	if o.done() { // fast path
		return o.err
	}
	o.Lock()
	defer o.Unlock()
	if o.done() {
		return o.err
	}
	o.err = f()
	atomic.StoreUint32(&o.called, 1)
	return o.err
}
