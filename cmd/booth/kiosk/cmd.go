// Production booth: kiosk controller, web front end, remote commands.
package kiosk

import (
	"context"
	"time"

	"github.com/coreos/go-systemd/daemon"
	"github.com/juju/errors"
	"github.com/nbkstem/booth/cmd/booth/subcmd"
	"github.com/nbkstem/booth/internal/kiosk"
	"github.com/nbkstem/booth/internal/state"
	"github.com/nbkstem/booth/internal/web"
)

var Mod = subcmd.Mod{Name: "kiosk", Usage: "run booth kiosk with web front end", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)
	g.Log.Debugf("config=%+v", g.Config)

	k := &kiosk.Kiosk{}
	if err := k.Init(ctx); err != nil {
		return errors.Annotate(err, "kiosk init")
	}
	srv, err := web.New(ctx, k)
	if err != nil {
		return errors.Annotate(err, "web init")
	}

	go k.Loop(ctx)
	go k.CommandLoop(ctx)
	srv.Start(ctx)
	g.StopOnSignal()

	subcmd.SdNotify(daemon.SdNotifyReady)
	g.Log.Debugf("booth init complete, running")

	g.Alive.Wait()
	if s, err := g.Store(); err == nil && s.Remote() {
		flushCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if !s.Flush(flushCtx) {
			g.Log.Errorf("store pending=%v not flushed", s.Pending())
		}
	}
	return nil
}
