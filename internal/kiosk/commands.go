package kiosk

import (
	"context"
	"encoding/json"
	"time"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/internal/types"
	tele_api "github.com/nbkstem/booth/tele"
)

const commandTimeout = 5 * time.Second

// CommandLoop serves remote commands until g.Alive stops.
func (self *Kiosk) CommandLoop(ctx context.Context) {
	if !self.g.Alive.Add(1) {
		return
	}
	defer self.g.Alive.Done()
	cmdch := self.g.Tele.Commands()
	stopch := self.g.Alive.StopChan()
	for {
		select {
		case c := <-cmdch:
			self.handleCommand(ctx, c)
		case <-stopch:
			return
		}
	}
}

func (self *Kiosk) handleCommand(ctx context.Context, c *tele_api.Command) {
	self.g.Log.Infof("kiosk command id=%d kind=%s", c.Id, c.Kind.String())
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	var err error
	switch c.Kind {
	case tele_api.Command_Reset:
		_, err = self.Do(ctx, types.Event{Kind: types.EventReset})
	case tele_api.Command_Wake:
		_, err = self.Do(ctx, types.Event{Kind: types.EventWake})
	case tele_api.Command_Report:
	default:
		err = errors.NotSupportedf("command kind=%s", c.Kind.String())
	}

	data := ""
	if err == nil {
		s := self.Snapshot()
		self.g.Tele.Snapshot(s.Telemetry(self.SinceActivity()))
		var b []byte
		b, err = json.Marshal(s)
		data = string(b)
	}
	if err != nil {
		self.g.Log.Errorf("kiosk command id=%d err=%v", c.Id, err)
	}
	self.g.Tele.CommandReply(c, data, err)
}
