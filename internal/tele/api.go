package tele

import (
	"github.com/juju/errors"
	tele_api "github.com/nbkstem/booth/tele"
)

const logMsgDisabled = "tele disabled"

func (self *tele) teleDisabled() bool {
	if !self.config.Enabled {
		self.log.Debugf(logMsgDisabled)
		return true
	}
	return false
}

func (self *tele) CommandReply(c *tele_api.Command, data string, e error) {
	if self.teleDisabled() {
		return
	}
	errText := ""
	if e != nil {
		errText = e.Error()
	}
	r := tele_api.Response{
		CommandId: c.Id,
		Error:     errText,
		Data:      data,
	}
	if err := self.qpushCommandResponse(c, &r); err != nil {
		self.log.Errorf("CRITICAL command=%#v response=%#v err=%v", c, r, err)
	}
}

func (self *tele) Commands() <-chan *tele_api.Command { return self.cmdCh }

func (self *tele) Error(e error) {
	if self.teleDisabled() || e == nil {
		return
	}

	self.log.Debugf("tele.Error: " + errors.ErrorStack(e))
	tm := &tele_api.Telemetry{
		Error: &tele_api.Telemetry_Error{Message: e.Error(), Count: self.nextErrorCount()},
	}
	if err := self.qpushTelemetry(tm); err != nil {
		// not log.Error, that would recurse here through error func
		self.log.Infof("CRITICAL qpushTelemetry telemetry_error=%#v err=%v", tm.Error, err)
	}
}

func (self *tele) Session(s *tele_api.Telemetry_Session) {
	if self.teleDisabled() || s == nil {
		return
	}
	if err := self.qpushTelemetry(&tele_api.Telemetry{Session: s}); err != nil {
		self.log.Infof("CRITICAL session=%s err=%v", s.Id, err)
	}
}

func (self *tele) Snapshot(s *tele_api.Telemetry_Snapshot) {
	if self.teleDisabled() || s == nil {
		return
	}
	if err := self.qpushTelemetry(&tele_api.Telemetry{Snapshot: s}); err != nil {
		self.log.Infof("CRITICAL snapshot err=%v", err)
	}
}

func (self *tele) State(s tele_api.State) {
	if self.teleDisabled() {
		return
	}
	self.stateMu.Lock()
	changed := self.currentState != s
	self.currentState = s
	self.stateMu.Unlock()
	if changed {
		self.transport.SendState([]byte{byte(s)})
	}
}
