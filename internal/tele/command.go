package tele

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"
	tele_api "github.com/nbkstem/booth/tele"
)

var (
	errDeadline = fmt.Errorf("deadline")
	errBusy     = fmt.Errorf("busy, too many pending commands")
	errKind     = fmt.Errorf("unknown command kind")
)

// onCommandMessage validates command and hands it to Commands() consumer.
// Execution result is reported by consumer via CommandReply.
func (self *tele) onCommandMessage(ctx context.Context, payload []byte) bool {
	cmd := new(tele_api.Command)
	err := proto.Unmarshal(payload, cmd)
	if err != nil {
		self.log.Errorf("tele command parse raw=%x err=%v", payload, err)
		return true
	}
	self.log.Debugf("tele command raw=%x task=%s", payload, cmd.String())

	now := time.Now().UnixNano()
	switch {
	case cmd.Deadline != 0 && now > cmd.Deadline:
		self.CommandReply(cmd, "", errDeadline)
	case cmd.Kind == tele_api.Command_Invalid:
		self.CommandReply(cmd, "", errKind)
	default:
		select {
		case self.cmdCh <- cmd:
		case <-self.stopCh:
		default:
			self.CommandReply(cmd, "", errBusy)
		}
	}
	return true
}
