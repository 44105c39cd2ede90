// Package tele delivers booth telemetry over MQTT through persistent
// queue and receives remote commands.
package tele

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/juju/errors"
	"github.com/nbkstem/booth/helpers"
	"github.com/nbkstem/booth/log2"
	tele_api "github.com/nbkstem/booth/tele"
	tele_config "github.com/nbkstem/booth/tele/config"
	"github.com/temoto/spq"
)

const (
	defaultStateInterval  = 5 * time.Minute
	DefaultNetworkTimeout = 30 * time.Second
	commandBuffer         = 8
)

// Tele contract:
// - Init() fails only with invalid config, network issues ignored
// - Error/Session/Snapshot public API calls block at most for disk write
//   network may be slow or absent, messages will be delivered in background
// - Telemetry/Response messages delivered at least once
// - State messages may be lost
type tele struct { //nolint:maligned
	config    tele_config.Config
	log       *log2.Log
	transport Transporter
	q         *spq.Queue
	stopCh    chan struct{}
	cmdCh     chan *tele_api.Command
	closeOnce sync.Once
	boothId   int32
	errCount  uint32

	stateMu      sync.Mutex
	currentState tele_api.State
}

func New() tele_api.Teler {
	return &tele{}
}
func NewWithTransporter(trans Transporter) tele_api.Teler {
	return &tele{transport: trans}
}

func (self *tele) Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config) error {
	self.config = teleConfig
	self.log = log
	if self.config.LogDebug {
		self.log.SetLevel(log2.LDebug)
	}
	self.stopCh = make(chan struct{})
	self.cmdCh = make(chan *tele_api.Command, commandBuffer)
	if !self.config.Enabled {
		return nil
	}
	self.boothId = int32(self.config.BoothId)

	if self.config.PersistPath == "" {
		panic("code error must set self.config.PersistPath")
	}
	var err error
	self.q, err = spq.Open(self.config.PersistPath)
	if err != nil {
		return errors.Annotate(err, "tele queue")
	}

	// test code sets .transport
	if self.transport == nil { // production path
		self.transport = &transportMqtt{}
	}
	willPayload := []byte{byte(tele_api.State_Disconnected)}
	if err := self.transport.Init(ctx, log, teleConfig, self.onCommandMessage, willPayload); err != nil {
		self.q.Close()
		return errors.Annotate(err, "tele transport")
	}

	go self.qworker()
	go self.stateWorker(helpers.IntSecondDefault(self.config.StateIntervalSec, defaultStateInterval))
	self.State(tele_api.State_Boot)
	return nil
}

func (self *tele) Close() {
	self.closeOnce.Do(func() {
		close(self.stopCh)
		if self.q != nil {
			self.q.Close()
		}
		if self.transport != nil && self.config.Enabled {
			self.transport.Close()
		}
	})
}

// denote value type in persistent queue bytes form
const (
	qCommandResponse byte = 1
	qTelemetry       byte = 2
)

func (self *tele) qworker() {
	for {
		box, err := self.q.Peek()
		switch err {
		case nil:
			b := box.Bytes()
			var del bool
			del, err = self.qhandle(b)
			if err != nil {
				self.log.Errorf("tele qhandle b=%x err=%v", b, err)
			}
			if del {
				if err = self.q.Delete(box); err != nil {
					self.log.Errorf("tele qhandle Delete b=%x err=%v", b, err)
				}
			} else {
				if err = self.q.DeletePush(box); err != nil {
					self.log.Errorf("tele qhandle DeletePush b=%x err=%v", b, err)
				}
				self.sleep(time.Second)
			}

		case spq.ErrClosed:
			select {
			case <-self.stopCh: // success path
			default:
				self.log.Errorf("CRITICAL tele spq closed unexpectedly")
			}
			return

		default:
			self.log.Errorf("CRITICAL tele spq err=%v", err)
			self.sleep(time.Second)
		}
	}
}

func (self *tele) stateWorker(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			self.stateMu.Lock()
			s := self.currentState
			self.stateMu.Unlock()
			self.transport.SendState([]byte{byte(s)})
		case <-self.stopCh:
			return
		}
	}
}

func (self *tele) sleep(d time.Duration) {
	select {
	case <-time.After(d):
	case <-self.stopCh:
	}
}

func (self *tele) qhandle(b []byte) (bool, error) {
	if len(b) == 0 {
		self.log.Errorf("tele spq peek=empty")
		return true, nil
	}

	switch b[0] {
	case qCommandResponse:
		var r tele_api.Response
		if err := proto.Unmarshal(b[1:], &r); err != nil {
			return true, err
		}
		return self.qsendResponse(&r), nil

	case qTelemetry:
		var tm tele_api.Telemetry
		if err := proto.Unmarshal(b[1:], &tm); err != nil {
			return true, err
		}
		return self.qsendTelemetry(&tm), nil

	default:
		err := errors.Errorf("unknown kind=%d", b[0])
		return true, err
	}
}

func (self *tele) qpushCommandResponse(c *tele_api.Command, r *tele_api.Response) error {
	r.INTERNALTopic = c.ReplyTopic
	if r.INTERNALTopic == "" {
		r.INTERNALTopic = defaultResponseSuffix
	}
	return self.qpushTagProto(qCommandResponse, r)
}

func (self *tele) qpushTelemetry(tm *tele_api.Telemetry) error {
	if tm.BoothId == 0 {
		tm.BoothId = self.boothId
	}
	if tm.Time == 0 {
		tm.Time = time.Now().UnixNano()
	}
	if tm.BuildVersion == "" {
		tm.BuildVersion = self.config.BuildVersion
	}
	return self.qpushTagProto(qTelemetry, tm)
}

func (self *tele) qpushTagProto(tag byte, pb proto.Message) error {
	buf := proto.NewBuffer(make([]byte, 0, 1024))
	if err := buf.EncodeVarint(uint64(tag)); err != nil {
		return err
	}
	if err := buf.Marshal(pb); err != nil {
		return err
	}
	return self.q.Push(buf.Bytes())
}

func (self *tele) qsendResponse(r *tele_api.Response) bool {
	// do not serialize INTERNAL_topic field
	wireResponse := *r
	wireResponse.INTERNALTopic = ""
	payload, err := proto.Marshal(&wireResponse)
	if err != nil {
		self.log.Errorf("CRITICAL response Marshal r=%#v err=%v", r, err)
		return true // retry will not help
	}
	return self.transport.SendCommandResponse(r.INTERNALTopic, payload)
}

func (self *tele) qsendTelemetry(tm *tele_api.Telemetry) bool {
	payload, err := proto.Marshal(tm)
	if err != nil {
		self.log.Errorf("CRITICAL telemetry Marshal tm=%#v err=%v", tm, err)
		return true // retry will not help
	}
	return self.transport.SendTelemetry(payload)
}

func (self *tele) nextErrorCount() uint32 { return atomic.AddUint32(&self.errCount, 1) }
