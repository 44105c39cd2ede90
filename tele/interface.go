package tele

import (
	"context"

	"github.com/nbkstem/booth/log2"
	tele_config "github.com/nbkstem/booth/tele/config"
)

//go:generate protoc --go_out=paths=source_relative:./ tele.proto

// Teler interface Telemetry client, booth side.
// Not for external public usage.
type Teler interface {
	Init(context.Context, *log2.Log, tele_config.Config) error
	Close()
	State(State)
	Error(error)
	Session(*Telemetry_Session)
	Snapshot(*Telemetry_Snapshot)
	// Commands are delivered until Close, channel itself is never closed.
	Commands() <-chan *Command
	CommandReply(c *Command, data string, err error)
}

type stub struct{}

func (stub) Init(context.Context, *log2.Log, tele_config.Config) error { return nil }
func (stub) Close()                                                    {}
func (stub) State(State)                                               {}
func (stub) Error(error)                                               {}
func (stub) Session(*Telemetry_Session)                                {}
func (stub) Snapshot(*Telemetry_Snapshot)                              {}
func (stub) Commands() <-chan *Command                                 { return nil }
func (stub) CommandReply(*Command, string, error)                      {}

func NewStub() Teler { return stub{} }
