package tele

import (
	"context"

	"github.com/nbkstem/booth/log2"
	tele_config "github.com/nbkstem/booth/tele/config"
)

// Noop replaces real client after failed Init.
type Noop struct{}

var _ Teler = Noop{} // compile-time interface test

func (Noop) Init(context.Context, *log2.Log, tele_config.Config) error { return nil }

func (Noop) Close() {}

func (Noop) Error(error) {}

func (Noop) State(State) {}

func (Noop) Session(*Telemetry_Session) {}

func (Noop) Snapshot(*Telemetry_Snapshot) {}

func (Noop) Commands() <-chan *Command { return nil }

func (Noop) CommandReply(*Command, string, error) {}
