package tele

import (
	"context"
	"fmt"

	"github.com/nbkstem/booth/log2"
	tele_config "github.com/nbkstem/booth/tele/config"
)

// Tele transport contract:
// - Init fails only with invalid config, ignores network errors
// - Send* deliver (with retries) within timeout or fail; success includes ack from receiver
// - hide "connection" concept from upstream API or errors; transport delivers messages at least once
// - application may start without network available
type Transporter interface {
	Init(ctx context.Context, log *log2.Log, teleConfig tele_config.Config, onCommand CommandCallback, willPayload []byte) error
	Close()
	SendState(payload []byte) bool
	SendTelemetry(payload []byte) bool
	SendCommandResponse(topicSuffix string, payload []byte) bool
}

type CommandCallback func(context.Context, []byte) bool

const defaultResponseSuffix = "cr"

func TopicPrefix(boothId int32) string                  { return fmt.Sprintf("booth%d", boothId) }
func TopicConnect(boothId int32) string                 { return TopicPrefix(boothId) + "/c" }
func TopicCommand(boothId int32) string                 { return TopicPrefix(boothId) + "/r/c" }
func TopicResponse(boothId int32, suffix string) string { return TopicPrefix(boothId) + "/" + suffix }
func TopicState(boothId int32) string                   { return TopicPrefix(boothId) + "/w/1s" }
func TopicTelemetry(boothId int32) string               { return TopicPrefix(boothId) + "/w/1t" }
