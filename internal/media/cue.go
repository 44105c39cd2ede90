package media

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/log2"
)

const (
	CueAudio   = "audio"
	CueSpeech  = "speech"
	CueSilence = "silence"

	DefaultCueTimeout = 15 * time.Second
	argPlaceholder    = "{}"
)

// Runner executes external command, blocking until it exits.
type Runner func(ctx context.Context, argv []string) error

func ExecRunner(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errors.NotValidf("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Annotatef(err, "%s output=%s", argv[0], strings.TrimSpace(string(out)))
	}
	return nil
}

type CueConfig struct {
	Audio         string // asset name
	Text          string
	AudioPlayer   []string
	SpeechCommand []string
	Timeout       time.Duration
}

// Cue plays welcome greeting: audio file, fallback speech synthesis, fallback silence.
type Cue struct {
	config CueConfig
	assets *Assets
	run    Runner
	log    *log2.Log
}

func NewCue(config CueConfig, assets *Assets, run Runner, log *log2.Log) *Cue {
	if config.Timeout <= 0 {
		config.Timeout = DefaultCueTimeout
	}
	if run == nil {
		run = ExecRunner
	}
	return &Cue{config: config, assets: assets, run: run, log: log}
}

// Play never fails, returns which kind of cue was played.
func (self *Cue) Play(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, self.config.Timeout)
	defer cancel()

	if len(self.config.AudioPlayer) != 0 && self.config.Audio != "" {
		if self.assets == nil || !self.assets.Available(self.config.Audio) {
			self.log.Infof("cue audio=%s not available", self.config.Audio)
		} else {
			path := self.assets.Path(self.config.Audio)
			err := self.run(ctx, expandArgs(self.config.AudioPlayer, path))
			if err == nil {
				return CueAudio
			}
			self.log.Error(errors.Annotate(err, "cue audio"))
		}
	}

	if len(self.config.SpeechCommand) != 0 && self.config.Text != "" {
		err := self.run(ctx, expandArgs(self.config.SpeechCommand, self.config.Text))
		if err == nil {
			return CueSpeech
		}
		self.log.Error(errors.Annotate(err, "cue speech"))
	}
	return CueSilence
}

// expandArgs replaces {} with value, or appends value when template has no placeholder.
func expandArgs(template []string, value string) []string {
	argv := make([]string, 0, len(template)+1)
	found := false
	for _, a := range template {
		if strings.Contains(a, argPlaceholder) {
			a = strings.Replace(a, argPlaceholder, value, -1)
			found = true
		}
		argv = append(argv, a)
	}
	if !found {
		argv = append(argv, value)
	}
	return argv
}
