// Sorry, workaround to import cycles.
package state_new

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/nbkstem/booth/internal/state"
	"github.com/nbkstem/booth/log2"
	tele_api "github.com/nbkstem/booth/tele"
	"github.com/temoto/alive/v2"
)

func NewContext(log *log2.Log, teler tele_api.Teler) (context.Context, *state.Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}

	g := &state.Global{
		Alive: alive.NewAlive(),
		Log:   log,
		Tele:  teler,
	}
	ctx := context.Background()
	ctx = context.WithValue(ctx, log2.ContextKey, log)
	ctx = context.WithValue(ctx, state.ContextKey, g)

	return ctx, g
}

// NewTestContext inits Global from inline config. Persist root is a per test
// temp dir unless config sets it.
func NewTestContext(t testing.TB, buildVersion string, confString string) (context.Context, *state.Global) {
	fs := state.NewMockFullReader(map[string]string{
		"test-inline": confString,
	})

	var log *log2.Log
	if os.Getenv("booth_test_log_stderr") == "1" {
		log = log2.NewStderr(log2.LDebug) // useful with panics
	} else {
		log = log2.NewTest(t, log2.LDebug)
	}
	log.SetFlags(log2.LTestFlags)
	ctx, g := NewContext(log, tele_api.NewStub())
	g.BuildVersion = buildVersion
	cfg := state.MustReadConfig(log, fs, "test-inline")
	if cfg.Persist.Root == "" {
		dir, err := os.MkdirTemp("", "booth-test-")
		if err != nil {
			t.Fatal(err)
		}
		cfg.Persist.Root = dir
		t.Cleanup(func() { os.RemoveAll(dir) })
	}
	g.MustInit(ctx, cfg)
	t.Cleanup(func() { g.StopWait(5 * time.Second) })

	return ctx, g
}
