// Drive kiosk controller from terminal, without browser.
package console

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/juju/errors"
	"github.com/nbkstem/booth/cmd/booth/subcmd"
	"github.com/nbkstem/booth/helpers/cli"
	"github.com/nbkstem/booth/internal/kiosk"
	"github.com/nbkstem/booth/internal/state"
	"github.com/nbkstem/booth/internal/types"
)

const modName = "console"

const usage = `commands:
- tap                    visitor touch
- move                   non waking input
- view NAME              home gallery schedule ai_guide about
- open NAME | close NAME overlay keyboard guestbook wheel frame video project
- kb RAW                 keyboard buffer, Telex
- key NAME               enter backspace
- report SUBJECT [ERR]   audio fullscreen video
- reset | wake           remote commands
- state                  print snapshot
`

var Mod = subcmd.Mod{Name: modName, Usage: "drive kiosk from terminal", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	g := state.GetGlobal(ctx)
	g.MustInit(ctx, config)

	k := &kiosk.Kiosk{}
	if err := k.Init(ctx); err != nil {
		return errors.Annotate(err, "kiosk init")
	}
	go k.Loop(ctx)
	k.Subscribe(modName, func(s kiosk.Snapshot) {
		g.Log.Infof("state=%s view=%s overlays=%s lines=%q", s.State.String(), s.View.String(), s.Overlays.String(), s.Lines)
	})

	g.Log.Infof(usage)
	cli.MainLoop(modName, newExecutor(ctx, k), newCompleter())
	g.StopWait(5 * time.Second)
	return nil
}

func newCompleter() func(d prompt.Document) []prompt.Suggest {
	words := []string{"tap", "move", "view", "open", "close", "kb", "key", "report", "reset", "wake", "state", "help"}
	suggests := make([]prompt.Suggest, 0, len(words))
	for _, w := range words {
		suggests = append(suggests, prompt.Suggest{Text: w})
	}
	return func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggests, d.GetWordBeforeCursor(), true)
	}
}

func newExecutor(ctx context.Context, k *kiosk.Kiosk) func(string) {
	g := state.GetGlobal(ctx)
	return func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		if line == "help" {
			g.Log.Infof(usage)
			return
		}
		if line == "state" {
			b, _ := json.MarshalIndent(k.Snapshot(), "", "  ")
			g.Log.Info(string(b))
			return
		}
		e, err := ParseLine(line)
		if err != nil {
			g.Log.Errorf("%v", err)
			return
		}
		dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if _, err := k.Do(dctx, e); err != nil {
			g.Log.Errorf(errors.ErrorStack(err))
		}
	}
}

// ParseLine converts console command into kiosk event.
func ParseLine(line string) (types.Event, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return types.Event{}, errors.NotValidf("empty line")
	}
	arg := ""
	if len(words) > 1 {
		arg = strings.Join(words[1:], " ")
	}
	switch words[0] {
	case "tap":
		return types.Event{Kind: types.EventInput, Input: types.InputEvent{Source: modName, Kind: types.InputTouch}}, nil
	case "move":
		return types.Event{Kind: types.EventInput, Input: types.InputEvent{Source: modName, Kind: types.InputPointerMove}}, nil
	case "view":
		v, err := types.ParseView(arg)
		return types.Event{Kind: types.EventView, View: v}, err
	case "open", "close":
		o, err := types.ParseOverlay(arg)
		return types.Event{Kind: types.EventOverlay, Overlay: o, Open: words[0] == "open"}, err
	case "kb":
		// keep raw spacing after command word
		raw := strings.TrimPrefix(strings.TrimLeft(line, " "), "kb")
		raw = strings.TrimPrefix(raw, " ")
		return types.Event{Kind: types.EventKeyboard, KeyOp: types.KeyboardBuffer, Text: raw}, nil
	case "key":
		return types.Event{Kind: types.EventKeyboard, KeyOp: types.KeyboardKey, Text: arg}, nil
	case "report":
		if len(words) < 2 {
			return types.Event{}, errors.NotValidf("report without subject")
		}
		msg := "unspecified"
		if len(words) > 2 {
			msg = strings.Join(words[2:], " ")
		}
		return types.Event{Kind: types.EventReport, Text: words[1], Err: errors.New(msg)}, nil
	case "reset":
		return types.Event{Kind: types.EventReset}, nil
	case "wake":
		return types.Event{Kind: types.EventWake}, nil
	}
	return types.Event{}, errors.NotValidf("command=%s", words[0])
}
