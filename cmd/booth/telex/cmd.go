// Interactive Telex playground, also works as stdin filter.
package telex

import (
	"context"
	"fmt"

	"github.com/c-bata/go-prompt"
	"github.com/nbkstem/booth/cmd/booth/subcmd"
	"github.com/nbkstem/booth/helpers/cli"
	"github.com/nbkstem/booth/internal/state"
	"github.com/nbkstem/booth/internal/telex"
)

const modName = "telex"

var Mod = subcmd.Mod{Name: modName, Usage: "transliterate Telex input lines", Main: Main}

func Main(ctx context.Context, config *state.Config) error {
	cli.MainLoop(modName, func(line string) {
		if line != "" {
			fmt.Println(telex.Transliterate(line))
		}
	}, newCompleter())
	return nil
}

func newCompleter() func(d prompt.Document) []prompt.Suggest {
	suggests := []prompt.Suggest{
		{Text: "aa", Description: "â"}, {Text: "aw", Description: "ă"},
		{Text: "ee", Description: "ê"}, {Text: "oo", Description: "ô"},
		{Text: "ow", Description: "ơ"}, {Text: "uw", Description: "ư"},
		{Text: "dd", Description: "đ"},
		{Text: "s", Description: "sắc"}, {Text: "f", Description: "huyền"},
		{Text: "r", Description: "hỏi"}, {Text: "x", Description: "ngã"},
		{Text: "j", Description: "nặng"},
	}
	return func(d prompt.Document) []prompt.Suggest {
		if d.GetWordBeforeCursor() != "?" {
			return nil
		}
		return suggests
	}
}
