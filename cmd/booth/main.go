package main

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/nbkstem/booth/cmd/booth/console"
	"github.com/nbkstem/booth/cmd/booth/kiosk"
	"github.com/nbkstem/booth/cmd/booth/subcmd"
	"github.com/nbkstem/booth/cmd/booth/telex"
	"github.com/nbkstem/booth/internal/state"
	state_new "github.com/nbkstem/booth/internal/state/new"
	"github.com/nbkstem/booth/internal/tele"
	"github.com/nbkstem/booth/log2"
	"github.com/spf13/pflag"
)

var log = log2.NewStderr(log2.LDebug)

var modules = []subcmd.Mod{
	kiosk.Mod,
	console.Mod,
	telex.Mod,
}

// set by script/build with -ldflags "-X main.BuildVersion=..."
var BuildVersion string = "unknown"

func main() {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flagConfig := flags.StringP("config", "c", "booth.hcl", "config file, may include others")
	flagVersion := flags.BoolP("version", "v", false, "print build version and exit")
	flagDebug := flags.Bool("debug", false, "debug log level")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [options] [command]\n\ncommands (default kiosk):\n%s\noptions:\n%s",
			os.Args[0], subcmd.Usage(modules), flags.FlagUsages())
	}
	_ = flags.Parse(os.Args[1:])

	if *flagVersion {
		fmt.Printf("booth %s\n", BuildVersion)
		return
	}

	command := flags.Arg(0)
	if command == "" {
		command = kiosk.Mod.Name
	}
	mod, err := subcmd.Parse(command, modules)
	if err != nil {
		flags.Usage()
		log.Fatal(err)
	}

	if subcmd.SdNotify("start") {
		// under systemd assume systemd journal logging, no timestamp
		log.SetFlags(log2.LServiceFlags)
	} else {
		log.SetFlags(log2.LInteractiveFlags)
	}
	if !*flagDebug {
		log.SetLevel(log2.LInfo)
	}

	config := state.MustReadConfig(log, state.NewOsFullReader(), *flagConfig)
	ctx, g := state_new.NewContext(log, tele.New())
	g.BuildVersion = BuildVersion

	if err := mod.Main(ctx, config); err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
}
