package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Zay931/waybar-tailscale-module/internal/config"
	"github.com/Zay931/waybar-tailscale-module/internal/pausestore"
	"github.com/Zay931/waybar-tailscale-module/internal/session"
	"github.com/Zay931/waybar-tailscale-module/internal/tailscale"
	"github.com/Zay931/waybar-tailscale-module/internal/ui"
	"github.com/Zay931/waybar-tailscale-module/internal/waybar"
)

// version is set at build time via -ldflags.
var version = "dev"

// CLI is the flags-only surface waybar invokes: one mode flag per
// interaction kind, no subcommands.
type CLI struct {
	Status  bool             `help:"Print the current waybar payload (default)."`
	Click   string           `help:"Handle a click and print the refreshed payload." placeholder:"left|right|middle"`
	Scroll  string           `help:"Handle a scroll event and print the payload." placeholder:"up|down"`
	Watch   bool             `help:"Run a live terminal dashboard."`
	Init    bool             `help:"Write a config scaffold and exit."`
	Config  string           `short:"c" help:"Config file path." type:"path"`
	Verbose bool             `short:"v" help:"Log absorbed errors to stderr."`
	Version kong.VersionFlag `help:"Print version."`
}

func main() {
	var cli CLI
	k, err := kong.New(&cli,
		kong.Name("waybar-tailscale"),
		kong.Description("Tailscale status and click handler for waybar"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	if err != nil {
		panic(err)
	}
	_, err = k.Parse(os.Args[1:])
	k.FatalIfErrorf(err)

	// stdout belongs to waybar; everything else goes to stderr, and
	// only when asked for.
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
	if !cli.Verbose {
		log.SetOutput(io.Discard)
	}

	if cli.Init {
		path, err := config.WriteScaffold(cli.Config)
		k.FatalIfErrorf(err)
		fmt.Println(ui.StepOK("Wrote " + path))
		return
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		log.Printf("config: %v", err)
	}
	machine := session.New(tailscale.ExecRunner{}, pausestore.New(cfg.StateFile), cfg.Session())

	if cli.Watch {
		k.FatalIfErrorf(runWatch(machine, cfg))
		return
	}

	// The status path always exits 0 and always emits a complete
	// payload — a crash here breaks the bar's display.
	ctx := context.Background()
	var st session.Status
	switch {
	case cli.Click != "":
		if in, ok := session.ParseClick(cli.Click); ok {
			st = machine.Handle(ctx, in)
		} else {
			st = machine.Read(ctx)
		}
	case cli.Scroll != "":
		if in, ok := session.ParseScroll(cli.Scroll); ok {
			st = machine.Handle(ctx, in)
		} else {
			st = machine.Read(ctx)
		}
	default:
		st = machine.Read(ctx)
	}

	if err := waybar.Render(st, cfg.Style()).Emit(os.Stdout); err != nil {
		log.Printf("emit: %v", err)
	}
}
