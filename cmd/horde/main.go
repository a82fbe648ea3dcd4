// Command horde runs the arena in a terminal, or headless with a summary
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/audio"
	"github.com/lixenwraith/horde/config"
	"github.com/lixenwraith/horde/core"
	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/network"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/service"
	"github.com/lixenwraith/horde/status"
)

var (
	configFlag   = flag.String("config", "", "Config file (default ./horde.toml, then embedded defaults)")
	seedFlag     = flag.Uint64("seed", 0, "Run seed; 0 uses the config seed, then the clock")
	headlessFlag = flag.Bool("headless", false, "Run without a terminal and print a summary")
	ticksFlag    = flag.Int("ticks", 120*parameter.TickRate, "Tick limit for headless runs")
	autoFlag     = flag.Bool("auto", true, "Headless autopilot fires at the nearest enemy")
	spectateFlag = flag.String("spectate", "", "Spectator listen address, overrides [spectator] addr")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/horde.log")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "horde: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		return err
	}

	opts := cfg.GameOptions()
	opts.Seed = resolveSeed(*seedFlag, cfg.Run.Seed)

	reg := status.NewRegistry()
	g := game.New(opts, reg)

	if *headlessFlag {
		s := runHeadless(g, *ticksFlag, *autoFlag, nil)
		s.print(os.Stdout)
		return nil
	}
	return play(cfg, g, reg)
}

// resolveSeed picks the first non-zero of flag and config, else the clock
func resolveSeed(flagSeed, configSeed uint64) uint64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case configSeed != 0:
		return configSeed
	}
	return clockSeed()
}

func clockSeed() uint64 {
	if s := uint64(time.Now().UnixNano()); s != 0 {
		return s
	}
	return 1
}

// spectatorConfig maps [spectator] and the -spectate override onto the server config
func spectatorConfig(cfg config.Config, addr string) *network.Config {
	nc := network.DefaultConfig()
	nc.Addr = cfg.Spectator.Addr
	if addr != "" {
		nc.Addr = addr
	}
	nc.BroadcastEvery = cfg.Spectator.BroadcastEvery
	return nc
}

func play(cfg config.Config, g *game.Game, reg *status.Registry) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.SetCrashCleanup(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	cues := audio.NewCues(cfg.Audio.Enabled && !*muteFlag, cfg.Audio.Volume)
	services := service.NewGroup(cues)

	var server *network.Server
	if nc := spectatorConfig(cfg, *spectateFlag); nc.Enabled() {
		server = network.NewServer(nc, g, reg)
		if err := services.Add(server); err != nil {
			return err
		}
	}

	if err := services.Start(); err != nil {
		return err
	}
	defer services.Stop()

	s := newSession(g, reg, screen, cues, server, cfg.Audio.Volume, clockSeed)
	s.run(screen)
	return nil
}
