package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/ui"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}
	defer glog.Flush()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))
	glog.Infof("Starting: %dx%d obstacles=%d boost=%t on-death=%s seed=%d",
		cfg.Width, cfg.Height, cfg.Obstacles, cfg.SpeedBoost, cfg.OnDeath, seed)

	renderer := ui.NewRenderer(cfg.Width, cfg.Height, cfg.Title, cfg.FPS)
	defer renderer.Close()

	stateMgr := manager.NewStateManager(cfg.StatsFile)
	g := game.NewGame(cfg.GameOptions(), renderer, ui.NewKeyboard(), rng, stateMgr)
	g.Run()
}
