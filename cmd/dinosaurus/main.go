package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/Tokenzrey/dinosaurus/config"
	"github.com/Tokenzrey/dinosaurus/logging"
)

var (
	muteFlag      = flag.Bool("mute", false, "disable audio output")
	characterFlag = flag.String("character", "", "starting character id")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dinosaurus: %v\n", err)
		return 1
	}
	if *muteFlag {
		cfg.Mute = true
	}
	if *characterFlag != "" {
		cfg.Character = *characterFlag
	}

	log := logging.New(cfg.LogPath, cfg.Debug)
	defer log.Sync()

	a, err := newApp(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dinosaurus: %v\n", err)
		return 1
	}
	defer a.Close()

	// Restore the terminal before the stack trace, or it prints into
	// the alternate screen and vanishes
	defer func() {
		if r := recover(); r != nil {
			a.Close()
			fmt.Fprintf(os.Stderr, "dinosaurus crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	a.Run()
	return 0
}
