/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/spaghettifunk/evil/engine"
	"github.com/spaghettifunk/evil/engine/config"
	"github.com/spaghettifunk/evil/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file, defaults are used when empty")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal("failed to load config", "err", err)
		}
	}

	tb := testbed.NewTestGame()

	e, err := engine.New(tb.Game, cfg)
	if err != nil {
		log.Fatal("failed to create engine", "err", err)
	}

	if err := e.Initialize(); err != nil {
		log.Fatal("failed to initialize engine", "err", err)
	}

	// cancel the run on sigterm and other system calls
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if *watch && *configPath != "" {
		go func() {
			err := config.Watch(ctx, *configPath, e.Reload, func(err error) {
				e.Context().Log.Warn("config reload rejected", "err", err)
			})
			if err != nil {
				e.Context().Log.Error("config watcher stopped", "err", err)
			}
		}()
	}

	// run engine
	runErr := e.Run(ctx)
	if err := e.Shutdown(); err != nil {
		runErr = errors.Join(runErr, err)
	}
	if runErr != nil {
		log.Error("engine stopped with errors", "err", runErr)
		os.Exit(1)
	}
}
