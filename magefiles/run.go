//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// config file used by the run targets, override with EVIL_CONFIG
func configPath() string {
	if p := os.Getenv("EVIL_CONFIG"); p != "" {
		return p
	}
	return "evil.toml"
}

func runArgs(extra ...string) []string {
	args := []string{"run", "."}
	if _, err := os.Stat(configPath()); err == nil {
		args = append(args, "-config", configPath())
	}
	return append(args, extra...)
}

// Runs the testbed.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs(runArgs()...), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the testbed and reloads the config file on change.
func (Run) Watch() error {
	if _, err := os.Stat(configPath()); err != nil {
		return fmt.Errorf("nothing to watch: %w", err)
	}
	fmt.Println("Run engine with config reload...")
	_, err := executeCmd("go", withArgs(runArgs("-watch")...), withStream())
	return err
}
