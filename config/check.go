package config

import (
	"fmt"
	"os/exec"
	"runtime"
)

var numCPU = runtime.NumCPU

type checkFunc func(conf *Config) error

func checkConfig(conf *Config) error {
	checkFuncs := []checkFunc{
		checkThreads,
		checkRods,
		checkWorldMargin,
	}

	for _, checkFunc := range checkFuncs {
		if err := checkFunc(conf); err != nil {
			return err
		}
	}

	return nil
}

// MaxThreads leaves two cores to the rest of the machine.
func MaxThreads() int {
	if n := numCPU() - 2; n > 1 {
		return n
	}
	return 1
}

// checkThreads always allows a single thread, even with fewer than three CPUs.
func checkThreads(conf *Config) error {
	if conf.Threads > 1 && conf.Threads > MaxThreads() {
		return fmt.Errorf("[config] number of threads must be <= %d, got %d", MaxThreads(), conf.Threads)
	}
	return nil
}

func checkRods(conf *Config) error {
	seen := map[string]bool{}
	for _, rod := range conf.Rods {
		if seen[rod.Name] {
			return fmt.Errorf("[config] rod %q is defined twice", rod.Name)
		}
		seen[rod.Name] = true
	}
	return nil
}

func checkWorldMargin(conf *Config) error {
	m := conf.WorldMargin
	if m.X < 0 || m.Y < 0 || m.Z < 0 {
		return fmt.Errorf("[config] world margin %v has a negative component", m)
	}
	return nil
}

// CheckEngine reports whether the engine command can be started.
func CheckEngine(conf *Config) error {
	if _, err := exec.LookPath(conf.Engine.Command); err != nil {
		return fmt.Errorf("[config] engine command %q: %w", conf.Engine.Command, err)
	}
	return nil
}
