package cli

import (
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/uhrsim/uhrsim/config"
	"github.com/uhrsim/uhrsim/pkg/scene"
	"github.com/uhrsim/uhrsim/pkg/setup"
)

// sceneFlags are shared by every command building a scene.
type sceneFlags struct {
	visu    bool
	time    float64
	threads int
	seed    int64
	output  string
}

func (f *sceneFlags) register(flags *pflag.FlagSet) {
	flags.BoolVarP(&f.visu, "visu", "v", false, "visualization mode with a few particles")
	flags.Float64VarP(&f.time, "time", "t", 0, "simulated time in seconds")
	flags.IntVarP(&f.threads, "threads", "T", 1, "number of engine threads")
	flags.Int64VarP(&f.seed, "random", "r", setup.DefaultRandomSeed, "random seed")
	flags.StringVarP(&f.output, "output", "o", "", "hits output file name")
}

// apply copies the flags set on the command line into conf.
func (f *sceneFlags) apply(flags *pflag.FlagSet, conf *config.Config) {
	if flags.Changed("visu") {
		conf.Visu = f.visu
	}
	if flags.Changed("time") {
		conf.Time = f.time
	}
	if flags.Changed("threads") {
		conf.Threads = f.threads
	}
	if flags.Changed("random") {
		conf.Seed = f.seed
	}
	if flags.Changed("output") {
		conf.Output = f.output
	}
}

// loadConfig builds the configuration of cmd and initializes logging.
func loadConfig(cmd *cobra.Command, opts *rootOptions, override func(*pflag.FlagSet, *config.Config)) (*config.Config, error) {
	flags := cmd.Flags()
	conf, err := config.SetupConfig(opts.configPath, now(), func(conf *config.Config) {
		if flags.Changed("log-level") {
			conf.LogLevel = opts.logLevel
		}
		override(flags, conf)
	})
	if err != nil {
		return nil, err
	}
	if err := config.InitLogger(conf.LogLevel); err != nil {
		return nil, err
	}
	log.SetOutput(cmd.ErrOrStderr())

	log.WithFields(log.Fields{
		"layout":  conf.Layout,
		"visu":    conf.Visu,
		"time":    conf.Time,
		"threads": conf.Threads,
		"seed":    conf.Seed,
		"output":  conf.Output,
		"rods":    len(conf.Rods),
	}).Info("configuration")
	return conf, nil
}

func loadScene(cmd *cobra.Command, opts *rootOptions, flags *sceneFlags) (*config.Config, setup.Setup, error) {
	conf, err := loadConfig(cmd, opts, flags.apply)
	if err != nil {
		return nil, setup.Setup{}, err
	}
	s, err := scene.Build(*conf)
	if err != nil {
		return nil, setup.Setup{}, err
	}
	log.Infof("scene: %d volumes, %d sources, %d actors", len(s.Volumes), len(s.Sources), len(s.Actors))
	return conf, s, nil
}

func printFiles(cmd *cobra.Command, dir string, files map[string]string) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s\n", dir, name)
	}
}
