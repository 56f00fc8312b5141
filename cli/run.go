package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/uhrsim/uhrsim/config"
	"github.com/uhrsim/uhrsim/pkg/export"
	"github.com/uhrsim/uhrsim/pkg/runner"
	"github.com/uhrsim/uhrsim/pkg/scene"
)

type runFlags struct {
	sceneFlags
	workDir    string
	engine     string
	resultsDir string
}

func (f *runFlags) register(flags *pflag.FlagSet) {
	f.sceneFlags.register(flags)
	flags.StringVar(&f.workDir, "workdir", "", "keep the engine working directory here")
	flags.StringVar(&f.engine, "engine", config.DefaultEngineCommand, "engine command")
	flags.StringVar(&f.resultsDir, "results", ".", "directory receiving the engine output files")
}

func (f *runFlags) apply(flags *pflag.FlagSet, conf *config.Config) {
	f.sceneFlags.apply(flags, conf)
	if flags.Changed("workdir") {
		conf.WorkDir = f.workDir
	}
	if flags.Changed("engine") {
		conf.Engine.Command = f.engine
	}
}

func generateRunCmd(opts *rootOptions) *cobra.Command {
	flags := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "build the scene and run the engine",
		Long:  "builds, sizes and validates the scene, exports it and runs the simulation engine on it",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, opts, flags.apply)
			if err != nil {
				return err
			}
			if err := config.CheckEngine(conf); err != nil {
				return err
			}
			s, err := scene.Build(*conf)
			if err != nil {
				return err
			}

			runID := uuid.NewString()
			runLog := log.WithField("run", runID)
			files, err := export.Files(s, runID)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			engine := runner.Engine{
				Command:   conf.Engine.Command,
				Args:      conf.Engine.Args,
				SceneFile: export.SceneFileName,
			}
			r := runner.NewRunner(1, config.NamedLogger("runner").WithField("run", runID))
			runLog.Infof("starting %s", conf.Engine.Command)
			result := r.Run(ctx, engine, files, runner.Options{
				MaxDuration: conf.Engine.Timeout,
				WorkDir:     conf.WorkDir,
			})

			fmt.Fprint(cmd.OutOrStdout(), result.StdOut)
			if result.StdErr != "" {
				runLog.Warn(result.StdErr)
			}
			if len(result.Errors) > 0 {
				return errors.New(strings.Join(result.Errors, "; "))
			}

			outputs := make(map[string]string, len(result.Files))
			for name, content := range result.Files {
				outputs[name] = string(content)
			}
			if len(outputs) == 0 {
				runLog.Info("engine produced no output files")
				return nil
			}
			if err := export.WriteFiles(flags.resultsDir, outputs); err != nil {
				return err
			}
			printFiles(cmd, flags.resultsDir, outputs)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
