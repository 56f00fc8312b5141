// Package runner starts and supervises simulation engine processes.
package runner

import (
	"context"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultMaxJobDuration = 1000 * time.Second
)

// CreateCMD create command which run simulation process.
type CreateCMD interface {
	CreateCMD(workingDirPath string) *exec.Cmd
}

// Runner starts and supervises running of simulations.
type Runner struct {
	workerTokens chan bool
	log          logrus.FieldLogger
}

// Result of simulation run.
type Result struct {
	Files  map[string][]byte
	StdOut string
	StdErr string
	Errors []string
}

// Options of a single job.
type Options struct {
	// MaxDuration kills the job when exceeded. Zero means the default.
	MaxDuration time.Duration
	// WorkDir is used and kept instead of a temporary directory when set.
	WorkDir string
}

// NewRunner create Runner which is ready to run up to maxWorkers jobs at once.
func NewRunner(maxWorkers int, log logrus.FieldLogger) *Runner {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	runner := &Runner{
		workerTokens: make(chan bool, maxWorkers),
		log:          log,
	}

	for i := 0; i < maxWorkers; i++ {
		runner.workerTokens <- true
	}

	return runner
}

// Run new job. It waits for a free worker until ctx is done.
func (r *Runner) Run(ctx context.Context, createCMD CreateCMD, inputFiles map[string]string, opts Options) Result {
	select {
	case <-r.workerTokens:
		defer func() { r.workerTokens <- true }()
		if opts.MaxDuration <= 0 {
			opts.MaxDuration = defaultMaxJobDuration
		}
		return r.runProcess(ctx, createCMD, inputFiles, opts)

	case <-ctx.Done():
		return Result{
			Errors: []string{
				"no free worker: " + ctx.Err().Error(),
			},
		}
	}
}
