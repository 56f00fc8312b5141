//go:build linux

package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CreateCatCMD struct {
}

func (c *CreateCatCMD) CreateCMD(workingDirPath string) *exec.Cmd {
	toRun := fmt.Sprintf("cat %s | tee ala_result", filepath.Join(workingDirPath, "ala"))
	return exec.Command("bash", "-c", toRun)
}

type CreateInfiniteSleepCMD struct {
}

func (c *CreateInfiniteSleepCMD) CreateCMD(workingDirPath string) *exec.Cmd {
	return exec.Command("sleep", "1h")
}

func newTestRunner(workers int) *Runner {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	return NewRunner(workers, logger)
}

func TestRunProcess(t *testing.T) {
	t.Run("Successful Run", func(t *testing.T) {
		result := newTestRunner(1).Run(context.Background(), &CreateCatCMD{}, map[string]string{"ala": "ma_psa"}, Options{})
		assert.Equal(t,
			Result{
				Files: map[string][]byte{
					"ala_result": []byte("ma_psa"),
				},
				StdOut: "ma_psa",
				StdErr: "",
				Errors: []string{},
			},
			result,
		)
	})

	t.Run("Timeout", func(t *testing.T) {
		result := newTestRunner(1).Run(context.Background(), &CreateInfiniteSleepCMD{}, map[string]string{}, Options{MaxDuration: time.Millisecond})
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "timeout expired")
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		result := newTestRunner(1).Run(ctx, &CreateInfiniteSleepCMD{}, map[string]string{}, Options{MaxDuration: time.Hour})
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "canceled")
	})

	t.Run("KeepsWorkDir", func(t *testing.T) {
		workDir := filepath.Join(t.TempDir(), "job")
		result := newTestRunner(1).Run(context.Background(), &CreateCatCMD{}, map[string]string{"ala": "ma_psa"}, Options{WorkDir: workDir})
		require.Empty(t, result.Errors)

		content, err := os.ReadFile(filepath.Join(workDir, ResultsDirName, "ala_result"))
		require.NoError(t, err)
		assert.Equal(t, "ma_psa", string(content))
	})

	t.Run("MissingCommand", func(t *testing.T) {
		result := newTestRunner(1).Run(context.Background(), Engine{Command: "uhrsim-no-such-engine"}, map[string]string{}, Options{})
		assert.Len(t, result.Errors, 1)
	})
}

func TestRunWaitsForWorker(t *testing.T) {
	r := newTestRunner(1)
	<-r.workerTokens
	defer func() { r.workerTokens <- true }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result := r.Run(ctx, &CreateCatCMD{}, map[string]string{"ala": "x"}, Options{})
	assert.Equal(t, []string{"no free worker: context canceled"}, result.Errors)
}

func TestEngineRun(t *testing.T) {
	engine := Engine{Command: "cat", SceneFile: "scene.json"}
	result := newTestRunner(2).Run(context.Background(), engine, map[string]string{"scene.json": `{"runId":"1"}`}, Options{})
	require.Empty(t, result.Errors)
	assert.Equal(t, `{"runId":"1"}`, result.StdOut)
	assert.Empty(t, result.Files)
}
