package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// ResultsDirName is the directory the engine runs in and writes its output to.
const ResultsDirName = "results"

func (r *Runner) runProcess(
	ctx context.Context, createCMD CreateCMD, inputFiles map[string]string, opts Options,
) Result {
	result := Result{Errors: []string{}}

	workingDirPath, resultsDirPath, err := setupWorkingDirectory(opts.WorkDir, inputFiles)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	r.log.Debugf("created working dir: %s", workingDirPath)
	if opts.WorkDir == "" {
		defer r.removeWorkingDir(workingDirPath)
	}

	cmd := createCMD.CreateCMD(workingDirPath)
	cmd.Dir = resultsDirPath
	r.log.Debugf("cmd to run: %s %v", cmd.Path, cmd.Args[1:])

	stdout, stderr, err := runCmdAndWaitForResults(ctx, cmd, opts.MaxDuration)
	result.StdOut = stdout
	result.StdErr = stderr
	if err != nil {
		err = fmt.Errorf("run %s error: %s", cmd.Path, err)
		r.log.Error(err.Error())
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	resultFiles, err := gatherResultsFiles(resultsDirPath)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	result.Files = resultFiles

	return result
}

func setupWorkingDirectory(
	workDir string, inputFiles map[string]string,
) (workingDirPath string, resultsDirPath string, err error) {
	if workDir == "" {
		workingDirPath, err = os.MkdirTemp("", "uhrsim-working-dir-")
	} else {
		workingDirPath, err = workDir, os.MkdirAll(workDir, 0o700)
	}
	if err != nil {
		return "", "", fmt.Errorf("working dir creation error: %s", err.Error())
	}

	permissions := os.FileMode(0o700)

	for fileName, fileContent := range inputFiles {
		writeErr := os.WriteFile(
			filepath.Join(workingDirPath, fileName),
			[]byte(fileContent),
			permissions,
		)

		if writeErr != nil {
			return "", "", fmt.Errorf("write to %s file error: %s", fileName, writeErr.Error())
		}
	}

	resultsDirPath = filepath.Join(workingDirPath, ResultsDirName)
	err = os.MkdirAll(resultsDirPath, permissions)
	if err != nil {
		return "", "", fmt.Errorf("results dir in working dir creation error: %s", err.Error())
	}
	return workingDirPath, resultsDirPath, nil
}

func runCmdAndWaitForResults(
	ctx context.Context, cmd *exec.Cmd, maxJobDuration time.Duration,
) (stdout string, stderr string, err error) {
	processFinished := make(chan error, 1)

	stdoutBuff := &bytes.Buffer{}
	stderrBuff := &bytes.Buffer{}
	cmd.Stdout = stdoutBuff
	cmd.Stderr = stderrBuff

	err = cmd.Start()
	if err != nil {
		return "", "", err
	}

	go func() {
		processFinished <- cmd.Wait()
	}()

	timer := time.NewTimer(maxJobDuration)
	defer timer.Stop()

	select {
	case err = <-processFinished:
	case <-timer.C:
		_ = cmd.Process.Kill()
		<-processFinished
		err = fmt.Errorf("%s command timeout expired", cmd.Path)
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-processFinished
		err = fmt.Errorf("%s command canceled: %s", cmd.Path, ctx.Err())
	}

	stdout = stdoutBuff.String()
	stderr = stderrBuff.String()
	return stdout, stderr, err
}

func (r *Runner) removeWorkingDir(workingDirPath string) {
	err := os.RemoveAll(workingDirPath)
	if err != nil {
		r.log.Debugf("remove working dir %s error: %s", workingDirPath, err.Error())
	} else {
		r.log.Debugf("removed working dir %s", workingDirPath)
	}
}

func gatherResultsFiles(resultsDirPath string) (map[string][]byte, error) {
	resultFiles := map[string][]byte{}

	entries, err := os.ReadDir(resultsDirPath)
	if err != nil {
		return nil, fmt.Errorf("can not read files list: %s", err.Error())
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(resultsDirPath, entry.Name()))
		if err != nil {
			return nil, err
		}

		resultFiles[entry.Name()] = content
	}

	return resultFiles, nil
}
