package runner

import (
	"os/exec"
	"path/filepath"
)

// Engine runs Command with Args followed by the path of SceneFile inside the
// working directory.
type Engine struct {
	Command   string
	Args      []string
	SceneFile string
}

// CreateCMD implements CreateCMD.
func (e Engine) CreateCMD(workingDirPath string) *exec.Cmd {
	args := append(append([]string{}, e.Args...), filepath.Join(workingDirPath, e.SceneFile))
	return exec.Command(e.Command, args...)
}
