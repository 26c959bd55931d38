package gitrepo

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CommandExecutor runs git commands. The interface exists so tests can
// substitute a recorded executor for a real git binary.
type CommandExecutor interface {
	// Output runs the command and returns its stdout.
	Output(cmd *exec.Cmd) ([]byte, error)
}

// ExecExecutor is the default CommandExecutor backed by os/exec.
type ExecExecutor struct{}

// NewExecExecutor creates the default executor.
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Output implements CommandExecutor. On failure the returned error carries
// the command line and trailing stderr output.
func (e *ExecExecutor) Output(cmd *exec.Cmd) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("%s: %w: %s", strings.Join(cmd.Args, " "), err, detail)
		}
		return nil, fmt.Errorf("%s: %w", strings.Join(cmd.Args, " "), err)
	}
	return stdout.Bytes(), nil
}
