//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// NewProcessImage returns a ProcessImage that approximates execve on Windows,
// which has no equivalent syscall: the interpreter runs as a child process
// inheriting the standard streams and the prepared environment, and the
// launcher exits with the child's status.
func NewProcessImage() ProcessImage {
	return childImage{}
}

type childImage struct{}

func (childImage) Replace(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}

		return err
	}

	os.Exit(0)
	return nil
}
