//go:build !windows

package launcher

import "syscall"

// NewProcessImage returns a ProcessImage backed by execve(2). On success the
// calling image ceases to exist and Replace never returns.
func NewProcessImage() ProcessImage {
	return execveImage{}
}

type execveImage struct{}

func (execveImage) Replace(path string, argv []string, env []string) error {
	return syscall.Exec(path, argv, env)
}
