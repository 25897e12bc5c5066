package launcher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/scribe"
)

//go:generate faux --interface EnvironmentPreparer --output fakes/environment_preparer.go
//go:generate faux --interface ProcessImage --output fakes/process_image.go

// EnvironmentPreparer defines the interface for adjusting the environment the
// interpreter will inherit.
type EnvironmentPreparer interface {
	Prepare(env []string, settings Settings) []string
}

// ProcessImage defines the interface for replacing the current process image
// with another executable. Replace only returns on failure.
type ProcessImage interface {
	Replace(path string, argv []string, env []string) error
}

// Launcher hands the process over to the interpreter running the bundled
// entry script, forwarding every caller argument.
type Launcher struct {
	environment EnvironmentPreparer
	process     ProcessImage
	logger      scribe.Emitter
}

// NewLauncher creates a Launcher given an EnvironmentPreparer, a ProcessImage
// and a scribe.Emitter.
func NewLauncher(environment EnvironmentPreparer, process ProcessImage, logger scribe.Emitter) Launcher {
	return Launcher{
		environment: environment,
		process:     process,
		logger:      logger,
	}
}

// BuildArgv assembles the interpreter argument vector: the interpreter name,
// the entry script, then the caller arguments with the program name at index
// 0 dropped. Caller arguments are forwarded opaquely.
func BuildArgv(settings Settings, args []string) []string {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, filepath.Base(settings.InterpreterPath), settings.ScriptPath)

	if len(args) > 1 {
		argv = append(argv, args[1:]...)
	}

	return argv
}

// Run prepares the environment, builds the argument vector, and replaces the
// current process image with the interpreter. On success the launcher's code
// no longer executes; Run returning a non-nil error means the interpreter
// could not be launched.
func (l Launcher) Run(settings Settings, args []string, env []string) error {
	env = l.environment.Prepare(env, settings)
	argv := BuildArgv(settings, args)

	l.logger.Debug.Process("Handing off to %s", settings.InterpreterPath)
	l.logger.Debug.Subprocess("argv: %s", strings.Join(argv, " "))

	if err := l.process.Replace(settings.InterpreterPath, argv, env); err != nil {
		return fmt.Errorf("failed to exec %s: %w", settings.InterpreterPath, err)
	}

	return nil
}
