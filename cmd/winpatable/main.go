package main

import (
	"fmt"
	"os"

	"github.com/paketo-buildpacks/packit/v2/scribe"
	"github.com/winpatable/launcher"
)

func main() {
	logs := scribe.NewEmitter(os.Stderr).WithLevel(os.Getenv(launcher.LogLevelVar))
	settings := launcher.NewSettings(os.Environ())

	err := launcher.NewLauncher(
		launcher.NewEnvironment(logs),
		launcher.NewProcessImage(),
		logs,
	).Run(settings, os.Args, os.Environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "winpatable: %s\n", err)
		os.Exit(1)
	}
}
