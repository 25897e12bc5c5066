package launcher

import (
	"os"
	"strings"

	"github.com/paketo-buildpacks/packit/v2/scribe"
)

// Environment prepares the variables the interpreter will inherit.
type Environment struct {
	logger scribe.Emitter
}

// NewEnvironment creates an Environment given a scribe.Emitter.
func NewEnvironment(logger scribe.Emitter) Environment {
	return Environment{
		logger: logger,
	}
}

// Prepare returns a copy of env in which the module search path points at the
// bundled module directory and the helper bin directory leads the executable
// search path. The module search path is overwritten unconditionally. An
// unset or empty executable search path becomes exactly the helper bin
// directory, with no trailing separator. All other entries pass through
// unchanged; the input slice is not modified.
func (e Environment) Prepare(env []string, settings Settings) []string {
	modulePath := ModuleSearchPathVar + "=" + settings.ModuleDir

	var foundModulePath, foundExecPath bool
	prepared := make([]string, 0, len(env)+2)

	for _, variable := range env {
		switch {
		case strings.HasPrefix(variable, ModuleSearchPathVar+"="):
			prepared = append(prepared, modulePath)
			foundModulePath = true

		case strings.HasPrefix(variable, ExecSearchPathVar+"="):
			existing := strings.TrimPrefix(variable, ExecSearchPathVar+"=")
			prepared = append(prepared, ExecSearchPathVar+"="+prependSearchPath(settings.HelperBinDir, existing))
			foundExecPath = true

		default:
			prepared = append(prepared, variable)
		}
	}

	if !foundModulePath {
		prepared = append(prepared, modulePath)
	}

	if !foundExecPath {
		prepared = append(prepared, ExecSearchPathVar+"="+settings.HelperBinDir)
	}

	e.logger.Debug.Subprocess("%s=%s", ModuleSearchPathVar, settings.ModuleDir)
	e.logger.Debug.Subprocess("Prepending %s to %s", settings.HelperBinDir, ExecSearchPathVar)

	return prepared
}

func prependSearchPath(dir, existing string) string {
	if existing == "" {
		return dir
	}

	return dir + string(os.PathListSeparator) + existing
}
