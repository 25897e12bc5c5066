package launcher

import "strings"

// Settings describes the install layout the launcher targets.
type Settings struct {
	InterpreterPath string
	ScriptPath      string
	ModuleDir       string
	HelperBinDir    string
}

// DefaultSettings returns the standard winpatable image layout.
func DefaultSettings() Settings {
	return Settings{
		InterpreterPath: DefaultInterpreterPath,
		ScriptPath:      DefaultScriptPath,
		ModuleDir:       DefaultModuleDir,
		HelperBinDir:    DefaultHelperBinDir,
	}
}

// NewSettings applies any WINPATABLE_* overrides found in env on top of the
// defaults. Entries with empty values are ignored.
func NewSettings(env []string) Settings {
	settings := DefaultSettings()

	for _, variable := range env {
		name, value, found := strings.Cut(variable, "=")
		if !found || value == "" {
			continue
		}

		switch name {
		case InterpreterOverrideVar:
			settings.InterpreterPath = value
		case ScriptOverrideVar:
			settings.ScriptPath = value
		case ModuleDirOverrideVar:
			settings.ModuleDir = value
		case HelperBinOverrideVar:
			settings.HelperBinDir = value
		}
	}

	return settings
}
