package launcher

// Default install layout for the winpatable application image.
const (
	// DefaultInterpreterPath is the interpreter used to run the entry script.
	DefaultInterpreterPath = "/usr/bin/python3"

	// DefaultScriptPath is the bundled entry script handed to the interpreter.
	DefaultScriptPath = "/app/lib/winpatable.py"

	// DefaultModuleDir holds the bundled Python modules.
	DefaultModuleDir = "/app/lib"

	// DefaultHelperBinDir holds helper executables the application shells out to.
	DefaultHelperBinDir = "/app/bin"
)

// Environment variables consulted by the interpreter and the OS.
const (
	ModuleSearchPathVar = "PYTHONPATH"
	ExecSearchPathVar   = "PATH"
)

// Environment variables that override the default install layout.
const (
	InterpreterOverrideVar = "WINPATABLE_PYTHON"
	ScriptOverrideVar      = "WINPATABLE_SCRIPT"
	ModuleDirOverrideVar   = "WINPATABLE_LIB_DIR"
	HelperBinOverrideVar   = "WINPATABLE_BIN_DIR"
)

// LogLevelVar selects the scribe log level for launcher diagnostics.
const LogLevelVar = "WINPATABLE_LOG_LEVEL"
