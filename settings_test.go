package launcher_test

import (
	"testing"

	"github.com/sclevine/spec"
	"github.com/winpatable/launcher"

	. "github.com/onsi/gomega"
)

func testSettings(t *testing.T, context spec.G, it spec.S) {
	var Expect = NewWithT(t).Expect

	context("NewSettings", func() {
		it("returns the default layout when no overrides are present", func() {
			settings := launcher.NewSettings([]string{"HOME=/home/user", "PATH=/usr/bin"})
			Expect(settings).To(Equal(launcher.Settings{
				InterpreterPath: "/usr/bin/python3",
				ScriptPath:      "/app/lib/winpatable.py",
				ModuleDir:       "/app/lib",
				HelperBinDir:    "/app/bin",
			}))
		})

		it("applies WINPATABLE_* overrides", func() {
			settings := launcher.NewSettings([]string{
				"WINPATABLE_PYTHON=/opt/python/bin/python3.11",
				"WINPATABLE_SCRIPT=/opt/winpatable/lib/winpatable.py",
				"WINPATABLE_LIB_DIR=/opt/winpatable/lib",
				"WINPATABLE_BIN_DIR=/opt/winpatable/bin",
			})
			Expect(settings).To(Equal(launcher.Settings{
				InterpreterPath: "/opt/python/bin/python3.11",
				ScriptPath:      "/opt/winpatable/lib/winpatable.py",
				ModuleDir:       "/opt/winpatable/lib",
				HelperBinDir:    "/opt/winpatable/bin",
			}))
		})

		it("ignores overrides with empty values", func() {
			settings := launcher.NewSettings([]string{"WINPATABLE_PYTHON="})
			Expect(settings.InterpreterPath).To(Equal("/usr/bin/python3"))
		})
	})
}
