//go:build e2e

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain lets the scripts invoke this test binary as cscript.
func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"cscript": func() { os.Exit(run(os.Args[1:])) },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: filepath.Join("testdata", "script"),
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")

			home := filepath.Join(env.WorkDir, ".home")
			if err := os.MkdirAll(home, 0o750); err != nil {
				return err
			}
			env.Setenv("HOME", home)
			env.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
			env.Setenv("CSCRIPT_ROOT", filepath.Join(env.WorkDir, ".cache"))
			return nil
		},
	})
}
