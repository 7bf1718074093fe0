package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const passingDoc = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {"longitude": -70.5, "latitude": 42.1, "depth": 12.3, "time": "2024-01-01T00:00:00Z"}}
]}`

const failingDoc = `{"type": "FeatureCollection", "features": [
  {"type": "Feature", "properties": {"longitude": -70.5, "latitude": 42.1, "depth": 12.3, "time": "2024-01-01T00:00:00Z"}},
  {"type": "Feature", "properties": {"longitude": -70.5, "latitude": 95, "depth": 3, "time": "2024-01-01T00:00:00Z"}}
]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// resetFlags restores every flag of cmd to its default once the test ends
func resetFlags(t *testing.T, cmds ...*cobra.Command) {
	t.Helper()
	t.Cleanup(func() {
		for _, cmd := range cmds {
			reset := func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			}
			cmd.Flags().VisitAll(reset)
			cmd.PersistentFlags().VisitAll(reset)
		}
		appConfig = nil
	})
}

// execute runs the root command in an empty working directory
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("CSB_CONFIG", "")
	resetFlags(t, rootCmd, validateCmd, serveCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
