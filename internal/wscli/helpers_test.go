package wscli

import (
	"io"
	"os"
	"testing"

	"github.com/mkrause/wordspace/internal/wordspace"
)

// captureStdout redirects os.Stdout to a pipe for the duration of the
// returned restore call. Needed because, like the teacher's own CLI
// commands, wscli's subcommands print with fmt.Printf rather than through
// cmd.OutOrStdout(), so cobra's SetOut(buf) never sees their output.
func captureStdout(t *testing.T) (read func() string, restore func()) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("captureStdout: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w

	return func() string {
			w.Close()
			out, _ := io.ReadAll(r)
			os.Stdout = orig
			return string(out)
		}, func() {
			os.Stdout = orig
		}
}

// resetRootFlags restores the package-level flag vars rootCmd's subcommands
// read from, so one test's --path/--measure/--output doesn't leak into the
// next. rootCmd is a package-level *cobra.Command shared across the whole
// test binary, the same way the teacher's tests share rootCmd.
func resetRootFlags() {
	wordSpacePath = ""
	loadIntoMemory = false
	measureFlag = ""
	noColor = false
	outputFormat = "table"
}

// wrappedFixtureHandle opens the cat/dog/kitten SIM fixture directly
// (bypassing the CLI's own --path flag plumbing), for unit tests that need
// a *wordspace.CachedHandle without running a whole command.
func wrappedFixtureHandle(t *testing.T) *wordspace.CachedHandle {
	t.Helper()
	dir := fixtureDir(t)
	h, err := wordspace.Open(dir, false)
	if err != nil {
		t.Fatalf("wordspace.Open: %v", err)
	}
	return wordspace.NewCachedHandle(h)
}
