package wscli

import (
	"strings"
	"testing"
)

func TestRootCommandMeta(t *testing.T) {
	if rootCmd.Use != "wordspace" {
		t.Errorf("Use = %q, want %q", rootCmd.Use, "wordspace")
	}
	if rootCmd.Short == "" {
		t.Error("Short should not be empty")
	}
	if !strings.Contains(rootCmd.Long, "word space") {
		t.Errorf("Long should describe a word space, got %q", rootCmd.Long)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	want := []string{
		"info", "vector", "neighbors", "simval", "compose",
		"analogy", "nn", "textsim", "cluster", "export", "graph",
	}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommandPersistentFlags(t *testing.T) {
	for _, name := range []string{"path", "memory", "measure", "no-color", "output"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag %q not found", name)
		}
	}
}

func TestRootCommandRequiresPath(t *testing.T) {
	rootCmd.SetArgs([]string{"info"})
	err := rootCmd.Execute()
	wordSpacePath = ""
	if err == nil {
		t.Fatal("expected an error when --path is not set")
	}
}
