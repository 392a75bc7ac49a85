// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/masterkey/internal/logging"
	"github.com/toeirei/masterkey/internal/model"
	"github.com/toeirei/masterkey/internal/tui"
)

// isolate points the config lookup at temporary directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	return dir
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestFirstRunWritesDefaultConfig(t *testing.T) {
	dir := isolate(t)
	if _, err := runCmd(t, "platforms"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "masterkey", "masterkey.yaml"))
	if err != nil {
		t.Fatalf("expected default config to be written: %v", err)
	}
	if !strings.Contains(string(data), "level: info") {
		t.Fatalf("expected default log level in config, got:\n%s", data)
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	isolate(t)
	_, err := runCmd(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "platforms")
	if err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestDebugFlagSetsLogLevel(t *testing.T) {
	isolate(t)
	defer func() { _ = logging.SetLevel("info") }()
	if _, err := runCmd(t, "--debug", "platforms"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logging.L.GetLevel() != clog.DebugLevel {
		t.Fatalf("expected debug level, got %v", logging.L.GetLevel())
	}
}

func TestInvalidLogLevel(t *testing.T) {
	isolate(t)
	if _, err := runCmd(t, "--log-level", "loud", "platforms"); err == nil {
		t.Fatalf("expected invalid log level to fail")
	}
}

func TestRootWithoutTerminalPrintsHelp(t *testing.T) {
	isolate(t)
	orig := runTUI
	defer func() { runTUI = orig }()
	runTUI = func(tui.Options) error {
		t.Fatalf("TUI must not start without a terminal")
		return nil
	}

	out, err := runCmd(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "masterkey [command]") {
		t.Fatalf("expected usage in output, got:\n%s", out)
	}
}

func TestTUIOptionsFromConfig(t *testing.T) {
	orig := appConfig
	defer func() { appConfig = orig }()

	appConfig.TUI.DefaultPlatform = "3DS"
	appConfig.TUI.Clipboard = true
	appConfig.Log.File = "/tmp/masterkey.log"
	opts := tuiOptions()
	if opts.DefaultPlatform != model.ThreeDS {
		t.Fatalf("expected 3DS, got %v", opts.DefaultPlatform)
	}
	if !opts.Clipboard || opts.LogFile != "/tmp/masterkey.log" {
		t.Fatalf("unexpected options %+v", opts)
	}

	appConfig.TUI.DefaultPlatform = "gameboy"
	if opts := tuiOptions(); opts.DefaultPlatform != model.PlatformNone {
		t.Fatalf("expected unknown platform to be ignored, got %v", opts.DefaultPlatform)
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := runCmd(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output:\n%s", out)
	}
}

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/masterkey", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2026-01-01T00:00:00Z"},
		},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != "deadbeef" {
		t.Fatalf("expected commit deadbeef, got %s", c)
	}
	if d != "2026-01-01T00:00:00Z" {
		t.Fatalf("expected date set, got %s", d)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/masterkey", Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}

func TestGetConfigPathFromCli(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil path when flag not set, got %v", *p)
	}

	path := filepath.Join(t.TempDir(), "masterkey.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("config", path); err != nil {
		t.Fatal(err)
	}
	p, err = getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || *p != path {
		t.Fatalf("expected %s, got %v", path, p)
	}
}
