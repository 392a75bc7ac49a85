// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the shared flags and the services every
// subcommand needs.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/masterkey/buildvars"
	"github.com/toeirei/masterkey/internal/catalog"
	"github.com/toeirei/masterkey/internal/config"
	"github.com/toeirei/masterkey/internal/keygen"
	"github.com/toeirei/masterkey/internal/logging"
	"github.com/toeirei/masterkey/internal/model"
	"github.com/toeirei/masterkey/internal/policy"
	"github.com/toeirei/masterkey/internal/tui"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var (
	appConfig  config.Config
	calculator keygen.Calculator
)

// runTUI is replaced in tests.
var runTUI = tui.Run

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A missing file is expected on first run. Write the defaults so the
	// user has something to edit.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		} else {
			log.Debug("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level := appConfig.Log.Level
	if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return err
	}
	log.SetDefault(logging.L)

	if appConfig.Keys.Dir == "" {
		log.Debug("no keys.dir configured, v1 and v3 keys are unavailable")
	}
	calculator = keygen.New(keygen.WithKeyStore(keygen.DirKeyStore{Dir: appConfig.Keys.Dir}))
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit. The built-in tables are checked first;
// a broken table is a build defect and panics.
func Execute() error {
	catalog.MustValidate()
	policy.MustValidate()
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// Every call returns a fresh command tree, so tests can run commands in
// isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "masterkey",
		Short: "Masterkey computes parental control master keys for Nintendo consoles.",
		Long: `Masterkey turns the inquiry number shown by a console's parental
control screen into the master key that resets it. The algorithm depends on
the platform and its system version; masterkey asks only for the inputs that
algorithm needs.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return cmd.Help()
			}
			return runTUI(tuiOptions())
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("keys-dir", "", "Directory holding the HMAC key files for v1 and v3")
	cmd.PersistentFlags().String("log-level", "", `Log level ("debug", "info", "warn", "error")`)
	cmd.PersistentFlags().String("log-file", "", "Write logs to this file while the TUI is running")
	cmd.PersistentFlags().Bool("debug", false, "Shorthand for --log-level debug")

	cmd.AddCommand(
		newPlatformsCmd(),
		newCalcCmd(),
		newVersionCmd(),
	)
	return cmd
}

func tuiOptions() tui.Options {
	opts := tui.Options{
		Calculator: calculator,
		Clipboard:  appConfig.TUI.Clipboard,
		LogFile:    appConfig.Log.File,
	}
	if name := appConfig.TUI.DefaultPlatform; name != "" {
		p, err := model.ParsePlatform(name)
		if err != nil {
			log.Warnf("ignoring tui.default_platform: %v", err)
		} else {
			opts.DefaultPlatform = p
		}
	}
	return opts
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		// Version output needs no config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
