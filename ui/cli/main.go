// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Fortress
// application using the Cobra library. It defines the root command,
// subcommands (generate, passphrase, check), flags, and the main
// entry point for execution.
package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/fortresspw/fortress/internal/config"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/logging"
	"github.com/fortresspw/fortress/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// setupDefaultServices loads the configuration and initializes i18n
// and logging. It runs before every command.
func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := config.Defaults()

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	// A "file not found" error is expected on first run; other load
	// errors are fatal.
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return configLoadError(err)
		}
	}

	// Post-process config to ensure critical values are not empty,
	// falling back to defaults. This handles config files with empty
	// values for these fields.
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}
	if appConfig.GuessRate <= 0 {
		appConfig.GuessRate = defaults["guess_rate"].(float64)
	}
	if appConfig.Generator.Length == 0 {
		appConfig.Generator.Length = defaults["generator.length"].(int)
	}
	if appConfig.Passphrase.Words == 0 {
		appConfig.Passphrase.Words = defaults["passphrase.words"].(int)
	}
	if appConfig.Passphrase.Separator == "" {
		appConfig.Passphrase.Separator = defaults["passphrase.separator"].(string)
	}

	if cmd.Flags().Changed("guess-rate") {
		rate, err := cmd.Flags().GetFloat64("guess-rate")
		if err != nil {
			return err
		}
		appConfig.GuessRate = rate
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(verbose)

	return nil
}

// configLoadError wraps a fatal configuration load failure in its
// localized message. The translated message is already fully formatted;
// it must not be reinterpreted as a format string, since the underlying
// error may contain literal percent signs.
func configLoadError(err error) error {
	return errors.New(i18n.T("config.error_load", err))
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()
	return rootCmd.Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This
// function builds the main application command as well as fresh
// instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fortress",
		Short: "Fortress is a secure password and passphrase generator.",
		Long: `Fortress generates cryptographically secure passwords and
passphrases and reports an entropy-based strength estimate. Every
random draw comes from the operating system's secure randomness
source; nothing is ever stored.

Running without a subcommand launches the interactive TUI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Println(compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config and i18n are initialized by PersistentPreRunE, so
			// we can just run the TUI.
			return tui.Run(appConfig)
		},
	}

	cmd.Version = compositeVersion()

	// Define flags
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().Float64("guess-rate", 0, "Assumed attacker guesses per second for crack-time estimates (0 uses the configured default)")

	cmd.AddCommand(
		newGenerateCmd(),
		newPassphraseCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return cmd
}

// newVersionCmd builds a lightweight `version` subcommand so users and
// CI can run `fortress version`.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", v)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", d)
			}
		},
	}
}

// compositeVersion renders the single-line version string used by
// --version and the root command.
func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and
// build date for the running binary. If `info` is nil, it reads build
// info from the runtime. This helper is separated to make unit testing
// straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		} else {
			// Fall back to a pseudo-version recorded for this module as
			// a dependency, if one exists.
			for _, dep := range info.Deps {
				if dep.Path == "github.com/fortresspw/fortress" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
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

	if resolvedVersion == "" || resolvedVersion == "(devel)" {
		resolvedVersion = resolvedCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
