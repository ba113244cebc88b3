// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fortresspw/fortress/internal/entropy"
	"github.com/fortresspw/fortress/internal/generator"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/logging"
	"github.com/spf13/cobra"
)

// newGenerateCmd builds the `generate` subcommand.
func newGenerateCmd() *cobra.Command {
	var (
		length           int
		count            int
		noUppercase      bool
		noLowercase      bool
		noDigits         bool
		noSymbols        bool
		excludeAmbiguous bool
		requireEach      bool
		customChars      string
		copyToClipboard  bool
		quiet            bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a secure password",
		Long: `Generate one or more passwords drawn uniformly at random from the
enabled character sets using the OS secure randomness source.

Configuration errors (zero length, all character sets disabled, an
alphabet emptied by --exclude-ambiguous) abort before any random draw.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg := generator.Config{
				Length:              length,
				UseLowercase:        !noLowercase,
				UseUppercase:        !noUppercase,
				UseDigits:           !noDigits,
				UseSymbols:          !noSymbols,
				ExcludeAmbiguous:    excludeAmbiguous,
				CustomChars:         customChars,
				RequireEachCategory: requireEach,
			}

			// Persisted preferences apply when the flag was not given.
			if !cmd.Flags().Changed("length") {
				cfg.Length = appConfig.Generator.Length
			}
			if !cmd.Flags().Changed("exclude-ambiguous") {
				cfg.ExcludeAmbiguous = appConfig.Generator.ExcludeAmbiguous
			}
			if !cmd.Flags().Changed("require-each") {
				cfg.RequireEachCategory = appConfig.Generator.RequireEach
			}

			if count < 1 {
				return fmt.Errorf("%w: count must be at least 1", generator.ErrConfiguration)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if !quiet {
				printHeader(out, "generate.header")
			}

			var last string
			for i := 0; i < count; i++ {
				password, err := generator.Generate(cfg)
				if err != nil {
					return err
				}
				last = password.Value

				if quiet {
					fmt.Fprintln(out, password.Value)
					continue
				}

				printPassword(out, password.Value)
				bits := entropy.ForAlphabet(password.Length(), password.AlphabetSize)
				printReport(out, entropy.Estimate(bits, appConfig.GuessRate))
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(last); err != nil {
					logging.Warnf("%s", i18n.T("generate.copy_failed", err))
				} else if !quiet {
					fmt.Fprintln(out, i18n.T("generate.copied"))
				}
			}

			if !quiet {
				fmt.Fprintln(out, labelStyle.Render(i18n.T("generate.tip")))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 16, "Password length")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate")
	cmd.Flags().BoolVarP(&noUppercase, "no-uppercase", "U", false, "Exclude uppercase letters")
	cmd.Flags().BoolVarP(&noLowercase, "no-lowercase", "L", false, "Exclude lowercase letters")
	cmd.Flags().BoolVarP(&noDigits, "no-digits", "D", false, "Exclude digits")
	cmd.Flags().BoolVarP(&noSymbols, "no-symbols", "S", false, "Exclude symbols")
	cmd.Flags().BoolVarP(&excludeAmbiguous, "exclude-ambiguous", "x", false, "Exclude ambiguous characters (0O1lI|)")
	cmd.Flags().BoolVarP(&requireEach, "require-each", "e", false, "Guarantee at least one character from every enabled set")
	cmd.Flags().StringVar(&customChars, "custom-chars", "", "Additional characters to include in the alphabet")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the (last) generated password to the clipboard")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Output only the password(s), one per line")

	return cmd
}
