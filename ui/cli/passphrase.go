// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fortresspw/fortress/internal/entropy"
	"github.com/fortresspw/fortress/internal/generator"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/fortresspw/fortress/internal/logging"
	"github.com/spf13/cobra"
)

// newPassphraseCmd builds the `passphrase` subcommand.
func newPassphraseCmd() *cobra.Command {
	var (
		words           int
		separator       string
		noCapitalize    bool
		wordlistPath    string
		copyToClipboard bool
		quiet           bool
	)

	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate a memorable passphrase",
		Long: `Generate a passphrase of random dictionary words joined by a
separator. Words are selected uniformly from the wordlist with the OS
secure randomness source, so the entropy is words * log2(wordlist size).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg := generator.PassphraseConfig{
				Words:      words,
				Separator:  separator,
				Capitalize: !noCapitalize,
			}
			if !cmd.Flags().Changed("words") {
				cfg.Words = appConfig.Passphrase.Words
			}
			if !cmd.Flags().Changed("separator") {
				cfg.Separator = appConfig.Passphrase.Separator
			}
			if wordlistPath != "" {
				list, err := loadWordlist(wordlistPath)
				if err != nil {
					return err
				}
				cfg.Wordlist = list
			}

			passphrase, err := generator.GeneratePassphrase(cfg)
			if err != nil {
				return err
			}

			if quiet {
				fmt.Fprintln(out, passphrase.Value)
			} else {
				printHeader(out, "passphrase.header")
				printPassword(out, passphrase.Value)
				bits := entropy.ForAlphabet(passphrase.Words, passphrase.AlphabetSize)
				printReport(out, entropy.Estimate(bits, appConfig.GuessRate))
			}

			if copyToClipboard {
				if err := clipboard.WriteAll(passphrase.Value); err != nil {
					logging.Warnf("%s", i18n.T("generate.copy_failed", err))
				} else if !quiet {
					fmt.Fprintln(out, i18n.T("generate.copied"))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&words, "words", "w", 4, "Number of words")
	cmd.Flags().StringVarP(&separator, "separator", "s", "-", "Word separator")
	cmd.Flags().BoolVar(&noCapitalize, "no-capitalize", false, "Don't capitalize words")
	cmd.Flags().StringVar(&wordlistPath, "wordlist", "", "Path to a custom wordlist, one word per line")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the generated passphrase to the clipboard")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Output only the passphrase")

	return cmd
}

// loadWordlist reads a newline-separated wordlist from disk, skipping
// blank lines.
func loadWordlist(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read wordlist %s: %w", path, err)
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}
