// Copyright (c) 2026 Fortress Team
// Fortress - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fortresspw/fortress/internal/entropy"
	"github.com/fortresspw/fortress/internal/i18n"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// newCheckCmd builds the `check` subcommand.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [password]",
		Short: "Check the strength of an existing password",
		Long: `Analyze an arbitrary password and print its entropy, strength band
and estimated crack time.

The alphabet is inferred from the character categories present in the
input, which assumes a uniformly random password. Human-chosen
passwords (dictionary words, keyboard patterns) are weaker than this
estimate suggests.

Without an argument, the password is read from the terminal with echo
disabled, so it does not end up in the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				read, err := readPasswordInput(cmd)
				if err != nil {
					return err
				}
				password = read
			}

			printHeader(out, "check.header")
			printReport(out, entropy.Check(password, appConfig.GuessRate))
			return nil
		},
	}
}

// readPasswordInput reads the password to analyze from the terminal
// without echo, or from piped stdin.
func readPasswordInput(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), i18n.T("check.prompt"))
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("could not read password: %w", err)
		}
		return string(raw), nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	return "", nil
}
