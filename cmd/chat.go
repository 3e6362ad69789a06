package main

import (
	"bufio"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Look words up interactively",
	Args:  cobra.NoArgs,
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, err := newApp(0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	prompt := color.New(color.FgGreen)
	color.New(color.FgCyan).Fprintln(out, "\nWiktionary lookup (type 'exit' to quit)")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		prompt.Fprint(out, "\nWord: ")
		if !scanner.Scan() {
			break
		}

		word := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(word, "exit") {
			break
		}
		if word == "" {
			continue
		}

		spinner := getSpinner(cmd.ErrOrStderr(), " Searching Wiktionary...")
		res, err := a.lookup.Lookup(cmd.Context(), word)
		spinner.Finish()

		if err != nil {
			printLookupError(out, word, err)
			continue
		}
		printDefinitions(out, res)
	}

	return scanner.Err()
}
