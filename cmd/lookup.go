package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	lookupJSON      bool
	lookupRateLimit float64
)

var lookupCmd = &cobra.Command{
	Use:   "lookup WORD [WORD...]",
	Short: "Print definitions for one or more words",
	Long: `Looks each word up in turn. With several words the requests are
spaced by --rate-limit (requests per second) to stay polite to Wiktionary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output results as JSON")
	lookupCmd.Flags().Float64Var(&lookupRateLimit, "rate-limit", 0, "outbound requests per second, 0 for unlimited (default from config)")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	rateLimit := -1.0
	if cmd.Flags().Changed("rate-limit") {
		rateLimit = lookupRateLimit
	}

	a, err := newApp(rateLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, word := range args {
		spinner := getSpinner(cmd.ErrOrStderr(), fmt.Sprintf(" Looking up %q...", word))
		res, err := a.lookup.Lookup(cmd.Context(), word)
		spinner.Finish()

		if err != nil {
			failed++
			printLookupError(cmd.ErrOrStderr(), word, err)
			continue
		}

		if lookupJSON {
			if err := printJSON(out, res); err != nil {
				return fmt.Errorf("failed to marshal results: %w", err)
			}
			continue
		}
		printDefinitions(out, res)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(args))
	}
	return nil
}
