package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/xhad/wikidef/internal/models"
	"github.com/xhad/wikidef/pkg/lookup"
)

var (
	wordColor    = color.New(color.FgCyan, color.Bold)
	posColor     = color.New(color.FgYellow)
	exampleColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

func getSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}

func printDefinitions(w io.Writer, res *models.Lookup) {
	wordColor.Fprintf(w, "\n%s\n", res.Word)
	for _, def := range res.Definitions {
		fmt.Fprintf(w, "%2d. %s", def.ID, def.Meaning)
		if def.PartOfSpeech != "" {
			posColor.Fprintf(w, " (%s)", def.PartOfSpeech)
		}
		fmt.Fprintln(w)
		for _, ex := range def.Examples {
			exampleColor.Fprintf(w, "    ◆ %s\n", ex)
		}
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printLookupError(w io.Writer, word string, err error) {
	switch {
	case errors.Is(err, lookup.ErrNotFound):
		errorColor.Fprintf(w, "%s: word not found\n", word)
	case errors.Is(err, lookup.ErrInvalidInput):
		errorColor.Fprintln(w, "word must not be empty")
	default:
		errorColor.Fprintf(w, "%s: failed to fetch data: %v\n", word, err)
	}
}
