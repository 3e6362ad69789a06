// Package lookup ties fetching and extraction together and maps failures onto
// the error kinds the HTTP layer reports.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/xhad/wikidef/internal/models"
	"github.com/xhad/wikidef/internal/types"
)

var (
	ErrInvalidInput     = errors.New("word is required")
	ErrNotFound         = errors.New("word not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// UpstreamError wraps any failure while fetching or parsing the page. A
// missing upstream page is reported this way too; ErrNotFound only means the
// page held nothing usable.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

type Service struct {
	fetcher   types.Fetcher
	extractor types.Extractor
	log       *slog.Logger
}

func New(fetcher types.Fetcher, extractor types.Extractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:   fetcher,
		extractor: extractor,
		log:       logger.With("component", "lookup"),
	}
}

// Lookup fetches the page for word and extracts its definitions. It never
// returns a partial result: either the full capped list or an error.
func (s *Service) Lookup(ctx context.Context, word string) (result *models.Lookup, err error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrInvalidInput
	}

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &UpstreamError{Err: fmt.Errorf("%v", r)}
		}
	}()

	markup, err := s.fetcher.Fetch(ctx, word)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	defs := s.extractor.Extract(markup, word)
	if len(defs) == 0 {
		s.log.InfoContext(ctx, "no definitions", slog.String("word", word))
		return nil, ErrNotFound
	}

	return &models.Lookup{Word: word, Definitions: defs}, nil
}

// StatusCode maps an error returned by Lookup to an HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
