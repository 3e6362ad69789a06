package types

import (
	"context"

	"github.com/xhad/wikidef/internal/models"
)

// Core interfaces
type Fetcher interface {
	Fetch(ctx context.Context, word string) (string, error)
}

type Extractor interface {
	Extract(markup, word string) []models.Definition
}

type Lookuper interface {
	Lookup(ctx context.Context, word string) (*models.Lookup, error)
}
