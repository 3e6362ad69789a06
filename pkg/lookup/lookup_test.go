package lookup_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/wikidef/internal/models"
	"github.com/xhad/wikidef/pkg/extractor"
	"github.com/xhad/wikidef/pkg/lookup"
	"github.com/xhad/wikidef/pkg/scraper"
)

type stubFetcher struct {
	markup string
	err    error
	words  []string
}

func (f *stubFetcher) Fetch(_ context.Context, word string) (string, error) {
	f.words = append(f.words, word)
	return f.markup, f.err
}

type panicExtractor struct{}

func (panicExtractor) Extract(string, string) []models.Definition {
	panic("boom")
}

const page = `<section data-mw-section-id="1"><ol><li>домашнее животное◆Кот спит на диване.</li></ol></section>`

func TestLookup_Success(t *testing.T) {
	f := &stubFetcher{markup: page}
	svc := lookup.New(f, extractor.New(nil), nil)

	res, err := svc.Lookup(context.Background(), "  кот ")

	require.NoError(t, err)
	assert.Equal(t, "кот", res.Word)
	require.Len(t, res.Definitions, 1)
	assert.Equal(t, "домашнее животное", res.Definitions[0].Meaning)
	assert.Equal(t, []string{"кот"}, f.words)
}

func TestLookup_InvalidInput(t *testing.T) {
	f := &stubFetcher{markup: page}
	svc := lookup.New(f, extractor.New(nil), nil)

	_, err := svc.Lookup(context.Background(), "   ")

	assert.ErrorIs(t, err, lookup.ErrInvalidInput)
	assert.Empty(t, f.words, "fetch must not happen")
}

func TestLookup_NoDefinitions(t *testing.T) {
	svc := lookup.New(&stubFetcher{markup: "<p>x</p>"}, extractor.New(nil), nil)

	_, err := svc.Lookup(context.Background(), "кот")

	assert.ErrorIs(t, err, lookup.ErrNotFound)
}

func TestLookup_PageNotFound(t *testing.T) {
	missing := &scraper.StatusError{StatusCode: http.StatusNotFound, URL: "https://example.org/page/кот"}
	svc := lookup.New(&stubFetcher{err: missing}, extractor.New(nil), nil)

	res, err := svc.Lookup(context.Background(), "кот")

	assert.Nil(t, res)
	var upstream *lookup.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.NotErrorIs(t, err, lookup.ErrNotFound)
	assert.Equal(t, http.StatusInternalServerError, lookup.StatusCode(err))
	assert.Equal(t, "received status code 404 for URL: https://example.org/page/кот", err.Error())
}

func TestLookup_UpstreamFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	svc := lookup.New(&stubFetcher{err: cause}, extractor.New(nil), nil)

	res, err := svc.Lookup(context.Background(), "кот")

	assert.Nil(t, res)
	var upstream *lookup.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())
}

func TestLookup_ExtractorPanic(t *testing.T) {
	svc := lookup.New(&stubFetcher{markup: page}, panicExtractor{}, nil)

	res, err := svc.Lookup(context.Background(), "кот")

	assert.Nil(t, res)
	var upstream *lookup.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Contains(t, err.Error(), "boom")
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{lookup.ErrInvalidInput, http.StatusBadRequest},
		{lookup.ErrNotFound, http.StatusNotFound},
		{lookup.ErrMethodNotAllowed, http.StatusMethodNotAllowed},
		{fmt.Errorf("wrapped: %w", lookup.ErrNotFound), http.StatusNotFound},
		{&lookup.UpstreamError{Err: errors.New("timeout")}, http.StatusInternalServerError},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, lookup.StatusCode(tt.err))
		})
	}
}
