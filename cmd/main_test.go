package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xhad/wikidef/internal/models"
)

const catPage = `<section data-mw-section-id="1"><ol>
<li>домашнее животное ◆ Кот спит на диване.</li>
<li>самец кошки, кошачий самец</li>
</ol></section>`

func setup(t *testing.T) (out *bytes.Buffer) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/кот":
			w.Write([]byte(catPage))
		case "/пусто":
			w.Write([]byte(`<p>мало</p>`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(upstream.Close)

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := "scraper:\n  base_url: \"" + upstream.URL + "\"\nlog:\n  level: error\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	noColor := color.NoColor
	color.NoColor = true

	out = new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		configPath, logLevel, logFormat = "", "", ""
		lookupJSON, lookupRateLimit = false, 0
		color.NoColor = noColor
	})

	configPath = path
	return out
}

func TestLookupCmd_JSON(t *testing.T) {
	out := setup(t)
	rootCmd.SetArgs([]string{"--config", configPath, "lookup", "--json", "--rate-limit", "0", "кот"})

	require.NoError(t, rootCmd.Execute())

	var res models.Lookup
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, "кот", res.Word)
	require.Len(t, res.Definitions, 2)
	assert.Equal(t, "домашнее животное", res.Definitions[0].Meaning)
	assert.Equal(t, []string{"Кот спит на диване."}, res.Definitions[0].Examples)
	assert.Equal(t, "самец кошки, кошачий самец", res.Definitions[1].Meaning)
}

func TestLookupCmd_Text(t *testing.T) {
	out := setup(t)
	rootCmd.SetArgs([]string{"--config", configPath, "lookup", "кот"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "кот")
	assert.Contains(t, out.String(), " 1. домашнее животное (определение)")
	assert.Contains(t, out.String(), "◆ Кот спит на диване.")
}

func TestLookupCmd_NotFound(t *testing.T) {
	setup(t)
	rootCmd.SetArgs([]string{"--config", configPath, "lookup", "--rate-limit", "0", "кот", "пёс"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 lookups failed")
}

func TestLookupCmd_InvalidConfig(t *testing.T) {
	setup(t)
	rootCmd.SetArgs([]string{"--config", configPath, "--log-format", "xml", "lookup", "кот"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
}

func TestChatCmd(t *testing.T) {
	out := setup(t)
	rootCmd.SetIn(strings.NewReader("кот\n\nпусто\nпёс\nexit\nнеслово\n"))
	rootCmd.SetArgs([]string{"--config", configPath, "chat"})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "домашнее животное")
	assert.Contains(t, out.String(), "пусто: word not found")
	assert.Contains(t, out.String(), "пёс: failed to fetch data: received status code 404")
	assert.NotContains(t, out.String(), "неслово")
}

func TestVersionCmd(t *testing.T) {
	out := setup(t)
	original := version
	version = "test-1.0.0"
	defer func() { version = original }()

	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "wikidef version test-1.0.0")
}
