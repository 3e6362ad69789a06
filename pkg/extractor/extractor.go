// Package extractor turns a rendered Wiktionary page into a short list of
// definitions.
//
// The page is parsed with goquery, but the traversal limits and length filters
// mirror a plain text scan: at most 3 ordered lists of the first meaning
// section (up to the first nested section that closes), at most 5 items per
// list, and a single paragraph fallback when the section yields nothing.
package extractor

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xhad/wikidef/internal/models"
	"github.com/xhad/wikidef/pkg/processor"
	"golang.org/x/net/html"
)

const (
	// PartOfSpeechLabel is attached to every definition found in the meaning
	// section. No real part-of-speech detection happens.
	PartOfSpeechLabel = "определение"

	// Separator divides a list item into its meaning and usage examples.
	Separator = "◆"

	MaxDefinitions = 10

	meaningSection  = `section[data-mw-section-id="1"]`
	maxLists        = 3
	maxItemsPerList = 5
	itemMinLen      = 10
	itemMaxLen      = 500
	minExampleLen   = 5
	maxExamples     = 2

	maxParagraphs   = 3
	paragraphMinLen = 30
	paragraphMaxLen = 300
)

type Extractor struct {
	log *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{log: logger.With("component", "extractor")}
}

// Extract is a convenience wrapper around a default Extractor.
func Extract(markup, word string) []models.Definition {
	return New(nil).Extract(markup, word)
}

// Extract returns up to MaxDefinitions definitions in the order they appear in
// markup. An empty result means nothing usable was found. word is only used
// for logging.
func (e *Extractor) Extract(markup, word string) []models.Definition {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		e.log.Warn("unparseable markup", slog.String("word", word), slog.String("error", err.Error()))
		return nil
	}

	// Inline template styles would otherwise leak into item text.
	doc.Find("script, style").Remove()

	defs := e.fromMeaningSection(doc)
	source := "section"
	if len(defs) == 0 {
		defs = e.fromParagraphs(doc)
		source = "paragraph"
	}

	if len(defs) > MaxDefinitions {
		defs = defs[:MaxDefinitions]
	}

	e.log.Debug("definitions extracted",
		slog.String("word", word),
		slog.String("source", source),
		slog.Int("count", len(defs)),
	)

	return defs
}

func (e *Extractor) fromMeaningSection(doc *goquery.Document) []models.Definition {
	section := doc.Find(meaningSection).First()
	if section.Length() == 0 {
		return nil
	}

	lists := listsBeforeFirstClose(section)
	if len(lists) > maxLists {
		lists = lists[:maxLists]
	}

	var defs []models.Definition
	for _, list := range lists {
		section.FindNodes(list).ChildrenFiltered("li").EachWithBreak(func(j int, item *goquery.Selection) bool {
			if j >= maxItemsPerList {
				return false
			}
			def, ok := definitionFromItem(item.Text())
			if ok {
				def.ID = len(defs) + 1
				defs = append(defs, def)
			}
			return true
		})
	}

	return defs
}

// listsBeforeFirstClose returns the outermost ordered lists of section, in
// document order, that end before the first section closing inside it. On
// rendered pages the subsections are nested in section 1, so this keeps the
// scan to the lead of the section plus its first innermost subsection.
func listsBeforeFirstClose(section *goquery.Selection) []*html.Node {
	var boundary *html.Node
	section.Find("section").EachWithBreak(func(_ int, sub *goquery.Selection) bool {
		if sub.Find("section").Length() > 0 {
			return true
		}
		boundary = sub.Get(0)
		return false
	})

	var lists []*html.Node
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "ol" {
				// A list wrapping the boundary has not closed by then.
				if encloses(c, boundary) {
					return true
				}
				lists = append(lists, c)
				continue
			}
			if walk(c) || c == boundary {
				return true
			}
		}
		return false
	}
	walk(section.Get(0))

	return lists
}

func encloses(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

func definitionFromItem(raw string) (models.Definition, bool) {
	text := processor.Clean(raw)
	if !processor.Within(text, itemMinLen, itemMaxLen) {
		return models.Definition{}, false
	}

	parts := processor.Segments(text, Separator)
	meaning := parts[0]
	if meaning == "" {
		return models.Definition{}, false
	}

	examples := make([]string, 0, maxExamples)
	for _, part := range parts[1:] {
		if processor.Length(part) <= minExampleLen {
			continue
		}
		examples = append(examples, part)
		if len(examples) == maxExamples {
			break
		}
	}

	return models.Definition{
		Meaning:      meaning,
		PartOfSpeech: PartOfSpeechLabel,
		Examples:     examples,
	}, true
}

// fromParagraphs yields at most one definition: the first of the leading
// paragraphs whose text fits the length bounds.
func (e *Extractor) fromParagraphs(doc *goquery.Document) []models.Definition {
	var defs []models.Definition
	doc.Find("p").EachWithBreak(func(i int, p *goquery.Selection) bool {
		if i >= maxParagraphs {
			return false
		}
		text := processor.Clean(p.Text())
		if !processor.Within(text, paragraphMinLen, paragraphMaxLen) {
			return true
		}
		defs = append(defs, models.Definition{
			ID:       1,
			Meaning:  text,
			Examples: []string{},
		})
		return false
	})
	return defs
}
