package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"text-summarizer/domain"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Readability sometimes extracts only the title or metadata while the
// actual content is much larger; below this length the paragraph
// fallback takes over.
const minReadableLength = 200

// articleExtractor converts raw fetched documents into plain article
// text: goquery pre-cleaning, go-readability main-body detection, and
// a paragraph-walk fallback for pages readability cannot handle.
type articleExtractor struct {
	logger *slog.Logger
}

// NewArticleExtractor creates the HTML article extractor.
func NewArticleExtractor(logger *slog.Logger) Extractor {
	return &articleExtractor{logger: logger}
}

// Extract returns the whitespace-normalized article body of a document.
// An empty input or a page with no extractable body wraps
// ErrNoExtractableBody; extraction is never an empty success.
func (e *articleExtractor) Extract(raw []byte, srcURL string) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty document", domain.ErrNoExtractableBody)
	}

	// Payloads without markup are already plain text.
	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed), nil
	}

	cleaned := e.removeBoilerplate(trimmed)

	if text := e.extractReadable(cleaned, srcURL); text != "" {
		return text, nil
	}

	if text := extractParagraphs(cleaned); text != "" {
		return text, nil
	}

	// Last resort: strip every tag from the original document.
	stripped := normalizeWhitespace(bluemonday.StrictPolicy().Sanitize(trimmed))
	if stripped == "" {
		e.logger.Warn("no extractable body found", "url", srcURL)
		return "", fmt.Errorf("%w: %s", domain.ErrNoExtractableBody, srcURL)
	}

	return stripped, nil
}

// removeBoilerplate strips navigation, scripts, media embeds, and
// social/comment widgets before readability sees the document.
func (e *articleExtractor) removeBoilerplate(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	doc.Find("head, script, style, noscript, title, aside, nav, header, footer").Remove()
	doc.Find("iframe, embed, object, video, audio, canvas").Remove()
	doc.Find("[class*='social'], [class*='share'], [id*='social'], [id*='share']").Remove()
	doc.Find("[class*='comment'], [id*='comment']").Remove()
	doc.Find("meta, link").Remove()

	cleaned, err := doc.Html()
	if err != nil || cleaned == "" {
		return html
	}

	return cleaned
}

// extractReadable runs go-readability on the cleaned document and
// returns its plain-text rendering, or "" when the result is too short
// to be the article body.
func (e *articleExtractor) extractReadable(html, srcURL string) string {
	pageURL, err := url.Parse(srcURL)
	if err != nil {
		pageURL = nil
	}

	article, err := readability.FromReader(strings.NewReader(html), pageURL)
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if err := article.RenderText(&buf); err != nil {
		return ""
	}

	text := normalizeWhitespace(buf.String())
	if len(text) < minReadableLength {
		return ""
	}

	return text
}

// extractParagraphs walks headers, paragraphs, and list items of the
// document in order and joins their text.
func extractParagraphs(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return normalizeWhitespace(bluemonday.StrictPolicy().Sanitize(html))
	}

	var parts []string

	doc.Find("h1, h2, h3, h4, h5, h6, p, li, pre").Each(func(i int, s *goquery.Selection) {
		if text := normalizeWhitespace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, " ")
}

// normalizeWhitespace collapses all whitespace runs to single spaces.
func normalizeWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
