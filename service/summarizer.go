package service

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"text-summarizer/config"
	"text-summarizer/domain"
)

// tokenPattern splits text into alphanumeric runs.
var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopwords are excluded from term-frequency scoring so that function
// words do not dominate sentence scores.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "for": {}, "from": {}, "had": {},
	"has": {}, "have": {}, "he": {}, "her": {}, "his": {}, "how": {},
	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "just": {}, "more": {}, "most": {}, "my": {}, "no": {},
	"not": {}, "of": {}, "on": {}, "one": {}, "or": {}, "other": {},
	"our": {}, "out": {}, "over": {}, "she": {}, "so": {}, "some": {},
	"such": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "to": {},
	"up": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}

// extractiveSummarizer selects the highest-scoring sentences of a
// document. Scoring is plain term frequency normalized by sentence
// length; no randomness and no external model calls, so identical
// input always yields identical output.
type extractiveSummarizer struct {
	sentenceCount int
	logger        *slog.Logger
}

// NewExtractiveSummarizer creates a summarizer that keeps the
// configured number of sentences.
func NewExtractiveSummarizer(cfg config.SummarizerConfig, logger *slog.Logger) Summarizer {
	return &extractiveSummarizer{
		sentenceCount: cfg.SentenceCount,
		logger:        logger,
	}
}

// Summarize reduces plain text to its top-scoring sentences, emitted in
// their original order of appearance. Documents with fewer sentences
// than the configured count are returned whole. Empty input wraps
// ErrEmptyDocument.
func (s *extractiveSummarizer) Summarize(text string) (string, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return "", fmt.Errorf("%w: nothing to summarize", domain.ErrEmptyDocument)
	}

	if len(sentences) <= s.sentenceCount {
		return strings.Join(sentences, " "), nil
	}

	frequencies := termFrequencies(sentences)

	type scored struct {
		score float64
		index int
	}

	scores := make([]scored, len(sentences))
	for i, sentence := range sentences {
		scores[i] = scored{score: scoreSentence(sentence, frequencies), index: i}
	}

	// Rank by score, breaking ties toward earlier sentences.
	sort.SliceStable(scores, func(a, b int) bool {
		if scores[a].score != scores[b].score {
			return scores[a].score > scores[b].score
		}
		return scores[a].index < scores[b].index
	})

	selected := make([]int, s.sentenceCount)
	for i := range selected {
		selected[i] = scores[i].index
	}

	// Output keeps source order, not score order.
	sort.Ints(selected)

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sentences[idx]
	}

	return strings.Join(picked, " "), nil
}

// termFrequencies counts non-stopword terms across the whole document.
func termFrequencies(sentences []string) map[string]int {
	frequencies := make(map[string]int)

	for _, sentence := range sentences {
		for _, term := range tokenize(sentence) {
			frequencies[term]++
		}
	}

	return frequencies
}

// scoreSentence sums the document frequencies of a sentence's terms,
// normalized by token count to avoid bias toward long sentences.
func scoreSentence(sentence string, frequencies map[string]int) float64 {
	tokens := tokenPattern.FindAllString(strings.ToLower(sentence), -1)
	if len(tokens) == 0 {
		return 0
	}

	var total int
	for _, token := range tokens {
		if _, skip := stopwords[token]; skip {
			continue
		}
		total += frequencies[token]
	}

	return float64(total) / float64(len(tokens))
}

// tokenize lowercases a sentence and returns its non-stopword terms.
func tokenize(sentence string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(sentence), -1)

	terms := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, skip := stopwords[token]; skip {
			continue
		}
		terms = append(terms, token)
	}

	return terms
}

// splitSentences splits text at . ! ? boundaries followed by a space,
// newline, or end of text.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])

		if runes[i] == '.' || runes[i] == '!' || runes[i] == '?' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' {
				if sentence := strings.TrimSpace(current.String()); sentence != "" {
					sentences = append(sentences, sentence)
				}
				current.Reset()
			}
		}
	}

	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}

	return sentences
}
