package documents

import (
	"sort"
	"strings"
	"unicode"
)

// stopwords excluded from keyword ranking. Small on purpose; the ranking
// only has to be good enough for summaries, not for search.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "but": true, "by": true, "for": true,
	"from": true, "had": true, "has": true, "have": true, "he": true,
	"her": true, "his": true, "i": true, "if": true, "in": true, "is": true,
	"it": true, "its": true, "not": true, "of": true, "on": true, "or": true,
	"our": true, "she": true, "so": true, "that": true, "the": true,
	"their": true, "there": true, "these": true, "they": true, "this": true,
	"to": true, "was": true, "we": true, "were": true, "which": true,
	"will": true, "with": true, "you": true, "your": true,
}

// splitSentences breaks text on sentence-ending punctuation. Abbreviation
// handling is intentionally naive.
func splitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder
	for _, r := range text {
		cur.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(cur.String()); s != "" {
				sentences = append(sentences, s)
			}
			cur.Reset()
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// tokenize lowercases and splits on non-letter, non-digit runes.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// keywordFrequencies counts content words across the whole document.
func keywordFrequencies(text string) map[string]int {
	freq := make(map[string]int)
	for _, w := range tokenize(text) {
		if stopwords[w] || len(w) < 3 {
			continue
		}
		freq[w]++
	}
	return freq
}

// ExtractKeywords returns up to limit content words ranked by frequency,
// ties broken alphabetically for determinism.
func ExtractKeywords(text string, limit int) []string {
	freq := keywordFrequencies(text)
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}

type scoredSentence struct {
	index int
	text  string
	words int
	score float64
}

// ExtractiveSummary selects the highest-scoring sentences, emitted in
// document order, without ever exceeding maxWords. Sentences are scored by
// keyword frequency overlap with a small bonus for appearing early. focus
// terms, when present in a sentence, boost its score.
func ExtractiveSummary(text string, maxWords int, focus string) string {
	if maxWords <= 0 {
		maxWords = 100
	}
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return ""
	}

	freq := keywordFrequencies(text)
	focusTerms := make(map[string]bool)
	for _, w := range tokenize(focus) {
		if !stopwords[w] {
			focusTerms[w] = true
		}
	}

	scored := make([]scoredSentence, 0, len(sentences))
	for i, s := range sentences {
		tokens := tokenize(s)
		if len(tokens) == 0 {
			continue
		}
		var score float64
		for _, w := range tokens {
			score += float64(freq[w])
			if focusTerms[w] {
				score += float64(len(tokens))
			}
		}
		score /= float64(len(tokens))
		// Earlier sentences carry slightly more weight.
		score += 1.0 / float64(i+1)
		scored = append(scored, scoredSentence{index: i, text: s, words: len(strings.Fields(s)), score: score})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].index < scored[j].index
	})

	// Greedy selection under the word budget.
	var picked []scoredSentence
	budget := maxWords
	for _, s := range scored {
		if s.words > budget {
			continue
		}
		picked = append(picked, s)
		budget -= s.words
		if budget == 0 {
			break
		}
	}
	if len(picked) == 0 {
		// Every sentence is over budget; truncate the best one.
		words := strings.Fields(scored[0].text)
		if len(words) > maxWords {
			words = words[:maxWords]
		}
		return strings.Join(words, " ")
	}

	sort.Slice(picked, func(i, j int) bool { return picked[i].index < picked[j].index })
	parts := make([]string, len(picked))
	for i, s := range picked {
		parts[i] = s.text
	}
	return strings.Join(parts, " ")
}
