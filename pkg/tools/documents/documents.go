// Package documents implements summarization and keyword extraction. The
// summary goes through Claude when an API key is present and otherwise
// falls back to a local extractive summarizer, so the tool works offline.
package documents

import (
	"context"
	"strings"

	"github.com/h-ess/concierge-toolkit/pkg/logging"
	"github.com/h-ess/concierge-toolkit/toolkit"
)

const (
	defaultMaxWords = 100
	defaultKeywords = 10
)

// Summary methods reported in responses.
const (
	methodClaude     = "claude"
	methodExtractive = "extractive"
)

// Service holds the optional model-backed summarizer.
type Service struct {
	llm Summarizer
}

// NewService builds the document tools service. llm may be nil; every
// summary then uses the extractive path.
func NewService(llm Summarizer) *Service {
	return &Service{llm: llm}
}

// SummarizeDocument summarizes the text within the word budget. The budget
// is enforced on the output regardless of which method produced it.
func (s *Service) SummarizeDocument(ctx context.Context, args SummarizeArgs) (SummarizeResponse, error) {
	if strings.TrimSpace(args.Text) == "" {
		return SummarizeResponse{Success: false, Error: "empty_text"},
			toolkit.NewError("invalid_arguments", "text must not be empty")
	}
	maxWords := args.MaxWords
	if maxWords <= 0 {
		maxWords = defaultMaxWords
	}

	method := methodExtractive
	var summary string
	if s.llm != nil {
		out, err := s.llm.Summarize(ctx, args.Text, maxWords, args.Focus)
		if err != nil {
			logging.Warn("documents: model summary failed, using extractive fallback", "err", err)
		} else {
			summary = out
			method = methodClaude
		}
	}
	if summary == "" {
		summary = ExtractiveSummary(args.Text, maxWords, args.Focus)
	}
	summary = clampWords(summary, maxWords)

	return SummarizeResponse{
		Success: true,
		Summary: summary,
		Method:  method,
		Display: summary,
	}, nil
}

// ExtractKeywordsTool returns the top content words of the text.
func (s *Service) ExtractKeywordsTool(ctx context.Context, args KeywordsArgs) (KeywordsResponse, error) {
	if strings.TrimSpace(args.Text) == "" {
		return KeywordsResponse{Success: false, Error: "empty_text"},
			toolkit.NewError("invalid_arguments", "text must not be empty")
	}
	limit := args.Limit
	if limit <= 0 {
		limit = defaultKeywords
	}
	keywords := ExtractKeywords(args.Text, limit)
	return KeywordsResponse{
		Success:  true,
		Keywords: keywords,
		Display:  "Keywords: " + strings.Join(keywords, ", "),
	}, nil
}

// clampWords truncates s to at most maxWords words.
func clampWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ")
}
