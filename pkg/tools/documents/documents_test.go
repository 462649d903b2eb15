package documents

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/h-ess/concierge-toolkit/toolkit"
)

const sampleDoc = `The harbor city council approved the new ferry terminal on Tuesday.
The terminal will serve three ferry routes and is expected to open in two years.
Local businesses welcomed the ferry terminal decision.
Critics argued the terminal budget should fund bus service instead.
The council noted that ferry ridership has doubled since 2019.
Construction of the terminal begins next spring.`

type stubSummarizer struct {
	out string
	err error
}

func (s stubSummarizer) Summarize(_ context.Context, _ string, _ int, _ string) (string, error) {
	return s.out, s.err
}

func TestSummarizeDocument_ExtractiveFallback(t *testing.T) {
	s := NewService(nil)
	resp, err := s.SummarizeDocument(context.Background(), SummarizeArgs{Text: sampleDoc, MaxWords: 30})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "extractive", resp.Method)
	assert.NotEmpty(t, resp.Summary)
}

func TestSummarizeDocument_NeverExceedsWordBudget(t *testing.T) {
	s := NewService(nil)
	for _, budget := range []int{1, 5, 12, 30, 1000} {
		resp, err := s.SummarizeDocument(context.Background(), SummarizeArgs{Text: sampleDoc, MaxWords: budget})
		require.NoError(t, err)
		words := len(strings.Fields(resp.Summary))
		assert.LessOrEqual(t, words, budget, "budget %d produced %d words", budget, words)
		assert.Greater(t, words, 0)
	}
}

func TestSummarizeDocument_BudgetEnforcedOnModelOutput(t *testing.T) {
	long := strings.Repeat("word ", 200)
	s := NewService(stubSummarizer{out: long})
	resp, err := s.SummarizeDocument(context.Background(), SummarizeArgs{Text: sampleDoc, MaxWords: 20})
	require.NoError(t, err)
	assert.Equal(t, "claude", resp.Method)
	assert.LessOrEqual(t, len(strings.Fields(resp.Summary)), 20)
}

func TestSummarizeDocument_ModelFailureFallsBack(t *testing.T) {
	s := NewService(stubSummarizer{err: errors.New("api unreachable")})
	resp, err := s.SummarizeDocument(context.Background(), SummarizeArgs{Text: sampleDoc})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "extractive", resp.Method)
	assert.NotEmpty(t, resp.Summary)
}

func TestSummarizeDocument_EmptyTextRejected(t *testing.T) {
	s := NewService(nil)
	_, err := s.SummarizeDocument(context.Background(), SummarizeArgs{Text: "   "})
	require.Error(t, err)
	var tkErr toolkit.ToolKitError
	require.ErrorAs(t, err, &tkErr)
	assert.Equal(t, "invalid_arguments", tkErr.Code)
}

func TestSummarizeDocument_SentencesKeepDocumentOrder(t *testing.T) {
	s := NewService(nil)
	resp, err := s.SummarizeDocument(context.Background(), SummarizeArgs{Text: sampleDoc, MaxWords: 60})
	require.NoError(t, err)

	// Whatever sentences were picked must appear in their original order.
	sentences := splitSentences(sampleDoc)
	lastIdx := -1
	for _, picked := range splitSentences(resp.Summary) {
		found := -1
		for i, orig := range sentences {
			if orig == picked {
				found = i
				break
			}
		}
		require.GreaterOrEqual(t, found, 0, "summary sentence not from the document: %q", picked)
		assert.Greater(t, found, lastIdx)
		lastIdx = found
	}
}

func TestExtractKeywords_RankedAndLimited(t *testing.T) {
	s := NewService(nil)
	resp, err := s.ExtractKeywordsTool(context.Background(), KeywordsArgs{Text: sampleDoc, Limit: 3})
	require.NoError(t, err)
	require.Len(t, resp.Keywords, 3)
	// "terminal" and "ferry" dominate the sample document.
	assert.Contains(t, resp.Keywords, "terminal")
	assert.Contains(t, resp.Keywords, "ferry")
	assert.Contains(t, resp.Display, "Keywords:")
}

func TestExtractKeywords_SkipsStopwords(t *testing.T) {
	keywords := ExtractKeywords("the the the council council and", 5)
	assert.Equal(t, []string{"council"}, keywords)
}

func TestExtractiveSummary_FocusBoostsMatchingSentences(t *testing.T) {
	out := ExtractiveSummary(sampleDoc, 15, "budget critics")
	assert.Contains(t, out, "budget")
}

func TestExtractiveSummary_EmptyInput(t *testing.T) {
	assert.Equal(t, "", ExtractiveSummary("", 50, ""))
}
