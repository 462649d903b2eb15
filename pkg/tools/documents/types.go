package documents

// SummarizeArgs are the inputs for the summarize_document tool.
type SummarizeArgs struct {
	Text     string `json:"text" jsonschema:"required,description=Document text to summarize."`
	MaxWords int    `json:"maxWords,omitempty" jsonschema:"description=Upper bound on summary length in words (default 100)."`
	Focus    string `json:"focus,omitempty" jsonschema:"description=Topic or terms the summary should emphasize."`
}

// SummarizeResponse carries the summary and which method produced it.
type SummarizeResponse struct {
	Success bool   `json:"success"`
	Summary string `json:"summary,omitempty"`
	Method  string `json:"method,omitempty"`
	Display string `json:"display,omitempty"`
	Error   string `json:"error,omitempty"`
}

// KeywordsArgs are the inputs for the extract_keywords tool.
type KeywordsArgs struct {
	Text  string `json:"text" jsonschema:"required,description=Document text to extract keywords from."`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum number of keywords (default 10)."`
}

// KeywordsResponse carries the ranked keywords.
type KeywordsResponse struct {
	Success  bool     `json:"success"`
	Keywords []string `json:"keywords,omitempty"`
	Display  string   `json:"display,omitempty"`
	Error    string   `json:"error,omitempty"`
}
