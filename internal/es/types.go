package es

// Wire types for the search engine's documented JSON contract.

// SearchBody is the request body for POST /{index}/_search.
type SearchBody struct {
	Query     Query      `json:"query"`
	Highlight *Highlight `json:"highlight,omitempty"`
	Source    []string   `json:"_source,omitempty"`
	Size      int        `json:"size"`
}

// Query holds exactly one of the supported query clauses.
type Query struct {
	Match      map[string]MatchClause `json:"match,omitempty"`
	MultiMatch *MultiMatch            `json:"multi_match,omitempty"`
}

// MatchClause is a single-field full-text match.
type MatchClause struct {
	Query    string `json:"query"`
	Operator string `json:"operator,omitempty"`
}

// MultiMatch is a full-text match across several fields.
type MultiMatch struct {
	Query    string   `json:"query"`
	Fields   []string `json:"fields"`
	Operator string   `json:"operator,omitempty"`
}

// Highlight configures fragment highlighting.
type Highlight struct {
	Fields   map[string]HighlightField `json:"fields"`
	PreTags  []string                  `json:"pre_tags,omitempty"`
	PostTags []string                  `json:"post_tags,omitempty"`
}

// HighlightField configures highlighting for one field.
type HighlightField struct {
	FragmentSize      int `json:"fragment_size"`
	NumberOfFragments int `json:"number_of_fragments"`
}

// SearchResponse is the engine's search response envelope.
type SearchResponse struct {
	Hits HitsEnvelope `json:"hits"`
}

// HitsEnvelope carries the hit list and the total hit count.
type HitsEnvelope struct {
	Total Total `json:"total"`
	Hits  []Hit `json:"hits"`
}

// Total is the total hit count object.
type Total struct {
	Value int `json:"value"`
}

// Hit is one matched document.
type Hit struct {
	ID        string              `json:"_id"`
	Score     float64             `json:"_score"`
	Source    map[string]any      `json:"_source"`
	Highlight map[string][]string `json:"highlight,omitempty"`
}
