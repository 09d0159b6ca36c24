// Package request holds the validated search request value type.
package request

import (
	"fmt"

	"github.com/oku-lab/wikisearch/internal/domain"
)

// Mode selects the result shape a request is built for.
type Mode string

const (
	// ModePage is the page-title extraction search.
	ModePage Mode = "page"
	// ModeRanked is the ranked file-list search.
	ModeRanked Mode = "ranked"
	// ModeHighlight is the multi-field search with highlighted snippets.
	ModeHighlight Mode = "highlight"
)

// Search parameter limits and highlight constants.
const (
	MaxKeywordLength = 1024

	DefaultPageLimit      = 10
	DefaultRankedLimit    = 50
	DefaultHighlightLimit = 20
	MaxLimit              = 200

	FragmentSize  = 150
	FragmentCount = 1
	PreTag        = "<mark>"
	PostTag       = "</mark>"
)

// Highlight holds highlighting options for a single field.
type Highlight struct {
	Field         string
	FragmentSize  int
	FragmentCount int
	PreTag        string
	PostTag       string
}

// Request is a validated search request for the search engine.
type Request struct {
	keyword      string
	searchMode   Mode
	fields       []string
	limit        int
	highlight    *Highlight
	sourceFields []string
}

// NewPage builds a page-title extraction request: body-field match, AND
// operator, small result cap. limit <= 0 selects the default.
func NewPage(keyword string, limit int) (Request, error) {
	if err := validateKeyword(keyword); err != nil {
		return Request{}, err
	}
	return Request{
		keyword:    keyword,
		searchMode: ModePage,
		fields:     []string{"body"},
		limit:      clampLimit(limit, DefaultPageLimit),
	}, nil
}

// NewRanked builds a ranked file-list request: body-field match, AND
// operator, larger result cap. limit <= 0 selects the default.
func NewRanked(keyword string, limit int) (Request, error) {
	if err := validateKeyword(keyword); err != nil {
		return Request{}, err
	}
	return Request{
		keyword:    keyword,
		searchMode: ModeRanked,
		fields:     []string{"body"},
		limit:      clampLimit(limit, DefaultRankedLimit),
	}, nil
}

// NewHighlight builds a multi-field request with body highlighting and a
// restricted source projection. limit <= 0 selects the default.
func NewHighlight(keyword string, limit int) (Request, error) {
	if err := validateKeyword(keyword); err != nil {
		return Request{}, err
	}
	return Request{
		keyword:    keyword,
		searchMode: ModeHighlight,
		fields:     []string{"title", "body"},
		limit:      clampLimit(limit, DefaultHighlightLimit),
		highlight: &Highlight{
			Field:         "body",
			FragmentSize:  FragmentSize,
			FragmentCount: FragmentCount,
			PreTag:        PreTag,
			PostTag:       PostTag,
		},
		sourceFields: []string{"title", "title_url_encoded", "modified"},
	}, nil
}

func validateKeyword(keyword string) error {
	if keyword == "" {
		return fmt.Errorf("%w: keyword is required", domain.ErrInvalidQuery)
	}
	if len(keyword) > MaxKeywordLength {
		return fmt.Errorf("%w: keyword too long (max %d chars)", domain.ErrInvalidQuery, MaxKeywordLength)
	}
	return nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Keyword returns the raw search keyword.
func (r *Request) Keyword() string { return r.keyword }

// Mode returns the result shape the request was built for.
func (r *Request) Mode() Mode { return r.searchMode }

// Fields returns the fields to match against.
func (r *Request) Fields() []string { return r.fields }

// Limit returns the maximum number of hits to retrieve.
func (r *Request) Limit() int { return r.limit }

// Highlight returns the highlight options (nil when highlighting is off).
func (r *Request) Highlight() *Highlight { return r.highlight }

// SourceFields returns the source projection (nil means full source).
func (r *Request) SourceFields() []string { return r.sourceFields }
