// Package result holds the search result value types.
package result

// Entry is one ranked file-list hit.
type Entry struct {
	id    string
	title string
	count int
	score float64
}

// NewEntry creates a ranked entry.
func NewEntry(id, title string, count int, score float64) Entry {
	return Entry{id: id, title: title, count: count, score: score}
}

// ID returns the document identifier.
func (e *Entry) ID() string { return e.id }

// Title returns the display title.
func (e *Entry) Title() string { return e.title }

// Count returns the keyword occurrence count in the document body.
func (e *Entry) Count() int { return e.count }

// Score returns the engine relevance score.
func (e *Entry) Score() float64 { return e.score }

// Snippet is one highlighted multi-field hit.
type Snippet struct {
	id       string
	title    string
	urlTitle string
	modified string
	snippet  string
}

// NewSnippet creates a highlighted hit.
func NewSnippet(id, title, urlTitle, modified, snippet string) Snippet {
	return Snippet{id: id, title: title, urlTitle: urlTitle, modified: modified, snippet: snippet}
}

// ID returns the document identifier.
func (s *Snippet) ID() string { return s.id }

// Title returns the page title.
func (s *Snippet) Title() string { return s.title }

// URLTitle returns the URL-safe title variant.
func (s *Snippet) URLTitle() string { return s.urlTitle }

// Modified returns the last-modified timestamp as stored in the index.
func (s *Snippet) Modified() string { return s.modified }

// Text returns the joined highlight snippet ("" when nothing was highlighted).
func (s *Snippet) Text() string { return s.snippet }
