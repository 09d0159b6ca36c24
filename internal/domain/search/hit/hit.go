// Package hit holds the per-request view of one search engine hit.
package hit

import "strings"

// Hit is a single document returned by the search engine.
type Hit struct {
	id        string
	score     float64
	source    map[string]any
	fragments []string
}

// New creates a hit from the raw search engine fields.
func New(id string, score float64, source map[string]any, fragments []string) Hit {
	return Hit{id: id, score: score, source: source, fragments: fragments}
}

// ID returns the document identifier.
func (h *Hit) ID() string { return h.id }

// Score returns the engine relevance score.
func (h *Hit) Score() float64 { return h.score }

// Fragments returns the highlighted body fragments (may be empty).
func (h *Hit) Fragments() []string { return h.fragments }

// BodyText returns the body field joined into a single string. The index may
// store the body as one string or as a sequence of lines; a sequence is
// joined with "\n". The second return is false when the hit has no body.
func (h *Hit) BodyText() (string, bool) {
	raw, ok := h.source["body"]
	if !ok {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, true
	case []any:
		lines := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				lines = append(lines, s)
			}
		}
		return strings.Join(lines, "\n"), true
	case []string:
		return strings.Join(v, "\n"), true
	default:
		return "", false
	}
}

// StringField returns a string-valued source field, or "" when absent or not
// a string.
func (h *Hit) StringField(name string) string {
	if s, ok := h.source[name].(string); ok {
		return s
	}
	return ""
}

// Title returns the title source field, falling back to the document id.
func (h *Hit) Title() string {
	if t := h.StringField("title"); t != "" {
		return t
	}
	return h.id
}
