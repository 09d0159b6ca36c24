// Package wikilink extracts bracketed page references from wiki body text.
package wikilink

import (
	"regexp"
	"strings"
)

// linkPattern matches the shortest [[...]] token in a line.
var linkPattern = regexp.MustCompile(`\[\[(.*?)\]\]`)

// Extract returns the page titles referenced on lines of body that contain
// keyword as a case-insensitive substring. Only the first [[...]] token per
// matching line is taken; a matching line without a token yields nothing.
// Pure function of (body, keyword); duplicates across lines are kept.
func Extract(body, keyword string) []string {
	var titles []string
	lowered := strings.ToLower(keyword)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.Contains(strings.ToLower(line), lowered) {
			continue
		}
		if m := linkPattern.FindStringSubmatch(line); m != nil {
			titles = append(titles, m[1])
		}
	}
	return titles
}
