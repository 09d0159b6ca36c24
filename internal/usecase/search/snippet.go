package search

import "strings"

// fragmentSeparator joins highlight fragments into one display snippet.
const fragmentSeparator = " ... "

// joinFragments joins highlight fragments with " ... ". No fragments yields
// the empty string.
func joinFragments(fragments []string) string {
	return strings.Join(fragments, fragmentSeparator)
}
