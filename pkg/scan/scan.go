// Package scan locates whole-word occurrences of vocabulary table names in
// raw source text.
//
// The scanner is a lexical pattern matcher, not a parser: it treats the
// input as an arbitrary character sequence and finds boundary-respecting,
// case-insensitive tokens. It sits behind the Scanner interface so the
// regex-based implementation can later be swapped for a real tokenizer
// without touching the rewrite engine.
package scan

import (
	"fmt"
	"regexp"
	"strings"
)

// Match is one located occurrence of a vocabulary name.
// Name is the text exactly as it appears in the source; Start and End are
// byte offsets into the original text.
type Match struct {
	Name  string
	Start int
	End   int
}

// Scanner finds vocabulary occurrences in source text.
type Scanner interface {
	// Scan returns all non-overlapping whole-word matches, ordered by
	// start offset. Empty or non-matching input yields a nil slice.
	Scan(text string) []Match
}

type regexScanner struct {
	re *regexp.Regexp
}

// New compiles a Scanner from a vocabulary. Names must be pre-sorted by
// length descending (catalog.Names does this) so that a name which is a
// substring of a longer name never wins the alternation. Each name is
// pattern-escaped, so the vocabulary may contain regex metacharacters.
func New(names []string) (Scanner, error) {
	if len(names) == 0 {
		return regexScanner{}, nil
	}

	escaped := make([]string, len(names))
	for i, name := range names {
		escaped[i] = regexp.QuoteMeta(name)
	}

	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(escaped, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("compiling vocabulary pattern: %w", err)
	}
	return regexScanner{re: re}, nil
}

func (s regexScanner) Scan(text string) []Match {
	if s.re == nil || text == "" {
		return nil
	}

	idx := s.re.FindAllStringIndex(text, -1)
	if idx == nil {
		return nil
	}

	matches := make([]Match, len(idx))
	for i, span := range idx {
		matches[i] = Match{
			Name:  text[span[0]:span[1]],
			Start: span[0],
			End:   span[1],
		}
	}
	return matches
}
