// Package remediate rewrites references to obsolete MM-IM tables in ABAP
// source text and records an audit issue for every change.
//
// The engine is line-scoped and lexical: it does not parse ABAP or SQL.
// A match is left untouched when its enclosing line is a write
// statement (UPDATE, MODIFY, DELETE FROM) targeting that same table; every
// other match is substituted with its replacement identifier and annotated
// with a provenance comment. The engine never fails on input text; units
// with no vocabulary occurrences are returned unchanged.
package remediate

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/s4lift/s4lift/pkg/catalog"
	"github.com/s4lift/s4lift/pkg/scan"
)

// Defaults for engine options.
const (
	DefaultSnippetRadius = 60
	DefaultAuthor        = "PwC"
)

// Engine performs the detection-and-rewrite pass. It is read-only after
// construction and safe for concurrent use across units.
type Engine struct {
	catalog       *catalog.Catalog
	scanner       scan.Scanner
	now           func() time.Time
	author        string
	snippetRadius int
	injectOrderBy bool
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used for annotation dates. Tests use this
// for deterministic output.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithAuthor sets the name recorded in the provenance annotation.
func WithAuthor(author string) Option {
	return func(e *Engine) { e.author = author }
}

// WithSnippetRadius sets the number of bytes of context captured on each
// side of a match in issue snippets.
func WithSnippetRadius(radius int) Option {
	return func(e *Engine) { e.snippetRadius = radius }
}

// WithScanner substitutes the vocabulary scanner. The scanner must be built
// from the same vocabulary as the catalog; matches outside the catalog are
// skipped with a warning.
func WithScanner(s scan.Scanner) Option {
	return func(e *Engine) { e.scanner = s }
}

// WithOrderByInjection enables the ORDER BY injection pass over remediated
// text. Off by default.
func WithOrderByInjection() Option {
	return func(e *Engine) { e.injectOrderBy = true }
}

// WithLogger sets the logger. Defaults to a discard logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an Engine over the given catalog.
func New(cat *catalog.Catalog, opts ...Option) (*Engine, error) {
	e := &Engine{
		catalog:       cat,
		now:           time.Now,
		author:        DefaultAuthor,
		snippetRadius: DefaultSnippetRadius,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.scanner == nil {
		s, err := scan.New(cat.Names())
		if err != nil {
			return nil, fmt.Errorf("building vocabulary scanner: %w", err)
		}
		e.scanner = s
	}
	return e, nil
}

// Write statements are recognized by keyword plus the first identifier
// token after it. Comparing the captured token against the matched table
// name gives the word-boundary guarantee without a per-table pattern.
var (
	updateStmtRe = regexp.MustCompile(`(?i)^\s*(?:UPDATE|MODIFY)\s+([A-Za-z0-9_]+)`)
	deleteStmtRe = regexp.MustCompile(`(?i)^\s*DELETE\s+FROM\s+([A-Za-z0-9_]+)`)
)

// Remediate scans text for obsolete table names and rewrites the eligible
// occurrences. It returns the remediated text and one Issue per rewrite,
// ordered by match position. It never fails: empty or non-matching text is
// returned unchanged with no issues.
func (e *Engine) Remediate(text string) (string, []Issue) {
	if text == "" {
		return text, nil
	}

	matches := e.scanner.Scan(text)
	if len(matches) == 0 {
		if e.injectOrderBy {
			return InjectOrderBy(text), nil
		}
		return text, nil
	}

	marker := "\n\" Changed by " + e.author + " on " + e.now().Format("2006-01-02") + "\n"

	var (
		issues []Issue
		b      strings.Builder
		cursor int
	)
	b.Grow(len(text) + len(matches)*len(marker))

	for _, m := range matches {
		name := strings.ToUpper(m.Name)
		entry, ok := e.catalog.Lookup(name)
		if !ok {
			// Scanner and catalog are built from the same vocabulary, so
			// this should not happen; skip the match rather than fail the
			// whole unit.
			e.logger.Warn("match outside catalog, skipping", "table", name)
			continue
		}

		if isProtected(enclosingLine(text, m.Start, m.End), name) {
			b.WriteString(text[cursor:m.End])
			cursor = m.End
			continue
		}

		b.WriteString(text[cursor:m.Start])
		b.WriteString(entry.Replacement)
		b.WriteString(marker)
		cursor = m.End

		issues = append(issues, Issue{
			Table:              name,
			TargetType:         "Table",
			TargetName:         entry.Replacement,
			UsedFields:         []string{},
			SuggestedStatement: fmt.Sprintf("Replaced %s with %s.", name, entry.Replacement),
			Snippet:            snippetAt(text, m.Start, m.End, e.snippetRadius),
			Note:               entry.Note,
		})
		e.logger.Debug("rewrote table reference",
			"table", name, "replacement", entry.Replacement, "offset", m.Start)
	}
	b.WriteString(text[cursor:])

	out := b.String()
	if e.injectOrderBy {
		out = InjectOrderBy(out)
	}
	return out, issues
}

// enclosingLine returns the line containing the match: from the previous
// newline (exclusive) to the next newline after the match (exclusive),
// with a missing trailing newline treated as end of text.
func enclosingLine(text string, start, end int) string {
	lineStart := strings.LastIndex(text[:start], "\n") + 1
	lineEnd := strings.Index(text[end:], "\n")
	if lineEnd == -1 {
		return text[lineStart:]
	}
	return text[lineStart : end+lineEnd]
}

// isProtected reports whether the line is a write statement targeting the
// given table. Statements naming a different table do not protect a match.
// A multi-line statement whose keyword sits on an earlier line is not
// recognized.
func isProtected(line, table string) bool {
	if m := updateStmtRe.FindStringSubmatch(line); m != nil && strings.EqualFold(m[1], table) {
		return true
	}
	if m := deleteStmtRe.FindStringSubmatch(line); m != nil && strings.EqualFold(m[1], table) {
		return true
	}
	return false
}

// snippetAt returns a window of radius bytes around [start, end), clipped
// to the text bounds.
func snippetAt(text string, start, end, radius int) string {
	s := max(0, start-radius)
	e := min(len(text), end+radius)
	return text[s:e]
}
