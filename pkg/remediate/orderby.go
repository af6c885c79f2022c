package remediate

import (
	"regexp"
	"strings"
	"unicode"
)

// selectStmtRe captures the field list of a SELECT ... FROM <table>
// statement, terminated by a period or newline.
var selectStmtRe = regexp.MustCompile(`(?is)SELECT\s+(\*|.+?)\s+FROM\s+[A-Z0-9_]+.*?(?:\.|\n)`)

// InjectOrderBy appends an ORDER BY clause to SELECT statements that lack
// one. SELECT * gets ORDER BY PRIMARY KEY; an explicit field list is
// ordered by those fields. Statements that already order, or whose field
// list yields no clean identifiers, are returned unchanged.
//
// This is a separate pass over already-remediated text and is disabled by
// default; enable it with WithOrderByInjection or the
// remediate.inject_order_by config key.
func InjectOrderBy(sql string) string {
	return selectStmtRe.ReplaceAllStringFunc(sql, func(stmt string) string {
		if strings.Contains(strings.ToUpper(stmt), "ORDER BY") {
			return stmt
		}

		fields := strings.TrimSpace(selectStmtRe.FindStringSubmatch(stmt)[1])
		if fields == "*" {
			return strings.TrimRight(stmt, ".") + " ORDER BY PRIMARY KEY."
		}

		var cleaned []string
		for _, f := range strings.Fields(fields) {
			if isIdentifier(f) {
				cleaned = append(cleaned, f)
			}
		}
		if len(cleaned) == 0 {
			return stmt
		}
		return strings.TrimRight(stmt, ".") + " ORDER BY " + strings.Join(cleaned, " ") + "."
	})
}

// isIdentifier reports whether s is a plain identifier: a letter or
// underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
