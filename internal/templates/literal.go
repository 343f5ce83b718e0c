package templates

import "strings"

// Escape doubles single quotes so s can sit inside a SQL string literal.
func Escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// Literal returns s as a quoted SQL string literal.
func Literal(s string) string {
	return "'" + Escape(s) + "'"
}

// LiteralOrNull returns Literal(s), or the SQL keyword null when s is empty.
func LiteralOrNull(s string) string {
	if s == "" {
		return "null"
	}
	return Literal(s)
}

// LiteralOr returns Literal(s), or def verbatim when s is empty.
func LiteralOr(s, def string) string {
	if s == "" {
		return def
	}
	return Literal(s)
}

var quoteDelimiters = []struct{ open, close string }{
	{"~", "~"}, {"#", "#"}, {"|", "|"}, {"^", "^"}, {"!", "!"}, {"[", "]"}, {"{", "}"}, {"<", ">"},
}

// QuotedText returns s as an Oracle alternative-quoting literal, q'~...~',
// so JSON can be embedded without escaping. The first delimiter whose
// closing sequence does not occur in s is used; if every delimiter clashes
// the text falls back to a regular literal.
func QuotedText(s string) string {
	for _, d := range quoteDelimiters {
		if !strings.Contains(s, d.close+"'") {
			return "q'" + d.open + s + d.close + "'"
		}
	}
	return Literal(s)
}

// InList renders values as a comma separated list of upper-cased SQL
// literals, suitable for an IN clause.
func InList(values []string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, Literal(strings.ToUpper(v)))
	}
	return strings.Join(quoted, ",")
}
