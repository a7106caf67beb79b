package sexpr

import "strings"

// Canonical renders s in the stable text form used for approval-key
// comparison and persistence: UTF-8, LF line endings, the head symbol
// on its own line followed by one child per line indented two spaces
// per nesting level. A symbol child is quoted only when its text
// would otherwise be ambiguous to the parser (it contains whitespace,
// a parenthesis or a double quote); list children are never quoted, since their
// parentheses are structural. Two trees that are equal in structure
// and content always render to the same string, regardless of how
// they were built.
func Canonical(s Sexp) string {
	var b strings.Builder
	writeCanonical(&b, s, 0)
	return b.String()
}

func writeCanonical(b *strings.Builder, s Sexp, depth int) {
	list, ok := s.(*List)
	if !ok {
		b.WriteString(quoteIfNeeded(s.String()))
		return
	}
	if list.Len() == 0 {
		b.WriteString("()")
		return
	}
	b.WriteString("(")
	b.WriteString(quoteIfNeeded(list.Get(0).String()))
	indent := strings.Repeat("  ", depth+1)
	for i := 1; i < list.Len(); i++ {
		b.WriteString("\n")
		b.WriteString(indent)
		writeCanonical(b, list.Get(i), depth+1)
	}
	if list.Len() > 1 {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("  ", depth))
	}
	b.WriteString(")")
}

func needsQuoting(s string) bool {
	return strings.ContainsAny(s, " \t\n\r()\"")
}

func quoteIfNeeded(s string) string {
	if !needsQuoting(s) {
		return s
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
	return `"` + escaped + `"`
}
