package query

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokQuotedIdent
	tokString
	tokNumber
	tokPunct
)

type token struct {
	kind tokenKind
	text string
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && strings.EqualFold(t.text, text)
}

// Validate checks that raw is a single read-only SELECT over fichas_raw and
// returns it trimmed, without the optional trailing semicolon.
// Failures wrap ErrInvalidQuery.
func Validate(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", invalid("empty query")
	}
	if !hasSelectPrefix(q) {
		return "", invalid("query must start with SELECT")
	}

	toks, err := lex(q)
	if err != nil {
		return "", err
	}

	for i, t := range toks {
		if t.is(tokPunct, ";") && i != len(toks)-1 {
			return "", invalid("multiple statements")
		}
	}
	if n := len(toks); n > 0 && toks[n-1].is(tokPunct, ";") {
		toks = toks[:n-1]
		q = strings.TrimSpace(strings.TrimSuffix(q, ";"))
	}

	for i, t := range toks {
		switch t.kind {
		case tokWord:
		case tokQuotedIdent:
			// "pg_sleep"(30) still calls the function.
			if i+1 >= len(toks) || !toks[i+1].is(tokPunct, "(") {
				continue
			}
		default:
			continue
		}
		if _, denied := deniedWords[strings.ToUpper(t.text)]; denied {
			return "", invalid(fmt.Sprintf("forbidden keyword %s", strings.ToUpper(t.text)))
		}
	}

	if err := checkRelations(toks); err != nil {
		return "", err
	}

	return q, nil
}

// StripCodeFence removes a surrounding markdown code fence (```sql ... ```).
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		first := strings.TrimSpace(text[:nl])
		if first == "" || isWord(first) {
			text = text[nl+1:]
		}
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, reason)
}

func hasSelectPrefix(q string) bool {
	if len(q) < 7 || !strings.EqualFold(q[:6], "SELECT") {
		return false
	}
	switch q[6] {
	case ' ', '\t', '\r', '\n', '(', '*':
		return true
	}
	return false
}

func lex(q string) ([]token, error) {
	var toks []token

	for i := 0; i < len(q); {
		c := q[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++

		case c == '\'' || c == '"' || c == '`':
			end, text, ok := readQuoted(q, i, c)
			if !ok {
				return nil, invalid("unterminated literal")
			}
			kind := tokQuotedIdent
			if c == '\'' {
				kind = tokString
			}
			toks = append(toks, token{kind: kind, text: text})
			i = end

		case c == '-' && i+1 < len(q) && q[i+1] == '-',
			c == '/' && i+1 < len(q) && q[i+1] == '*':
			return nil, invalid("comments are not allowed")

		case isIdentStart(c):
			j := i + 1
			for j < len(q) && isIdentPart(q[j]) {
				j++
			}
			toks = append(toks, token{kind: tokWord, text: q[i:j]})
			i = j

		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(q) && (q[j] >= '0' && q[j] <= '9' || q[j] == '.') {
				j++
			}
			toks = append(toks, token{kind: tokNumber, text: q[i:j]})
			i = j

		default:
			toks = append(toks, token{kind: tokPunct, text: string(c)})
			i++
		}
	}

	return toks, nil
}

// readQuoted reads a literal opened by quote at q[start]; a doubled quote is an escape.
func readQuoted(q string, start int, quote byte) (int, string, bool) {
	var sb strings.Builder
	for j := start + 1; j < len(q); j++ {
		if q[j] != quote {
			sb.WriteByte(q[j])
			continue
		}
		if j+1 < len(q) && q[j+1] == quote {
			sb.WriteByte(quote)
			j++
			continue
		}
		return j + 1, sb.String(), true
	}
	return 0, "", false
}

type parenKind int

const (
	parenGroup parenKind = iota
	parenCall
)

// checkRelations requires every relation named after FROM or JOIN to be the catalog table.
// FROM inside a function call (EXTRACT(YEAR FROM x)) is not a relation, but a
// parenthesis opening a SELECT or WITH is a subquery wherever it appears.
func checkRelations(toks []token) error {
	var stack []parenKind

	for i, t := range toks {
		switch {
		case t.is(tokPunct, "("):
			kind := parenGroup
			if i > 0 && toks[i-1].kind == tokWord && !opensSubquery(toks, i+1) {
				if _, opener := subqueryOpeners[strings.ToUpper(toks[i-1].text)]; !opener {
					kind = parenCall
				}
			}
			stack = append(stack, kind)

		case t.is(tokPunct, ")"):
			if len(stack) == 0 {
				return invalid("unbalanced parentheses")
			}
			stack = stack[:len(stack)-1]

		case t.is(tokWord, "FROM") || t.is(tokWord, "JOIN"):
			if len(stack) > 0 && stack[len(stack)-1] == parenCall {
				continue
			}
			if i > 0 && toks[i-1].is(tokWord, "DISTINCT") {
				continue
			}
			if err := checkRelationList(toks, i+1); err != nil {
				return err
			}
		}
	}

	if len(stack) != 0 {
		return invalid("unbalanced parentheses")
	}
	return nil
}

func opensSubquery(toks []token, i int) bool {
	return i < len(toks) && (toks[i].is(tokWord, "SELECT") || toks[i].is(tokWord, "WITH"))
}

func checkRelationList(toks []token, i int) error {
	for {
		if i >= len(toks) {
			return invalid("missing relation")
		}
		if toks[i].is(tokPunct, "(") {
			return nil
		}

		next, err := checkRelation(toks, i)
		if err != nil {
			return err
		}
		i = skipAlias(toks, next)

		if i < len(toks) && toks[i].is(tokPunct, ",") {
			i++
			continue
		}
		return nil
	}
}

func checkRelation(toks []token, i int) (int, error) {
	name := toks[i]
	if name.kind != tokWord && name.kind != tokQuotedIdent {
		return 0, invalid("missing relation")
	}
	next := i + 1

	if next+1 < len(toks) && toks[next].is(tokPunct, ".") {
		schema := strings.ToLower(name.text)
		if schema != "public" && schema != "main" {
			return 0, invalid(fmt.Sprintf("relation %s.%s is not allowed", name.text, toks[next+1].text))
		}
		name = toks[next+1]
		next += 2
	}

	ok := name.text == Table
	if name.kind == tokWord {
		ok = strings.EqualFold(name.text, Table)
	}
	if !ok {
		return 0, invalid(fmt.Sprintf("relation %s is not allowed", name.text))
	}
	return next, nil
}

var clauseWords = map[string]struct{}{
	"WHERE": {}, "GROUP": {}, "ORDER": {}, "LIMIT": {}, "OFFSET": {}, "HAVING": {},
	"JOIN": {}, "LEFT": {}, "RIGHT": {}, "INNER": {}, "OUTER": {}, "FULL": {},
	"CROSS": {}, "NATURAL": {}, "ON": {}, "USING": {}, "UNION": {}, "INTERSECT": {},
	"EXCEPT": {}, "WINDOW": {}, "FETCH": {}, "FOR": {},
}

func skipAlias(toks []token, i int) int {
	if i >= len(toks) {
		return i
	}
	if toks[i].is(tokWord, "AS") {
		return i + 2
	}
	if toks[i].kind == tokQuotedIdent {
		return i + 1
	}
	if toks[i].kind == tokWord {
		if _, clause := clauseWords[strings.ToUpper(toks[i].text)]; !clause {
			return i + 1
		}
	}
	return i
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9' || c == '$'
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isIdentPart(s[i]) {
			return false
		}
	}
	return s != ""
}
