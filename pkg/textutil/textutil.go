package textutil

import "strings"

// quote characters removed from the ends of cells, in order
var quoteChars = []string{`"`, `'`}

// Clean removes any leading or trailing single or double quote
// characters from s. Quotes inside the string are left alone.
func Clean(s string) string {
	for _, c := range quoteChars {
		s = strings.Trim(s, c)
	}
	return s
}

// CleanCell trims surrounding whitespace and then quotes from a raw cell
func CleanCell(s string) string {
	return Clean(strings.TrimSpace(s))
}

// SplitCells splits a line on the given delimiter and trims whitespace
// from each resulting cell.
func SplitCells(line, delim string) []string {
	raw := strings.Split(line, delim)
	cells := make([]string, len(raw))
	for i, c := range raw {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// SplitGroupTokens splits a group cell on comma or semicolon so a sample
// can be listed under more than one group. Each token is whitespace and
// quote cleaned.
func SplitGroupTokens(cell string) []string {
	tokens := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';'
	})
	for i, tok := range tokens {
		tokens[i] = CleanCell(tok)
	}
	return tokens
}
