// Package csvimport turns delimiter-separated product and part listings into validated records.
package csvimport

import (
	"strings"

	"github.com/SscSPs/mobilepos_backend/internal/apperrors"
	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
)

const bom = "\uFEFF"

// DetectSeparator picks ';' when the header line has more semicolons than commas, ',' otherwise.
func DetectSeparator(firstLine string) rune {
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}
	return ','
}

// ParseLine splits one line on sep. A double quote toggles quoting, so separators inside
// quotes are kept; a doubled quote inside a quoted field yields one literal quote.
func ParseLine(line string, sep rune) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == sep && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	return append(fields, current.String())
}

// Parse reads the document into one RawRow per non-blank data line, keyed by normalized header.
func Parse(text string) ([]domain.RawRow, error) {
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return nil, apperrors.ErrEmptyInput
	}

	header := strings.TrimPrefix(lines[0], bom)
	sep := DetectSeparator(header)
	rawHeaders := ParseLine(header, sep)
	keys := make([]string, len(rawHeaders))
	for i, h := range rawHeaders {
		keys[i] = NormalizeHeader(h)
	}

	rows := make([]domain.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := ParseLine(line, sep)
		if allBlank(values) {
			continue
		}
		row := make(domain.RawRow, len(keys))
		for i, key := range keys {
			if i < len(values) {
				row[key] = strings.TrimSpace(values[i])
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParseAndValidate runs Parse followed by Validate for the given kind.
func ParseAndValidate(text string, kind domain.EntityKind) (domain.ParseResult, error) {
	rows, err := Parse(text)
	if err != nil {
		return domain.ParseResult{}, err
	}
	return Validate(rows, kind)
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(strings.TrimPrefix(line, bom)) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func allBlank(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
