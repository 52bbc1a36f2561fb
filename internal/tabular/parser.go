// Package tabular converts raw delimited text into ordered row records.
// Parsing is best-effort: malformed rows never produce an error, they
// degrade to a naive split or to empty fields.
package tabular

import "strings"

// Row maps a column name to its raw string value for one source line.
type Row map[string]string

// Table is the result of parsing one delimited text document.
type Table struct {
	// Headers preserves the source column order.
	Headers []string
	Rows    []Row
	// FallbackRows counts lines where quote-aware splitting did not yield
	// exactly one field per header and the naive delimiter split was used
	// instead. The fallback can corrupt fields containing unescaped
	// delimiters; callers should surface this count.
	FallbackRows int
}

// ParseCSV parses comma-delimited text with a header line.
func ParseCSV(text string) Table {
	return Parse(text, ',')
}

// Parse parses delimited text with a header line. The first line defines
// column names (trimmed, surrounding quotes stripped). Subsequent non-blank
// lines are split quote-aware: a field wrapped in double quotes may contain
// the delimiter, and a doubled quote decodes to a literal quote. Rows
// shorter than the header are padded with empty strings; blank lines are
// skipped.
func Parse(text string, delim rune) Table {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Table{}
	}

	headers := make([]string, 0)
	for _, h := range strings.Split(lines[0], string(delim)) {
		h = strings.TrimSpace(h)
		h = strings.TrimPrefix(h, `"`)
		h = strings.TrimSuffix(h, `"`)
		headers = append(headers, h)
	}

	t := Table{Headers: headers}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitQuoted(line, delim)
		if len(fields) != len(headers) {
			// Degraded mode: the line does not line up with the header
			// under quote-aware rules. Fall back to a naive split rather
			// than dropping the row.
			t.FallbackRows++
			fields = strings.Split(line, string(delim))
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// splitLines splits on both \r\n and \n.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// splitQuoted splits one line on delim, honoring double-quote wrapping. A
// quote only opens a quoted section at the start of a field; inside a
// quoted section a doubled quote decodes to one literal quote character.
// Every field value is trimmed of surrounding whitespace.
func splitQuoted(line string, delim rune) []string {
	var fields []string
	var b strings.Builder
	inQuotes := false
	atFieldStart := true

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case inQuotes:
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					b.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				b.WriteRune(c)
			}
		case c == '"' && atFieldStart:
			inQuotes = true
			atFieldStart = false
		case c == delim:
			fields = append(fields, strings.TrimSpace(b.String()))
			b.Reset()
			atFieldStart = true
		case c == ' ' || c == '\t':
			// Leading whitespace does not close the window for an opening
			// quote; it is trimmed away regardless.
			b.WriteRune(c)
		default:
			b.WriteRune(c)
			atFieldStart = false
		}
	}
	fields = append(fields, strings.TrimSpace(b.String()))
	return fields
}
