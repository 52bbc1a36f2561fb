package tabular

import "strings"

// Encode serializes a header and rows back into delimited text. Fields
// containing the delimiter, a quote, or a newline are wrapped in double
// quotes with embedded quotes doubled. Tables with purely alphanumeric
// fields round-trip through Parse exactly.
func Encode(headers []string, rows []Row, delim rune) string {
	var b strings.Builder
	writeLine := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteRune(delim)
			}
			b.WriteString(encodeField(f, delim))
		}
		b.WriteByte('\n')
	}

	writeLine(headers)
	for _, row := range rows {
		fields := make([]string, len(headers))
		for i, h := range headers {
			fields[i] = row[h]
		}
		writeLine(fields)
	}
	return b.String()
}

func encodeField(f string, delim rune) string {
	if strings.ContainsRune(f, delim) || strings.ContainsAny(f, "\"\n\r") {
		return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return f
}
