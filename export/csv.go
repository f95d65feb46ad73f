package export

import "strings"

// Column projects one cell out of a row: a header label plus a value
// extractor. The extractor is responsible for rendering absent values as "".
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Escape wraps a field in double quotes when it contains a comma, quote, CR
// or LF, doubling any embedded quotes. Everything else passes through bare.
func Escape(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// CSV renders a header line followed by one newline-terminated line per row.
func CSV[T any](rows []T, cols []Column[T]) string {
	var b strings.Builder

	for i, c := range cols {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(Escape(c.Header))
	}
	b.WriteByte('\n')

	for _, row := range rows {
		for i, c := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(Escape(c.Value(row)))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Headers returns the header labels of cols, in order.
func Headers[T any](cols []Column[T]) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Header
	}
	return out
}

// Rows stringifies every row through the column extractors.
func Rows[T any](rows []T, cols []Column[T]) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = c.Value(row)
		}
		out[i] = cells
	}
	return out
}
