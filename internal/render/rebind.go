package render

import "strings"

// Marker is the neutral positional placeholder emitted by the renderer.
const Marker = '?'

// Quote is a pair of identifier quote characters skipped by Rebind in
// addition to the standard ones. A doubled Close character is an escaped
// one, as in SQL Server's [a]]b].
type Quote struct {
	Open, Close byte
}

// Rebind rewrites every neutral placeholder in query with placeholder(n),
// numbering from 1. Markers inside single-quoted literals, double-quoted or
// backquoted identifiers, sections opened by one of quotes, line comments
// and block comments are left alone.
func Rebind(query string, placeholder func(n int) string, quotes ...Quote) string {
	if strings.IndexByte(query, Marker) < 0 {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch ch {
		case '\'', '"', '`':
			end := closing(query, i+1, ch)
			b.WriteString(query[i:end])
			i = end - 1
			continue
		case '-':
			if i+1 < len(query) && query[i+1] == '-' {
				end := strings.IndexByte(query[i:], '\n')
				if end < 0 {
					b.WriteString(query[i:])
					return b.String()
				}
				b.WriteString(query[i : i+end])
				i += end - 1
				continue
			}
		case '/':
			if i+1 < len(query) && query[i+1] == '*' {
				end := strings.Index(query[i+2:], "*/")
				if end < 0 {
					b.WriteString(query[i:])
					return b.String()
				}
				end += i + 4
				b.WriteString(query[i:end])
				i = end - 1
				continue
			}
		case Marker:
			n++
			b.WriteString(placeholder(n))
			continue
		}

		if q, ok := opens(ch, quotes); ok {
			end := closing(query, i+1, q.Close)
			b.WriteString(query[i:end])
			i = end - 1
			continue
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// Count returns the number of neutral placeholders Rebind would rewrite.
func Count(query string, quotes ...Quote) int {
	n := 0
	Rebind(query, func(i int) string {
		n = i
		return ""
	}, quotes...)
	return n
}

func opens(ch byte, quotes []Quote) (Quote, bool) {
	for _, q := range quotes {
		if q.Open == ch {
			return q, true
		}
	}
	return Quote{}, false
}

// closing returns the index just past the quote that closes a quoted
// section opened before start. A doubled quote is an escaped quote.
func closing(query string, start int, quote byte) int {
	for i := start; i < len(query); i++ {
		if query[i] != quote {
			continue
		}
		if i+1 < len(query) && query[i+1] == quote {
			i++
			continue
		}
		return i + 1
	}
	return len(query)
}
