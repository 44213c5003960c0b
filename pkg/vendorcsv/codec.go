// Package vendorcsv implements the CSV dialect used for vendor
// directory exchange: CRLF row joining, minimal quoting on encode and a
// lenient two-state scanner on decode. Malformed input (an unterminated
// quote at end of input) degrades gracefully instead of failing.
package vendorcsv

import (
	"fmt"
	"strings"
)

// Escape quotes a cell if and only if it contains a double quote, a
// comma or a newline. Internal double quotes are doubled.
func Escape(value string) string {
	if strings.ContainsAny(value, "\",\n") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// JoinRow escapes each cell and joins them with commas.
func JoinRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = Escape(cell)
	}
	return strings.Join(escaped, ",")
}

// EncodeDocument joins pre-built lines with CRLF. Lines are expected to
// be already comma-joined (see JoinRow); the first line is the header.
func EncodeDocument(lines []string) string {
	return strings.Join(lines, "\r\n")
}

// Parse scans raw CSV text character by character and returns the rows
// as cell slices. The scanner has exactly two states, quoted and
// unquoted:
//
//   - a quote outside quotes enters quoted mode; a doubled quote inside
//     quotes emits one literal quote; a lone quote inside quotes leaves
//     quoted mode
//   - a comma outside quotes ends the cell
//   - CR or LF outside quotes ends the row, unless the row would be
//     empty (trailing blank lines are dropped, not emitted)
//   - end of input flushes whatever is pending, so an unterminated
//     quoted cell still yields its accumulated text
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var cur []byte
	inQuotes := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				cur = append(cur, '"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			row = append(row, string(cur))
			cur = cur[:0]
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if len(cur) > 0 || len(row) > 0 {
				row = append(row, string(cur))
				rows = append(rows, row)
				row = nil
				cur = cur[:0]
			}
		default:
			cur = append(cur, ch)
		}
	}

	if len(cur) > 0 || len(row) > 0 {
		row = append(row, string(cur))
		rows = append(rows, row)
	}
	return rows
}

// Rows parses text and maps every data row onto the header row. Header
// cells are trimmed and become keys; data cells are trimmed on
// assignment. Rows shorter than the header yield empty strings for the
// missing trailing cells, and a row consisting of a single empty cell
// is skipped as a blank line. Headers that trim to nothing fall back to
// positional colN keys.
func Rows(text string) []map[string]string {
	parsed := Parse(text)
	if len(parsed) == 0 {
		return nil
	}

	headers := make([]string, len(parsed[0]))
	for i, h := range parsed[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []map[string]string
	for _, row := range parsed[1:] {
		if len(row) == 1 && row[0] == "" {
			continue
		}
		rec := make(map[string]string, len(headers))
		for c, key := range headers {
			if key == "" {
				key = fmt.Sprintf("col%d", c)
			}
			var val string
			if c < len(row) {
				val = strings.TrimSpace(row[c])
			}
			rec[key] = val
		}
		out = append(out, rec)
	}
	return out
}
