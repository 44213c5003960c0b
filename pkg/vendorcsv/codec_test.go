package vendorcsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"vendor-desk.backend/pkg/vendorcsv"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "plain", vendorcsv.Escape("plain"))
	assert.Equal(t, "", vendorcsv.Escape(""))
	assert.Equal(t, `"a,b"`, vendorcsv.Escape("a,b"))
	assert.Equal(t, `"say ""hi"""`, vendorcsv.Escape(`say "hi"`))
	assert.Equal(t, "\"line\nbreak\"", vendorcsv.Escape("line\nbreak"))
	// the full quoting property from the exchange contract
	assert.Equal(t, "\"a,b\"\"c\nd\"", vendorcsv.Escape("a,b\"c\nd"))
}

func TestJoinRow(t *testing.T) {
	assert.Equal(t, `x,"a,b",3`, vendorcsv.JoinRow([]string{"x", "a,b", "3"}))
}

func TestEncodeDocumentUsesCRLF(t *testing.T) {
	doc := vendorcsv.EncodeDocument([]string{"a,b", "1,2"})
	assert.Equal(t, "a,b\r\n1,2", doc)
}

func TestParseSimpleRows(t *testing.T) {
	rows := vendorcsv.Parse("a,b,c\r\n1,2,3\r\n")
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"1", "2", "3"}}, rows)
}

func TestParseHandlesLFAndCRLFAlike(t *testing.T) {
	lf := vendorcsv.Parse("a,b\n1,2\n")
	crlf := vendorcsv.Parse("a,b\r\n1,2\r\n")
	assert.Equal(t, lf, crlf)
}

func TestParseQuotedCells(t *testing.T) {
	rows := vendorcsv.Parse("\"a,b\"\"c\nd\",second\r\n")
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"a,b\"c\nd", "second"}, rows[0])
}

func TestParseRoundTripsEscapedField(t *testing.T) {
	field := "a,b\"c\nd"
	doc := vendorcsv.JoinRow([]string{field})
	rows := vendorcsv.Parse(doc)
	assert.Equal(t, [][]string{{field}}, rows)
}

func TestParseDropsTrailingBlankLines(t *testing.T) {
	one := vendorcsv.Parse("a,b\r\n1,2\r\n")
	many := vendorcsv.Parse("a,b\r\n1,2\r\n\r\n\r\n\n")
	assert.Equal(t, len(one), len(many))
	assert.Equal(t, one, many)
}

func TestParseUnterminatedQuoteFlushesAtEOF(t *testing.T) {
	rows := vendorcsv.Parse("a,\"unterminated")
	assert.Equal(t, [][]string{{"a", "unterminated"}}, rows)
}

func TestParseEmptyInput(t *testing.T) {
	assert.Empty(t, vendorcsv.Parse(""))
	assert.Empty(t, vendorcsv.Parse("\r\n\r\n"))
}

func TestRowsMapsHeaderToCells(t *testing.T) {
	recs := vendorcsv.Rows(" name , email \r\nAcme,acme@example.com\r\n")
	assert.Len(t, recs, 1)
	assert.Equal(t, "Acme", recs[0]["name"])
	assert.Equal(t, "acme@example.com", recs[0]["email"])
}

func TestRowsShortRowGetsEmptyTrailingCells(t *testing.T) {
	recs := vendorcsv.Rows("name,email,notes\r\nAcme,acme@example.com\r\n")
	assert.Len(t, recs, 1)
	assert.Equal(t, "", recs[0]["notes"])
}

func TestRowsSkipsSingleEmptyCellRows(t *testing.T) {
	recs := vendorcsv.Rows("name\r\nAcme\r\n,\r\n")
	// ",\r\n" yields two empty cells, which is a real (if empty) row;
	// only a single empty cell counts as a blank line
	assert.Len(t, recs, 2)
}

func TestRowsPreservesUnknownColumns(t *testing.T) {
	recs := vendorcsv.Rows("name,shoeSize\r\nAcme,44\r\n")
	assert.Equal(t, "44", recs[0]["shoeSize"])
}

func TestRowsBlankHeaderFallsBackToPosition(t *testing.T) {
	recs := vendorcsv.Rows("name,\r\nAcme,x\r\n")
	assert.Equal(t, "x", recs[0]["col1"])
}

func TestRowsHeaderOnly(t *testing.T) {
	assert.Empty(t, vendorcsv.Rows("name,email\r\n"))
	assert.Empty(t, vendorcsv.Rows(""))
}
