package gfa

import (
	"errors"
	"strings"
	"testing"
)

const smallGFA2 = "H\tVN:Z:2.0\n" +
	"S\t11\t5\tACCTT\n" +
	"S\t12\t6\tTCAAGG\n" +
	"E\t*\t11+\t12-\t1\t5$\t2\t6$\t4M\n" +
	"O\t14\t11+ 12- 13+\n"

func Test_Parse(t *testing.T) {
	doc, err := NewTextParser(true).Parse(smallGFA2)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	if len(doc.Headers) != 1 || len(doc.Segments) != 2 || len(doc.Fragments) != 0 ||
		len(doc.Edges) != 1 || len(doc.Gaps) != 0 || len(doc.GroupsO) != 1 || len(doc.GroupsU) != 0 {
		t.Fatalf("wrong record counts: %+v", doc)
	}

	if doc.Headers[0].Version != "VN:Z:2.0" {
		t.Errorf("header version = %q, want %q", doc.Headers[0].Version, "VN:Z:2.0")
	}

	e := doc.Edges[0]
	if e.ID != TextID("*") {
		t.Errorf("edge id = %q, want the * placeholder", e.ID)
	}
	if e.Sid1.ID != TextID("11") || e.Sid1.Orient != Forward {
		t.Errorf("edge sid1 = %v, want 11+", e.Sid1)
	}
	if e.Sid2.ID != TextID("12") || e.Sid2.Orient != Backward {
		t.Errorf("edge sid2 = %v, want 12-", e.Sid2)
	}
	if e.End1 != "5$" {
		t.Errorf("edge end1 = %q, the terminal marker must be kept verbatim", e.End1)
	}

	o := doc.GroupsO[0]
	if o.ID != TextID("14") {
		t.Errorf("group id = %q, want 14", o.ID)
	}
	if o.Refs != "11+ 12- 13+" {
		t.Errorf("group refs = %q, want the raw reference field", o.Refs)
	}
}

// text representation round trip: serialization reproduces the input
// and is idempotent from the second pass onward
func Test_Parse_roundTrip(t *testing.T) {
	p := NewTextParser(true)

	doc, err := p.Parse(smallGFA2)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	first := doc.String()
	if first != smallGFA2 {
		t.Fatalf("serialized document differs from input:\n%q\nwant\n%q", first, smallGFA2)
	}

	doc2, err := p.Parse(first)
	if err != nil {
		t.Fatalf("failed to re-parse serialized output: %v", err)
	}
	if doc2.String() != first {
		t.Error("serialization is not idempotent after one pass")
	}
}

func Test_Parse_errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
		line int
	}{
		{
			"unknown record type",
			"X\tfoo\n",
			ErrUnknownRecordType,
			1,
		},
		{
			"segment with too few fields",
			"H\tVN:Z:2.0\nS\t11\t5\n",
			nil, // checked via FieldCountError below
			2,
		},
		{
			"edge reference without orientation",
			"E\t*\t11\t12-\t1\t5\t2\t6\t4M\n",
			ErrInvalidOrientation,
			1,
		},
		{
			"malformed tag",
			"S\t11\t5\tACCTT\tbad\n",
			ErrMalformedTag,
			1,
		},
		{
			"bad hex tag",
			"S\t11\t5\tACCTT\tSH:H:ABC\n",
			ErrEncoding,
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTextParser(true).Parse(tt.in)
			if err == nil {
				t.Fatal("expected a parse error")
			}

			var le *LineError
			if !errors.As(err, &le) {
				t.Fatalf("error %v is not a LineError", err)
			}
			if le.Line != tt.line {
				t.Errorf("error line = %d, want %d", le.Line, tt.line)
			}
			if le.Text == "" {
				t.Error("LineError should carry the raw line text")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func Test_Parse_fieldCount(t *testing.T) {
	_, err := NewTextParser(true).Parse("S\t11\t5\n")

	var fc *FieldCountError
	if !errors.As(err, &fc) {
		t.Fatalf("error %v is not a FieldCountError", err)
	}
	if fc.Expected != 4 || fc.Found != 3 {
		t.Errorf("FieldCountError = {expected:%d found:%d}, want {expected:4 found:3}", fc.Expected, fc.Found)
	}

	// the exact required count succeeds
	if _, err := NewTextParser(true).Parse("S\t11\t5\tACCTT\n"); err != nil {
		t.Errorf("segment with exact field count failed: %v", err)
	}
}

func Test_Parse_gapVariance(t *testing.T) {
	p := NewTextParser(true)

	// variance present
	doc, err := p.Parse("G\tg1\t7+\t22+\t10\t5\n")
	if err != nil {
		t.Fatalf("failed to parse gap: %v", err)
	}
	if doc.Gaps[0].Variance != "5" {
		t.Errorf("gap variance = %q, want %q", doc.Gaps[0].Variance, "5")
	}

	// variance omitted entirely
	doc, err = p.Parse("G\tg1\t7+\t22+\t10\n")
	if err != nil {
		t.Fatalf("failed to parse gap without variance: %v", err)
	}
	if doc.Gaps[0].Variance != "" {
		t.Errorf("omitted variance should be empty, got %q", doc.Gaps[0].Variance)
	}

	// variance omitted but tags present
	doc, err = p.Parse("G\tg1\t7+\t22+\t10\tRC:i:3\n")
	if err != nil {
		t.Fatalf("failed to parse gap with early tags: %v", err)
	}
	if doc.Gaps[0].Variance != "" || len(doc.Gaps[0].Tags) != 1 {
		t.Errorf("tag-shaped fifth field should start the tag list: %+v", doc.Gaps[0])
	}
}

func Test_Parse_duplicateTags(t *testing.T) {
	doc, err := NewTextParser(true).Parse("S\t11\t5\tACCTT\tRC:i:1\tRC:i:2\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(doc.Segments[0].Tags) != 2 {
		t.Fatalf("duplicate tags dropped, got %d", len(doc.Segments[0].Tags))
	}
}

func Test_Parse_discardTags(t *testing.T) {
	doc, err := NewTextParser(false).Parse("S\t11\t5\tACCTT\tRC:i:1\n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(doc.Segments[0].Tags) != 0 {
		t.Errorf("tags should be discarded, got %v", doc.Segments[0].Tags)
	}
}

func Test_Parse_blankLinesAndWhitespace(t *testing.T) {
	doc, err := NewTextParser(true).Parse("S\t11\t5\tACCTT\r\n\n   \nS\t12\t6\tTCAAGG  \n")
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	if len(doc.Segments) != 2 {
		t.Errorf("got %d segments, want 2", len(doc.Segments))
	}
	if doc.Segments[1].Sequence != "TCAAGG" {
		t.Errorf("trailing whitespace kept: %q", doc.Segments[1].Sequence)
	}
}

// the numeric representation parses the same structure with folded
// identifiers; headers and tags come out identical to the text parse
func Test_Parse_numeric(t *testing.T) {
	in := "H\tVN:Z:2.0\nS\t11\t5\tACCTT\tRC:i:4\nE\t*\t11+\t12-\t1\t5$\t2\t6$\t4M\n"

	text, err := NewTextParser(true).Parse(in)
	if err != nil {
		t.Fatalf("text parse failed: %v", err)
	}
	num, err := NewNumericParser(true).Parse(in)
	if err != nil {
		t.Fatalf("numeric parse failed: %v", err)
	}

	if num.Headers[0].Version != text.Headers[0].Version {
		t.Error("headers must parse identically in both representations")
	}
	if num.Segments[0].Tags[0] != text.Segments[0].Tags[0] {
		t.Error("tags must parse identically in both representations")
	}

	// the folded id never equals the raw text for multi-byte names
	if num.Segments[0].ID.ToText() == string(text.Segments[0].ID) {
		t.Error("numeric and text identifiers should differ for multi-byte names")
	}
	if num.Segments[0].ID != parseNumericID("11") {
		t.Errorf("segment id folded to %d, want %d", num.Segments[0].ID, parseNumericID("11"))
	}

	// orientation is encoded apart from the folded base identifier
	if num.Edges[0].Sid2.ID != parseNumericID("12") || num.Edges[0].Sid2.Orient != Backward {
		t.Errorf("edge sid2 = %+v, want folded 12 with backward orientation", num.Edges[0].Sid2)
	}
}

func Test_Parse_fragment(t *testing.T) {
	doc, err := NewTextParser(true).Parse("F\t15\tr1-\t10\t10\t20\t20\t*\n")
	if err != nil {
		t.Fatalf("failed to parse fragment: %v", err)
	}

	f := doc.Fragments[0]
	if f.ExtRef.ID != TextID("r1") || f.ExtRef.Orient != Backward {
		t.Errorf("fragment external reference = %+v, want r1-", f.ExtRef)
	}
	if f.SBeg != "10" || f.Alignment != "*" {
		t.Errorf("fragment fields wrong: %+v", f)
	}
}

func Test_Parse_recordOrderPreserved(t *testing.T) {
	in := "S\tb\t1\tA\nS\ta\t1\tC\nS\tb\t1\tG\n"

	doc, err := NewTextParser(true).Parse(in)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}

	// no sorting, no deduplication
	ids := make([]string, 0, len(doc.Segments))
	for _, s := range doc.Segments {
		ids = append(ids, string(s.ID))
	}
	if strings.Join(ids, ",") != "b,a,b" {
		t.Errorf("segment order = %v, want insertion order with duplicates", ids)
	}
}
