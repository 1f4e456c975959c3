package gfa

import (
	"fmt"
	"strings"
)

// codec is the per-parse configuration shared by the GFA2 and GFA1
// parsers: the identifier conversion pinned at construction and
// whether trailing tags are kept. With tags discarded, tag tokens are
// skipped without validation.
type codec[N ID] struct {
	parseID  func(string) N
	keepTags bool
}

// tags parses the trailing tag tokens of a record, or drops them.
func (c codec[N]) tags(fields []string) ([]OptField, error) {
	if !c.keepTags {
		return nil, nil
	}
	return parseOptFields(fields)
}

// parseRef converts a reference field with a mandatory orientation
// suffix, ex "11+".
func (c codec[N]) parseRef(field string) (Ref[N], error) {
	base, o, err := splitRef(field)
	if err != nil {
		return Ref[N]{}, fmt.Errorf("%w: %q", err, field)
	}
	return Ref[N]{ID: c.parseID(base), Orient: o}, nil
}

// parseHeader handles an H record for either format. A leading VN:Z:
// token becomes the version; everything else is ordinary tags.
func (c codec[N]) parseHeader(fields []string) (Header, error) {
	h := Header{}
	rest := fields[1:]
	if len(rest) > 0 && strings.HasPrefix(rest[0], "VN:Z:") {
		h.Version = rest[0]
		rest = rest[1:]
	}
	var err error
	h.Tags, err = c.tags(rest)
	return h, err
}

// Parser parses GFA2 text into a GFA2 document. It is stateless across
// calls; separate goroutines may share one parser or construct their
// own, each Parse call owns its document exclusively until it returns.
type Parser[N ID] struct {
	codec[N]
}

// NewTextParser returns a GFA2 parser that keeps identifiers as raw
// text. Only this representation round-trips through serialization.
func NewTextParser(keepTags bool) *Parser[TextID] {
	return &Parser[TextID]{codec[TextID]{parseID: parseTextID, keepTags: keepTags}}
}

// NewNumericParser returns a GFA2 parser that folds identifiers into
// NumericIDs. See NumericID for the fold's limitations.
func NewNumericParser(keepTags bool) *Parser[NumericID] {
	return &Parser[NumericID]{codec[NumericID]{parseID: parseNumericID, keepTags: keepTags}}
}

// Parse consumes one complete GFA2 text body and returns the assembled
// document. Blank lines are skipped; trailing whitespace is ignored.
// The first malformed line aborts the parse with a LineError carrying
// its 1-based line number and raw text.
func (p *Parser[N]) Parse(text string) (*GFA2[N], error) {
	doc := &GFA2[N]{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		if err := p.parseLine(line, doc); err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
	}
	return doc, nil
}

// parseLine dispatches one line by its leading field and appends the
// parsed record to the document.
func (p *Parser[N]) parseLine(line string, doc *GFA2[N]) error {
	fields := strings.Split(line, "\t")

	switch fields[0] {
	case "H":
		h, err := p.parseHeader(fields)
		if err != nil {
			return err
		}
		doc.Headers = append(doc.Headers, h)
	case "S":
		s, err := p.parseSegment(fields)
		if err != nil {
			return err
		}
		doc.Segments = append(doc.Segments, s)
	case "F":
		f, err := p.parseFragment(fields)
		if err != nil {
			return err
		}
		doc.Fragments = append(doc.Fragments, f)
	case "E":
		e, err := p.parseEdge(fields)
		if err != nil {
			return err
		}
		doc.Edges = append(doc.Edges, e)
	case "G":
		g, err := p.parseGap(fields)
		if err != nil {
			return err
		}
		doc.Gaps = append(doc.Gaps, g)
	case "O":
		o, err := p.parseGroupO(fields)
		if err != nil {
			return err
		}
		doc.GroupsO = append(doc.GroupsO, o)
	case "U":
		u, err := p.parseGroupU(fields)
		if err != nil {
			return err
		}
		doc.GroupsU = append(doc.GroupsU, u)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecordType, fields[0])
	}
	return nil
}

func (p *Parser[N]) parseSegment(fields []string) (Segment[N], error) {
	if len(fields) < 4 {
		return Segment[N]{}, &FieldCountError{Kind: 'S', Expected: 4, Found: len(fields)}
	}
	s := Segment[N]{
		ID:       p.parseID(fields[1]),
		Len:      fields[2],
		Sequence: fields[3],
	}
	var err error
	s.Tags, err = p.tags(fields[4:])
	return s, err
}

func (p *Parser[N]) parseFragment(fields []string) (Fragment[N], error) {
	if len(fields) < 8 {
		return Fragment[N]{}, &FieldCountError{Kind: 'F', Expected: 8, Found: len(fields)}
	}
	ext, err := p.parseRef(fields[2])
	if err != nil {
		return Fragment[N]{}, err
	}
	f := Fragment[N]{
		ID:        p.parseID(fields[1]),
		ExtRef:    ext,
		SBeg:      fields[3],
		SEnd:      fields[4],
		FBeg:      fields[5],
		FEnd:      fields[6],
		Alignment: fields[7],
	}
	f.Tags, err = p.tags(fields[8:])
	return f, err
}

func (p *Parser[N]) parseEdge(fields []string) (Edge[N], error) {
	if len(fields) < 9 {
		return Edge[N]{}, &FieldCountError{Kind: 'E', Expected: 9, Found: len(fields)}
	}
	sid1, err := p.parseRef(fields[2])
	if err != nil {
		return Edge[N]{}, err
	}
	sid2, err := p.parseRef(fields[3])
	if err != nil {
		return Edge[N]{}, err
	}
	e := Edge[N]{
		ID:        p.parseID(fields[1]),
		Sid1:      sid1,
		Sid2:      sid2,
		Beg1:      fields[4],
		End1:      fields[5],
		Beg2:      fields[6],
		End2:      fields[7],
		Alignment: fields[8],
	}
	e.Tags, err = p.tags(fields[9:])
	return e, err
}

func (p *Parser[N]) parseGap(fields []string) (Gap[N], error) {
	if len(fields) < 5 {
		return Gap[N]{}, &FieldCountError{Kind: 'G', Expected: 5, Found: len(fields)}
	}
	sid1, err := p.parseRef(fields[2])
	if err != nil {
		return Gap[N]{}, err
	}
	sid2, err := p.parseRef(fields[3])
	if err != nil {
		return Gap[N]{}, err
	}
	g := Gap[N]{
		ID:       p.parseID(fields[1]),
		Sid1:     sid1,
		Sid2:     sid2,
		Distance: fields[4],
	}

	// the variance field is optional; a tag-shaped fifth field means
	// it was omitted and the tags start early
	rest := fields[5:]
	if len(rest) > 0 && !isTagToken(rest[0]) {
		g.Variance = rest[0]
		rest = rest[1:]
	}
	g.Tags, err = p.tags(rest)
	return g, err
}

func (p *Parser[N]) parseGroupO(fields []string) (GroupO[N], error) {
	if len(fields) < 3 {
		return GroupO[N]{}, &FieldCountError{Kind: 'O', Expected: 3, Found: len(fields)}
	}
	o := GroupO[N]{ID: p.parseID(fields[1]), Refs: fields[2]}
	var err error
	o.Tags, err = p.tags(fields[3:])
	return o, err
}

func (p *Parser[N]) parseGroupU(fields []string) (GroupU[N], error) {
	if len(fields) < 3 {
		return GroupU[N]{}, &FieldCountError{Kind: 'U', Expected: 3, Found: len(fields)}
	}
	u := GroupU[N]{ID: p.parseID(fields[1]), Refs: fields[2]}
	var err error
	u.Tags, err = p.tags(fields[3:])
	return u, err
}

// isTagToken reports whether a field has the TT:C: shape of a tag token.
func isTagToken(field string) bool {
	return len(field) >= 5 && field[2] == ':' && field[4] == ':'
}
