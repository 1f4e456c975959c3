package gfa

import (
	"fmt"
	"strings"
)

// ParserV1 parses GFA1 text into a GFA document. Same contract as the
// GFA2 Parser: whole text in, whole document or a LineError out.
type ParserV1[N ID] struct {
	codec[N]
}

// NewTextParserV1 returns a GFA1 parser that keeps identifiers as raw text.
func NewTextParserV1(keepTags bool) *ParserV1[TextID] {
	return &ParserV1[TextID]{codec[TextID]{parseID: parseTextID, keepTags: keepTags}}
}

// NewNumericParserV1 returns a GFA1 parser that folds identifiers into
// NumericIDs.
func NewNumericParserV1(keepTags bool) *ParserV1[NumericID] {
	return &ParserV1[NumericID]{codec[NumericID]{parseID: parseNumericID, keepTags: keepTags}}
}

// Parse consumes one complete GFA1 text body and returns the assembled
// document.
func (p *ParserV1[N]) Parse(text string) (*GFA[N], error) {
	doc := &GFA[N]{}
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

func (p *ParserV1[N]) parseLine(line string, doc *GFA[N]) error {
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
	case "L":
		l, err := p.parseLink(fields)
		if err != nil {
			return err
		}
		doc.Links = append(doc.Links, l)
	case "C":
		c, err := p.parseContainment(fields)
		if err != nil {
			return err
		}
		doc.Containments = append(doc.Containments, c)
	case "P":
		pa, err := p.parsePath(fields)
		if err != nil {
			return err
		}
		doc.Paths = append(doc.Paths, pa)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRecordType, fields[0])
	}
	return nil
}

func (p *ParserV1[N]) parseSegment(fields []string) (Segment1[N], error) {
	if len(fields) < 3 {
		return Segment1[N]{}, &FieldCountError{Kind: 'S', Expected: 3, Found: len(fields)}
	}
	s := Segment1[N]{Name: p.parseID(fields[1]), Sequence: fields[2]}
	var err error
	s.Tags, err = p.tags(fields[3:])
	return s, err
}

func (p *ParserV1[N]) parseLink(fields []string) (Link[N], error) {
	if len(fields) < 6 {
		return Link[N]{}, &FieldCountError{Kind: 'L', Expected: 6, Found: len(fields)}
	}
	fromOrient, err := parseOrientationField(fields[2])
	if err != nil {
		return Link[N]{}, err
	}
	toOrient, err := parseOrientationField(fields[4])
	if err != nil {
		return Link[N]{}, err
	}
	l := Link[N]{
		From:       p.parseID(fields[1]),
		FromOrient: fromOrient,
		To:         p.parseID(fields[3]),
		ToOrient:   toOrient,
		Overlap:    fields[5],
	}
	l.Tags, err = p.tags(fields[6:])
	return l, err
}

func (p *ParserV1[N]) parseContainment(fields []string) (Containment[N], error) {
	if len(fields) < 7 {
		return Containment[N]{}, &FieldCountError{Kind: 'C', Expected: 7, Found: len(fields)}
	}
	containerOrient, err := parseOrientationField(fields[2])
	if err != nil {
		return Containment[N]{}, err
	}
	containedOrient, err := parseOrientationField(fields[4])
	if err != nil {
		return Containment[N]{}, err
	}
	c := Containment[N]{
		Container:       p.parseID(fields[1]),
		ContainerOrient: containerOrient,
		Contained:       p.parseID(fields[3]),
		ContainedOrient: containedOrient,
		Pos:             fields[5],
		Overlap:         fields[6],
	}
	c.Tags, err = p.tags(fields[7:])
	return c, err
}

func (p *ParserV1[N]) parsePath(fields []string) (Path[N], error) {
	if len(fields) < 4 {
		return Path[N]{}, &FieldCountError{Kind: 'P', Expected: 4, Found: len(fields)}
	}
	pa := Path[N]{
		Name:         p.parseID(fields[1]),
		SegmentNames: fields[2],
		Overlaps:     fields[3],
	}
	var err error
	pa.Tags, err = p.tags(fields[4:])
	return pa, err
}

// parseOrientationField converts a GFA1 orientation field, which is a
// whole tab-delimited field of its own rather than a suffix.
func parseOrientationField(field string) (Orientation, error) {
	if field == "" {
		return Forward, ErrMissingOrientation
	}
	if len(field) > 1 {
		return Forward, fmt.Errorf("%w: %q", ErrInvalidOrientation, field)
	}
	o, err := parseOrientation(field[0])
	if err != nil {
		return Forward, fmt.Errorf("%w: %q", err, field)
	}
	return o, nil
}
