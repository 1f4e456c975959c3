package gfa

import "strings"

// Serialization back to canonical tab-delimited text. Every record
// implements fmt.Stringer, emitting its fixed fields followed by its
// tags; documents emit each kind's records in stored order, one line
// per record, \n terminated. For the text representation, parsing a
// serialized document and serializing again is byte-identical.

// joinRecord renders one line from its fields and tags.
func joinRecord(fields []string, tags []OptField) string {
	for _, t := range tags {
		fields = append(fields, t.String())
	}
	return strings.Join(fields, "\t")
}

func (h Header) String() string {
	fields := []string{"H"}
	if h.Version != "" {
		fields = append(fields, h.Version)
	}
	return joinRecord(fields, h.Tags)
}

func (s Segment[N]) String() string {
	return joinRecord([]string{"S", s.ID.ToText(), s.Len, s.Sequence}, s.Tags)
}

func (f Fragment[N]) String() string {
	return joinRecord([]string{
		"F", f.ID.ToText(), f.ExtRef.String(),
		f.SBeg, f.SEnd, f.FBeg, f.FEnd, f.Alignment,
	}, f.Tags)
}

func (e Edge[N]) String() string {
	return joinRecord([]string{
		"E", e.ID.ToText(), e.Sid1.String(), e.Sid2.String(),
		e.Beg1, e.End1, e.Beg2, e.End2, e.Alignment,
	}, e.Tags)
}

func (g Gap[N]) String() string {
	fields := []string{"G", g.ID.ToText(), g.Sid1.String(), g.Sid2.String(), g.Distance}
	if g.Variance != "" {
		fields = append(fields, g.Variance)
	}
	return joinRecord(fields, g.Tags)
}

func (g GroupO[N]) String() string {
	return joinRecord([]string{"O", g.ID.ToText(), g.Refs}, g.Tags)
}

func (g GroupU[N]) String() string {
	return joinRecord([]string{"U", g.ID.ToText(), g.Refs}, g.Tags)
}

// String renders the whole GFA2 document: headers, then segments,
// fragments, edges, gaps, ordered groups and unordered groups.
func (d *GFA2[N]) String() string {
	var sb strings.Builder
	for _, h := range d.Headers {
		writeLine(&sb, h.String())
	}
	for _, s := range d.Segments {
		writeLine(&sb, s.String())
	}
	for _, f := range d.Fragments {
		writeLine(&sb, f.String())
	}
	for _, e := range d.Edges {
		writeLine(&sb, e.String())
	}
	for _, g := range d.Gaps {
		writeLine(&sb, g.String())
	}
	for _, o := range d.GroupsO {
		writeLine(&sb, o.String())
	}
	for _, u := range d.GroupsU {
		writeLine(&sb, u.String())
	}
	return sb.String()
}

func (s Segment1[N]) String() string {
	return joinRecord([]string{"S", s.Name.ToText(), s.Sequence}, s.Tags)
}

func (l Link[N]) String() string {
	return joinRecord([]string{
		"L", l.From.ToText(), l.FromOrient.String(),
		l.To.ToText(), l.ToOrient.String(), l.Overlap,
	}, l.Tags)
}

func (c Containment[N]) String() string {
	return joinRecord([]string{
		"C", c.Container.ToText(), c.ContainerOrient.String(),
		c.Contained.ToText(), c.ContainedOrient.String(), c.Pos, c.Overlap,
	}, c.Tags)
}

func (p Path[N]) String() string {
	return joinRecord([]string{"P", p.Name.ToText(), p.SegmentNames, p.Overlaps}, p.Tags)
}

// String renders the whole GFA1 document: headers, then segments,
// links, containments and paths.
func (d *GFA[N]) String() string {
	var sb strings.Builder
	for _, h := range d.Headers {
		writeLine(&sb, h.String())
	}
	for _, s := range d.Segments {
		writeLine(&sb, s.String())
	}
	for _, l := range d.Links {
		writeLine(&sb, l.String())
	}
	for _, c := range d.Containments {
		writeLine(&sb, c.String())
	}
	for _, p := range d.Paths {
		writeLine(&sb, p.String())
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, line string) {
	sb.WriteString(line)
	sb.WriteByte('\n')
}
