// Package gfa parses and re-serializes Graphical Fragment Assembly
// text, both the GFA2 record set (headers, segments, fragments, edges,
// gaps, ordered and unordered groups) and the older GFA1 record set
// (segments, links, containments, paths). Records are built once during
// parsing and never mutated; a document owns its records exclusively
// and is fully assembled before it is returned.
//
// Record identifiers are generic over an ID representation: TextID
// keeps names verbatim, NumericID folds them into integers. Parsers
// are constructed for one representation and either keep or discard
// the optional tags trailing each record.
package gfa

import "strings"

// Header is an H record: an optional version token plus tags.
type Header struct {
	// Version is the raw VN:Z: token when the line carries one, ex "VN:Z:2.0"
	Version string

	Tags []OptField
}

// Segment is an S record: a sequence node of the assembly graph.
// Len is the declared length as written; it is not validated against
// the actual sequence length.
type Segment[N ID] struct {
	ID       N
	Len      string
	Sequence string
	Tags     []OptField
}

// Fragment is an F record: an external alignment to a segment.
// The four coordinates stay raw text; SEnd and FEnd may carry a
// trailing $ marking the end of the segment.
type Fragment[N ID] struct {
	ID        N
	ExtRef    Ref[N]
	SBeg      string
	SEnd      string
	FBeg      string
	FEnd      string
	Alignment string
	Tags      []OptField
}

// Edge is an E record: an alignment between two oriented segments.
// The identifier may be the * placeholder. Begin/end coordinates stay
// raw text and keep any trailing $ terminal-position marker verbatim.
type Edge[N ID] struct {
	ID        N
	Sid1      Ref[N]
	Sid2      Ref[N]
	Beg1      string
	End1      string
	Beg2      string
	End2      string
	Alignment string
	Tags      []OptField
}

// Gap is a G record: an estimated distance between two oriented
// segments. Variance is empty when the optional field was omitted.
type Gap[N ID] struct {
	ID       N
	Sid1     Ref[N]
	Sid2     Ref[N]
	Distance string
	Variance string
	Tags     []OptField
}

// GroupO is an O record: an ordered, sequence-significant list of
// oriented references. The reference list is kept as one opaque
// space-separated field.
type GroupO[N ID] struct {
	ID   N
	Refs string
	Tags []OptField
}

// Members splits the reference field into its individual oriented
// reference tokens.
func (g GroupO[N]) Members() []string {
	return strings.Split(g.Refs, " ")
}

// GroupU is a U record: an unordered set of references, without
// orientations. The reference list is kept as one opaque
// space-separated field.
type GroupU[N ID] struct {
	ID   N
	Refs string
	Tags []OptField
}

// Members splits the reference field into its individual reference tokens.
func (g GroupU[N]) Members() []string {
	return strings.Split(g.Refs, " ")
}

// GFA2 holds the records of one parsed GFA2 document, one list per
// record kind, each in source order. No sorting or deduplication takes
// place; it is a container for parse results, not a graph.
type GFA2[N ID] struct {
	Headers   []Header
	Segments  []Segment[N]
	Fragments []Fragment[N]
	Edges     []Edge[N]
	Gaps      []Gap[N]
	GroupsO   []GroupO[N]
	GroupsU   []GroupU[N]
}
