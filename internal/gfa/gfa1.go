package gfa

// The GFA1 record set. It shares the header, tag, identifier and
// orientation machinery with GFA2 but keeps its own record and
// document types; the two formats coexist without conversion.

// Segment1 is a GFA1 S record: a named sequence.
type Segment1[N ID] struct {
	Name     N
	Sequence string
	Tags     []OptField
}

// Link is an L record: an overlap between the end of one oriented
// segment and the start of another.
type Link[N ID] struct {
	From       N
	FromOrient Orientation
	To         N
	ToOrient   Orientation
	Overlap    string
	Tags       []OptField
}

// Containment is a C record: one oriented segment contained in
// another at a position. Pos stays raw text; the core never validates
// coordinates numerically.
type Containment[N ID] struct {
	Container       N
	ContainerOrient Orientation
	Contained       N
	ContainedOrient Orientation
	Pos             string
	Overlap         string
	Tags            []OptField
}

// Path is a P record: a named walk through oriented segments. The
// comma-separated segment list and overlap list are kept opaque.
type Path[N ID] struct {
	Name         N
	SegmentNames string
	Overlaps     string
	Tags         []OptField
}

// GFA holds the records of one parsed GFA1 document, one list per
// record kind, each in source order.
type GFA[N ID] struct {
	Headers      []Header
	Segments     []Segment1[N]
	Links        []Link[N]
	Containments []Containment[N]
	Paths        []Path[N]
}
