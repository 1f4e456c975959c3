package gfa

import "strconv"

// ID is the stored form of a record identifier or reference name.
// TextID keeps the raw field text. NumericID folds the field's bytes
// into a single integer for cheap equality and hashing.
type ID interface {
	comparable

	// ToText renders the identifier for serialization. Only TextID is
	// guaranteed to reproduce the original field.
	ToText() string
}

// TextID is an identifier kept verbatim as it appeared in the source line.
type TextID string

// ToText returns the identifier unchanged.
func (t TextID) ToText() string { return string(t) }

// NumericID is an identifier folded from the field's ASCII bytes:
// starting from zero, each byte multiplies the accumulator by ten and
// adds the byte's code. The fold is one-directional and lossy. Distinct
// names can collide ("a" and some longer names share a value) and
// ToText cannot recover the original text. Use it for fast comparisons
// against other folded names, never for exact matches against source text.
type NumericID uint64

// ToText returns the decimal form of the folded value.
func (n NumericID) ToText() string { return strconv.FormatUint(uint64(n), 10) }

// parseTextID is the identity conversion for the text representation.
func parseTextID(field string) TextID { return TextID(field) }

// parseNumericID folds an identifier field into a NumericID.
// Accumulation wraps on uint64 overflow for very long names.
func parseNumericID(field string) NumericID {
	var acc uint64
	for i := 0; i < len(field); i++ {
		acc = acc*10 + uint64(field[i])
	}
	return NumericID(acc)
}

// Orientation is the strand direction of an oriented reference.
type Orientation uint8

const (
	// Forward is the + strand, encoded as 0
	Forward Orientation = 0

	// Backward is the - strand, encoded as 1
	Backward Orientation = 1
)

// String returns "+" or "-".
func (o Orientation) String() string {
	if o == Backward {
		return "-"
	}
	return "+"
}

// parseOrientation converts a trailing orientation character.
func parseOrientation(c byte) (Orientation, error) {
	switch c {
	case '+':
		return Forward, nil
	case '-':
		return Backward, nil
	}
	return Forward, ErrInvalidOrientation
}

// splitRef separates a reference field like "11+" into its base
// identifier and orientation. The orientation suffix is mandatory.
func splitRef(field string) (base string, o Orientation, err error) {
	if field == "" {
		return "", Forward, ErrMissingOrientation
	}
	if o, err = parseOrientation(field[len(field)-1]); err != nil {
		return "", Forward, err
	}
	return field[:len(field)-1], o, nil
}

// Ref is an oriented reference to a segment or group. The base
// identifier is converted independently of its orientation suffix.
type Ref[N ID] struct {
	ID     N
	Orient Orientation
}

// String re-attaches the orientation suffix to the base identifier.
func (r Ref[N]) String() string {
	return r.ID.ToText() + r.Orient.String()
}
