package gfa

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// OptField is one typed key-value annotation from the tail of a record
// line. The tag name is exactly two characters; the type code lives on
// the value, so a field can never carry a code that disagrees with the
// variant actually stored.
type OptField struct {
	// Tag is the two-character tag name. Duplicate names within one
	// record are legal and preserved in input order.
	Tag string

	// Value is the decoded value variant
	Value TagValue
}

// String re-encodes the field as a TT:C:VALUE token.
func (f OptField) String() string {
	return fmt.Sprintf("%s:%c:%s", f.Tag, f.Value.Type(), f.Value)
}

// TagValue is the closed set of tag value variants, one per type code:
// CharValue (A), IntValue (i), FloatValue (f), StringValue (Z),
// JSONValue (J), HexValue (H), IntArrayValue and FloatArrayValue (B).
type TagValue interface {
	fmt.Stringer

	// Type returns the one-character type code of the variant
	Type() byte

	tagValue()
}

// CharValue is a single printable character (code A).
type CharValue byte

func (v CharValue) Type() byte     { return 'A' }
func (v CharValue) String() string { return string(rune(v)) }
func (v CharValue) tagValue()      {}

// IntValue is a signed integer (code i).
type IntValue int64

func (v IntValue) Type() byte     { return 'i' }
func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }
func (v IntValue) tagValue()      {}

// FloatValue is a single-precision float (code f).
type FloatValue float32

func (v FloatValue) Type() byte     { return 'f' }
func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v FloatValue) tagValue()      {}

// StringValue is a printable string (code Z).
type StringValue string

func (v StringValue) Type() byte     { return 'Z' }
func (v StringValue) String() string { return string(v) }
func (v StringValue) tagValue()      {}

// JSONValue is a JSON blob kept verbatim (code J). The text is not
// validated as JSON; round-tripping needs the exact input.
type JSONValue string

func (v JSONValue) Type() byte     { return 'J' }
func (v JSONValue) String() string { return string(v) }
func (v JSONValue) tagValue()      {}

// HexValue is a byte array decoded from base-16 text (code H).
// Re-encoding uses uppercase hex digits.
type HexValue []byte

func (v HexValue) Type() byte     { return 'H' }
func (v HexValue) String() string { return strings.ToUpper(hex.EncodeToString(v)) }
func (v HexValue) tagValue()      {}

// IntArrayValue is a numeric array with an integer element type
// (code B, sub-types c, C, s, S, i and I). The declared sub-type is
// kept so re-encoding reproduces the original descriptor.
type IntArrayValue struct {
	Subtype byte
	Values  []int64
}

func (v IntArrayValue) Type() byte { return 'B' }
func (v IntArrayValue) String() string {
	var sb strings.Builder
	sb.WriteByte(v.Subtype)
	for i, n := range v.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(n, 10))
	}
	return sb.String()
}
func (v IntArrayValue) tagValue() {}

// FloatArrayValue is a numeric array with float elements
// (code B, sub-type f).
type FloatArrayValue []float32

func (v FloatArrayValue) Type() byte { return 'B' }
func (v FloatArrayValue) String() string {
	var sb strings.Builder
	sb.WriteByte('f')
	for i, n := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(n), 'g', -1, 32))
	}
	return sb.String()
}
func (v FloatArrayValue) tagValue() {}

// parseOptField decodes one TT:C:VALUE token. The raw token is not
// retained once decoded; every variant can reproduce an equivalent
// textual form for round-tripping.
func parseOptField(token string) (OptField, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) < 3 || len(parts[0]) != 2 || len(parts[1]) != 1 {
		return OptField{}, fmt.Errorf("%w: %q", ErrMalformedTag, token)
	}
	name, code, value := parts[0], parts[1][0], parts[2]

	var v TagValue
	switch code {
	case 'A':
		if len(value) != 1 {
			return OptField{}, fmt.Errorf("%w: %q: A value must be one character", ErrMalformedTag, token)
		}
		v = CharValue(value[0])
	case 'i':
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return OptField{}, fmt.Errorf("%w: %q: %v", ErrMalformedTag, token, err)
		}
		v = IntValue(n)
	case 'f':
		n, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return OptField{}, fmt.Errorf("%w: %q: %v", ErrMalformedTag, token, err)
		}
		v = FloatValue(n)
	case 'Z':
		v = StringValue(value)
	case 'J':
		v = JSONValue(value)
	case 'H':
		b, err := hex.DecodeString(value)
		if err != nil {
			return OptField{}, fmt.Errorf("%w: %q: %v", ErrEncoding, token, err)
		}
		v = HexValue(b)
	case 'B':
		var err error
		if v, err = parseNumArray(value); err != nil {
			return OptField{}, fmt.Errorf("%w: %q", err, token)
		}
	default:
		return OptField{}, fmt.Errorf("%w: %q: unknown type code %q", ErrMalformedTag, token, code)
	}

	return OptField{Tag: name, Value: v}, nil
}

// parseNumArray decodes the value of a B tag: a one-character element
// type followed by comma-separated numbers of that type.
func parseNumArray(value string) (TagValue, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: missing array element type", ErrMalformedTag)
	}
	subtype, elems := value[0], strings.Split(value[1:], ",")

	// tolerate both "I1,2" and the comma-led "I,1,2" convention, and
	// allow a bare descriptor with no elements
	if len(elems) > 0 && elems[0] == "" {
		elems = elems[1:]
	}

	switch subtype {
	case 'c', 'C', 's', 'S', 'i', 'I':
		arr := IntArrayValue{Subtype: subtype, Values: make([]int64, 0, len(elems))}
		for _, e := range elems {
			n, err := strconv.ParseInt(e, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad array element %q", ErrEncoding, e)
			}
			arr.Values = append(arr.Values, n)
		}
		return arr, nil
	case 'f':
		arr := make(FloatArrayValue, 0, len(elems))
		for _, e := range elems {
			n, err := strconv.ParseFloat(e, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: bad array element %q", ErrEncoding, e)
			}
			arr = append(arr, float32(n))
		}
		return arr, nil
	}
	return nil, fmt.Errorf("%w: unknown array element type %q", ErrMalformedTag, subtype)
}

// parseOptFields decodes the trailing tag tokens of a record line in
// order. Duplicate tag names are preserved, mirroring permissive
// real-world inputs.
func parseOptFields(fields []string) ([]OptField, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	tags := make([]OptField, 0, len(fields))
	for _, f := range fields {
		t, err := parseOptField(f)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
