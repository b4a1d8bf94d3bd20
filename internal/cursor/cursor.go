package cursor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// separator splits the fields of a cursor string.
const separator = ":"

// minFields is the number of fields a cursor must carry (value and offset).
const minFields = 2

// maxFields is the number of fields a cursor may carry (value, offset, is_prev).
const maxFields = 3

// ErrMalformed is returned when a cursor string cannot be parsed.
var ErrMalformed = errors.New("malformed cursor")

// Cursor is a parsed pagination cursor.
type Cursor struct {
	// Value is the opaque first field.
	Value string

	// Offset is the integer second field.
	Offset int

	// IsPrev reports whether the cursor points backwards. Only set when the
	// third field is present.
	IsPrev bool

	// hasPrevField records whether the third field was present so String
	// can round-trip two-field cursors.
	hasPrevField bool
}

// Parse parses a cursor string of the form "<value>:<offset>[:<is_prev>]".
func Parse(s string) (Cursor, error) {
	if s == "" {
		return Cursor{}, fmt.Errorf("%w: empty", ErrMalformed)
	}

	parts := strings.Split(s, separator)
	if len(parts) < minFields {
		return Cursor{}, fmt.Errorf("%w: %q has no offset field", ErrMalformed, s)
	}
	if len(parts) > maxFields {
		return Cursor{}, fmt.Errorf("%w: %q has %d fields", ErrMalformed, s, len(parts))
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: offset %q in %q is not an integer", ErrMalformed, parts[1], s)
	}

	c := Cursor{Value: parts[0], Offset: offset}

	if len(parts) == maxFields {
		switch parts[2] {
		case "0":
			c.IsPrev = false
		case "1":
			c.IsPrev = true
		default:
			return Cursor{}, fmt.Errorf("%w: is_prev %q in %q must be 0 or 1", ErrMalformed, parts[2], s)
		}
		c.hasPrevField = true
	}

	return c, nil
}

// EndOffset returns the offset field of the cursor string s. Unlike Parse it
// only looks at the second field, so any trailing fields are ignored.
func EndOffset(s string) (int, error) {
	parts := strings.Split(s, separator)
	if len(parts) < minFields {
		return 0, fmt.Errorf("%w: %q has no offset field", ErrMalformed, s)
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: offset %q in %q is not an integer", ErrMalformed, parts[1], s)
	}
	return offset, nil
}

// String formats the cursor back into its wire form.
func (c Cursor) String() string {
	s := c.Value + separator + strconv.Itoa(c.Offset)
	if !c.hasPrevField {
		return s
	}
	if c.IsPrev {
		return s + separator + "1"
	}
	return s + separator + "0"
}

// New builds a three-field cursor.
func New(value string, offset int, isPrev bool) Cursor {
	return Cursor{Value: value, Offset: offset, IsPrev: isPrev, hasPrevField: true}
}
