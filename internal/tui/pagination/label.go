package pagination

import (
	"fmt"

	"github.com/rshade/resultpager/internal/cursor"
)

// LabelNoResults is shown when the current page is empty, and in place of a
// range that cannot be computed from a malformed cursor.
const LabelNoResults = "0 Results"

// RangeLabel computes the results label for a page whose next cursor is
// next. The end of the range is the offset carried by next. A page shorter
// than pageLimit ends at from+dataLength.
//
// A malformed next cursor yields LabelNoResults together with an error
// wrapping cursor.ErrMalformed.
func RangeLabel(next string, pageLimit, dataLength int) (string, error) {
	if dataLength == 0 {
		return LabelNoResults, nil
	}

	endRange, err := cursor.EndOffset(next)
	if err != nil {
		return LabelNoResults, fmt.Errorf("range label: %w", err)
	}

	from := endRange - pageLimit + 1
	to := endRange
	if dataLength < pageLimit {
		to = from + dataLength
	}

	return fmt.Sprintf("Results %d - %d", from, to), nil
}
