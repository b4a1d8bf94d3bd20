package pagination

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidProps is returned by New when Props fail validation: a missing
// callback, a PageLimit below 1 or a negative DataLength. A zero PageLimit
// is rejected rather than rendered.
var ErrInvalidProps = errors.New("invalid pagination props")

// PageFunc is invoked, with no arguments, when a navigation button is
// activated. The returned command is passed to the Bubble Tea runtime as is.
type PageFunc func() tea.Cmd

// Props are the inputs of the pagination control. An empty cursor string
// marks the cursor as absent.
type Props struct {
	// GetNextPage runs when the enabled "next" button is activated.
	GetNextPage PageFunc `validate:"required"`

	// GetPreviousPage runs when the enabled "previous" button is activated.
	GetPreviousPage PageFunc `validate:"required"`

	// Previous is the cursor of the previous page. Empty disables "previous".
	Previous string

	// Next is the cursor of the next page, "<value>:<offset>[:<is_prev>]".
	// Empty disables "next" and hides the range label.
	Next string

	// PageLimit is the page size requested from the source.
	PageLimit int `validate:"gte=1"`

	// DataLength is the number of items on the current page.
	DataLength int `validate:"gte=0"`
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every field that violates its constraint.
func (p Props) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidProps, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidProps, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
