package fixture

import (
	"context"
	"fmt"

	"github.com/rshade/resultpager/internal/logging"
)

// Source serves recorded pages by cursor.
type Source struct {
	name      string
	pageLimit int
	columns   []string
	start     string
	pages     map[string]Page
}

// NewSource indexes a decoded fixture. Duplicate cursors are rejected.
func NewSource(f File) (*Source, error) {
	if len(f.Pages) == 0 {
		return nil, fmt.Errorf("%w: no pages", ErrInvalidFixture)
	}

	s := &Source{
		name:      f.Name,
		pageLimit: f.PageLimit,
		columns:   f.Columns,
		start:     f.Start,
		pages:     make(map[string]Page, len(f.Pages)),
	}

	for _, rp := range f.Pages {
		if _, dup := s.pages[rp.Cursor]; dup {
			return nil, fmt.Errorf("%w: duplicate page cursor %q", ErrInvalidFixture, rp.Cursor)
		}

		page, err := resolve(rp)
		if err != nil {
			return nil, err
		}
		s.pages[rp.Cursor] = page
	}

	if s.start == "" {
		s.start = f.Pages[0].Cursor
	}
	if _, ok := s.pages[s.start]; !ok {
		return nil, fmt.Errorf("%w: start cursor %q has no recorded page", ErrInvalidFixture, s.start)
	}

	return s, nil
}

// Parse decodes and indexes fixture data.
func Parse(data []byte) (*Source, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewSource(f)
}

// Load reads, decodes and indexes the fixture at path.
func Load(path string) (*Source, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := NewSource(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return s, nil
}

// Name returns the fixture name.
func (s *Source) Name() string { return s.name }

// PageLimit returns the page size the pages were recorded with.
func (s *Source) PageLimit() int { return s.pageLimit }

// Columns returns the column headers.
func (s *Source) Columns() []string { return s.columns }

// StartCursor returns the cursor of the first page.
func (s *Source) StartCursor() string { return s.start }

// Page returns the page recorded for cursor. An empty cursor selects the
// start page.
func (s *Source) Page(ctx context.Context, cursor string) (Page, error) {
	if cursor == "" {
		cursor = s.start
	}

	logger := logging.FromContext(ctx)

	page, ok := s.pages[cursor]
	if !ok {
		logger.Warn().Str("cursor", cursor).Str("fixture", s.name).Msg("no recorded page for cursor")
		return Page{}, fmt.Errorf("%w: cursor %q in fixture %q", ErrPageNotFound, cursor, s.name)
	}

	logger.Debug().
		Str("cursor", cursor).
		Str("previous", page.Previous).
		Str("next", page.Next).
		Int("rows", len(page.Rows)).
		Msg("replaying recorded page")

	return page, nil
}
