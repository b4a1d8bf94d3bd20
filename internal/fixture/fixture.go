package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rshade/resultpager/internal/linkheader"
)

// SupportedVersions is the fixture format constraint this build reads.
const SupportedVersions = "^1.0.0"

// Fixture errors.
var (
	ErrInvalidFixture     = errors.New("invalid fixture")
	ErrUnsupportedVersion = errors.New("unsupported fixture version")
	ErrPageNotFound       = errors.New("page not found")
)

// File is the on-disk fixture layout.
type File struct {
	Version   string         `yaml:"version"    validate:"required"`
	Name      string         `yaml:"name"       validate:"required"`
	PageLimit int            `yaml:"page_limit" validate:"gte=1"`
	Columns   []string       `yaml:"columns"    validate:"min=1,dive,required"`
	Start     string         `yaml:"start"`
	Pages     []RecordedPage `yaml:"pages"      validate:"min=1,dive"`
}

// RecordedPage is one captured response.
type RecordedPage struct {
	// Cursor is the cursor the page was requested with.
	Cursor string `yaml:"cursor" validate:"required"`

	// Link is the raw Link header. When set it supersedes Previous and Next.
	Link string `yaml:"link"`

	Previous string     `yaml:"previous"`
	Next     string     `yaml:"next"`
	Rows     [][]string `yaml:"rows"`
}

// Page is a resolved page ready for display.
type Page struct {
	Cursor   string
	Previous string
	Next     string
	Rows     [][]string
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode parses and validates fixture data without indexing it.
func Decode(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("%w: decoding yaml: %w", ErrInvalidFixture, err)
	}

	if err := checkVersion(f.Version); err != nil {
		return File{}, err
	}

	if err := validate.Struct(f); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	for i, p := range f.Pages {
		for j, row := range p.Rows {
			if len(row) != len(f.Columns) {
				return File{}, fmt.Errorf("%w: page %d (%s) row %d has %d cells, want %d",
					ErrInvalidFixture, i, p.Cursor, j, len(row), len(f.Columns))
			}
		}
	}

	return f, nil
}

func checkVersion(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidFixture)
	}

	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, raw, err)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// resolve turns a recorded page into a Page, reading cursors from the Link
// header when one was captured.
func resolve(p RecordedPage) (Page, error) {
	page := Page{
		Cursor:   p.Cursor,
		Previous: p.Previous,
		Next:     p.Next,
		Rows:     p.Rows,
	}

	if p.Link == "" {
		return page, nil
	}

	previous, next, err := linkheader.Cursors(p.Link)
	if err != nil {
		return Page{}, fmt.Errorf("%w: page %s: %w", ErrInvalidFixture, p.Cursor, err)
	}
	page.Previous = previous
	page.Next = next

	return page, nil
}

// ReadFile loads and decodes the fixture at path.
func ReadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	f, err := Decode(data)
	if err != nil {
		return File{}, fmt.Errorf("fixture %s: %w", path, err)
	}
	return f, nil
}
