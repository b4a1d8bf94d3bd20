package browser

import "github.com/rshade/resultpager/internal/fixture"

// PageLoadedMsg carries a page returned by the source.
type PageLoadedMsg struct {
	Page fixture.Page
}

// PageErrorMsg reports a failed page lookup.
type PageErrorMsg struct {
	Cursor string
	Err    error
}
