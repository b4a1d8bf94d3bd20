// Package rows renders one page of tabular rows for Bubble Tea applications.
//
// Only the rows inside the viewport are drawn, and the selection is kept
// visible while navigating with up/down, pgup/pgdn, home/end or j/k.
// Horizontal keys are left alone so an enclosing pagination control can
// claim them.
package rows
