// Package pagination provides a previous/next pagination control for Bubble
// Tea applications.
//
// The control renders two buttons and, when a next cursor is present, a
// "Results X - Y" label describing the range currently on screen. It holds
// no state of its own beyond its Props: parents build a fresh Model whenever
// the page changes and route key and mouse messages to it. Activating an
// enabled button calls the matching PageFunc once and hands its command back
// to the runtime.
package pagination
