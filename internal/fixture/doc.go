// Package fixture replays recorded list pages from a YAML file.
//
// A fixture captures, for each cursor, the rows an endpoint returned and the
// previous/next cursors it advertised, either as explicit fields or as the
// raw Link header. Source looks pages up by cursor; it never computes
// offsets itself.
package fixture
