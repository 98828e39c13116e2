// Package input reads tree descriptions from a line-oriented text stream.
//
// Each non-empty line holds four whitespace-separated integers:
//
//	x y crownHeight trunkHeight
//
// with 1-based x and y. Reading stops at the first empty line or at end of
// stream. Malformed lines and trees that would not fit on a non-negative
// canvas are reported through [Options.OnReject] and skipped; they never end
// the loop.
//
// The result carries the accepted trees in input order together with the
// smallest canvas that contains all of them.
package input
