// Package tree models a single ASCII tree: an apex-up triangular crown with a
// one-column trunk below it.
//
// # Coordinates
//
// A [Tree]'s Position is the topmost crown cell in 0-based canvas
// coordinates, with x growing to the right and y growing downward. Crown row
// r (0-based) spans columns X-r through X+r; the trunk occupies column X for
// TrunkHeight rows directly below the crown.
//
// User input is 1-based; [FromInput] performs the shift.
//
//	t := tree.FromInput(3, 1, 3, 2) // Position (2,0)
//	t.IsValid()                     // true
//	t.RequiredCanvasSize()          // (5,5)
package tree
