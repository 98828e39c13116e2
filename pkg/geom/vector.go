// Package geom holds the integer coordinate type shared by the canvas stages.
package geom

import "fmt"

// Vector2 is a 2D integer coordinate or size. It is a plain value: copy and
// compare it directly.
type Vector2 struct {
	X int `json:"x" toml:"x"`
	Y int `json:"y" toml:"y"`
}

// Vec is shorthand for Vector2{X: x, Y: y}.
func Vec(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vector2) Vector2 {
	return Vector2{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

// Empty reports whether v has no area when read as a size.
func (v Vector2) Empty() bool {
	return v.X <= 0 || v.Y <= 0
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}
