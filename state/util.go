// Package state provides the scene description consumed by the tracer.
package state

import "strings"

// This constant is the offset applied when nudging a point off a surface.
// It keeps a secondary ray (or a distance comparison) from re-detecting the
// surface the point already lies on due to floating-point rounding.
const hitBias float64 = 0.0001

// relativePath takes the path to some file (original), and prepends that path
// (excluding the file at the end of the path) to another (other) path.
func relativePath(original, other string) string {
	return strings.Join([]string{strings.TrimRightFunc(original, func(ch rune) bool {return ch != '/' && ch != '\\'}), strings.TrimLeft(other, "/\\")}, "")
}
