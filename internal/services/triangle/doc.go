// Package triangle implements the Triangle Loop activity: right and
// inverted star triangles of a chosen height behind a small sub-menu.
package triangle
