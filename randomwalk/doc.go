// Package randomwalk is the non-collapse alternative generator: a
// drunkard's-walk corridor carver for callers who want a quick organic
// blob (a cave, a river) without building an analyzer or rule table.
// It shares grid.Position, grid.Size, and the injected-RNG convention
// with the rest of this module but does not touch any constraint
// machinery.
package randomwalk
