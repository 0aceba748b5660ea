// Package imageio is the image-I/O collaborator: it loads sample maps
// from PNG tile sheets (one stable type id per distinct tileSize x
// tileSize pixel block) and renders a resolved grid back to an image
// for inspection. Nothing in the core packages imports imageio; the
// dependency runs one way.
package imageio
