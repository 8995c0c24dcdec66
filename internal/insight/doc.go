// Package insight merges block operations returned by the analysis engine
// into an insight-block collection.
//
// The merge is pure: it never mutates its input, applies operations in
// order, keeps ids unique and leaves the collection sorted by descending
// strength. The server and the terminal client both call [Apply], so the
// two sides always agree on the resulting collection.
package insight
