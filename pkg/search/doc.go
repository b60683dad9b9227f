// Package search implements the stateless BM25 ranking engine over the
// current item catalog, with optional priority and spatial-radius
// filters layered on top.
package search
