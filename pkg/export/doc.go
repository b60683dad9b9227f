// Package export renders a CargoSystem to a stable external wire shape
// (JSON, camelCase field names) and to a top-down SVG diagram of a
// container's packed items.
package export
