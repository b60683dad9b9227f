// Package validation checks a CargoSystem snapshot (or a proposed
// planning-engine result) against the domain invariants: usage-count
// bounds, placement co-presence, AABB containment and non-overlap, and
// log ordering, plus standalone checks of a retrieval path's shape and a
// waste selection's capacity. It has no checks for the R-tree or search
// engines.
package validation
