// Package cargo provides the domain model for the cargo stowage core:
// positions, dimensions, items, containers, the append-only log, and the
// CargoSystem that owns all of it. Every other engine package (packing,
// placement, rearrangement, rtree, retrieval, search, waste) operates on
// these types through read-only views or the explicit mutators defined
// here; none of them hold their own copy of the inventory.
package cargo
