// Package rtree implements a variable-fanout R-tree over 3D axis-aligned
// bounding boxes, used by the retrieval planner to index a container's
// occupied cells for spatial queries.
package rtree
