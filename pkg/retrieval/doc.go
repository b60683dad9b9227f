// Package retrieval implements the retrieval planner: an A* search over
// the integer grid of a container, routing from the door (origin) to an
// item's corner while avoiding the cells occupied by sibling items.
package retrieval
