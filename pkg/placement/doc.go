// Package placement implements the hybrid placement engine: a genetic
// algorithm whose population is half seeded by the Guillotine packer
// (pkg/packing) and half by uniform-random corners, evolved by
// tournament selection, one-point crossover, and per-gene mutation.
//
// PlanPlacement is deliberately heuristic. The returned assignment is the
// fittest individual found within the generation budget; it is not
// guaranteed globally valid (items may still overlap or exceed their
// container) and callers must validate before applying it, exactly as
// the fitness function's penalty terms describe.
package placement
