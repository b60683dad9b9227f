// Package packing implements the Guillotine 3D bin packer: a stateful,
// single-threaded free-cuboid list that greedily places boxes by minimum
// waste and splits the remainder into up to seven axis-aligned residual
// cuboids. It is used both standalone and as the heuristic half of the
// placement engine's population seeding (pkg/placement).
package packing
