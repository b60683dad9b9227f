// Package rearrangement implements the rearrangement engine: a GRASP
// (Greedy Randomized Adaptive Search Procedure) construction pass
// followed by Tabu Search improvement. It proposes a next stowage
// configuration for the existing inventory plus an incoming batch of new
// items, scored by a cost function that rewards zone-matching placements
// and penalizes the number of moves.
package rearrangement
