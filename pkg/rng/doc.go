// Package rng provides deterministic random number generation for the
// cargo stowage engines that draw random numbers (placement and
// rearrangement).
//
// # Derivation
//
// Each call site asks for an RNG scoped to one engine:
//
//	seed = H(masterSeed, engine, configHash)
//
// H is SHA-256 over the big-endian master seed, the engine name
// ("placement", "rearrangement", ...), and the hash of the whole engine
// configuration (cargo.Config.Hash).
// Two engines sharing a master seed draw from independent sequences, and
// editing a config reshuffles every sequence derived from it.
//
// # Usage
//
//	cfg := cargo.DefaultConfig()
//	r := rng.NewRNG(masterSeed, "rearrangement", cfg.Hash())
//	container := candidates[r.Intn(len(candidates))]
//	if r.Float64() < cfg.Rearrangement.Alpha {
//	    // accept this candidate
//	}
//
// # Thread safety
//
// An RNG is not safe for concurrent use. Derive one per engine call and
// don't share it across goroutines.
package rng
