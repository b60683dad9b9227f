// Package stowage exposes the embeddable library surface: a Coordinator
// owning one CargoSystem and wiring the five planning engines and the
// invariant validator behind a single set of methods.
package stowage
