// Package asm implements the macro-expansion assembler for the URM system.
//
// A URM (unlimited register machine) program manipulates non-negative
// integer registers with increment, saturating decrement, and conditional
// jump-on-nonzero. Programs are written against a macro layer: user-defined
// textual templates plus a fixed built-in prologue of common idioms
// (zeroing, copying, arithmetic), expanded recursively into primitive
// instructions.
//
// Expansion is hygienic: labels and temporary registers generated inside a
// macro body are allocated from freshness counters seeded by a pre-scan of
// the raw source, so they can never collide with user-written names or with
// the names generated by any other expansion.
package asm
