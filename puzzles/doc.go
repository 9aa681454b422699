// Package puzzles holds small deterministic exercises written as seqs pipelines:
// Pythagorean triples, digit-unique squares, a Caesar shift, Fibonacci numbers,
// resistors in parallel, binary to decimal and snake_case to CamelCase.
//
// The functions are independent of each other.
package puzzles
