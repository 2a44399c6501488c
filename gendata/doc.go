// Package gendata is the data-generation external collaborator: it fills a
// rank's local block with pseudo-random keys, deterministically seeded so
// that repeated runs with the same rank and problem size reproduce the
// same input.
package gendata
