// Package verify checks the sortedness postcondition both kernels must
// establish: every rank's local block is non-decreasing, and adjacent
// ranks' blocks do not overlap out of order.
package verify
