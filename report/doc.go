// Package report is the CSV result-emission external collaborator: it
// appends one row per benchmark invocation to a target file, creating it
// with a header if it does not already exist, and provides a log-only
// balance diagnostic that is not part of the CSV schema.
package report
