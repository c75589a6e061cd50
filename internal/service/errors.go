// Package service holds the business layer between handlers and
// repositories: referential-integrity decisions, the genre duplicate
// flow and the fan-out reads that pages need.
package service

import "errors"

// ErrHasDependents is returned when a delete is refused because other
// records still reference the target.
var ErrHasDependents = errors.New("record has dependents")
