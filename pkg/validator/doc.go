// Package validator provides a small rule-based validation framework used as
// a precondition gate in front of every store operation.
//
// Rules are pure predicates paired with a field-scoped error. Apply runs a
// set of rules and collects every failure into ValidationErrors, which
// implements error and can be unwrapped with ExtractValidationErrors at the
// HTTP boundary to produce 400 responses.
package validator
