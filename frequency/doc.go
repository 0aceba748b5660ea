// Package frequency implements FrequencyHints: a type_id (or pattern_id)
// -> positive weight mapping used for weighted random choice and for
// entropy computation (package collapse).
//
// Weights default to the observed occurrence count an analyzer (package
// analyze) or pattern extractor (package pattern) accumulates while
// scanning sample maps; callers may override any weight after the fact.
package frequency
