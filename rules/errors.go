package rules

import "errors"

// ErrEmptyRules indicates an AdjacencyRules table with no recorded
// adjacency at all, surfaced by resolvers as a non-retryable sanity
// check failure before a generation run begins.
var ErrEmptyRules = errors.New("rules: adjacency table is empty")
