// Package match provides Levenshtein distance calculation and candidate
// ranking for near-miss member lookups.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - RankMethods: ranks a class's methods by similarity to a wanted signature
package match
