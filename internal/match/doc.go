// Package match ranks declaration names by similarity to a query. It backs
// the "did you mean" suggestions of the inspect command.
//
// Key functions:
//   - Normalize: folds a C++ name to comparable lowercase text
//   - Levenshtein: edit distance between two strings
//   - Rank: the closest names to a query, best first
package match
