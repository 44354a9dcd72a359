// Package match ranks known names by similarity to an unknown one, so
// diagnostics about misspelled region kinds or projection categories can
// suggest what was meant.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the closest known name above a similarity floor
package match
