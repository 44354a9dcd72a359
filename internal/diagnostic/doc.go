// Package diagnostic provides structured warnings and infos for conditions
// the synthesis pipeline recovers from.
//
// Key capabilities:
//   - Malformed declaration reports with source line
//   - Missing default values for the Init generator
//   - Duplicate attribute names on one declaration
//   - Pruned regions whose generator kind is no longer registered
//   - Regions repaired after a missing end marker
package diagnostic
