// Package diagnostic provides structured warnings, errors, and notes about
// how source run configurations were handled during conversion.
//
// Key capabilities:
//   - Records skipped for an unknown type, an empty name, or a duplicate name
//   - Output documents that could not be merged and were reset
//   - Fatal input problems, collected before they abort a run
package diagnostic
