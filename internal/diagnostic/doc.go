// Package diagnostic provides structured errors, warnings, and infos for the
// variants generator, each carrying the source position of the offending
// declaration or directive.
//
// Key capabilities:
//   - Invalid variant shape errors (fatal for the whole pass)
//   - Rename conflict and unknown-directive notices
//   - TTY-aware colorized printing
package diagnostic
