// Package diagnostic provides structured errors, warnings and infos recorded
// while grafting a donor class into a recipient.
//
// Key capabilities:
//   - Non-fatal conflicts (e.g. an interface the recipient already implements)
//   - Explanations of fusion decisions (original kept or pruned)
//   - Suggestions for near-miss method signatures
package diagnostic
