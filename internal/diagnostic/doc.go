// Package diagnostic provides structured warnings, errors, and
// recommendations for the hero-block engine.
//
// Key capabilities:
//   - Dropped-content warnings during variant migration
//   - Registry self-check errors
//   - Author-facing recommendations attached to compatibility verdicts
package diagnostic
