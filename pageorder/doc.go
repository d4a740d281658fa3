// Package pageorder checks safety-manual page updates against ordering rules.
//
// What:
//
//   - Rule "X|Y" means page X must be printed before page Y whenever both
//     pages are part of the same update.
//   - Verifier indexes every rule under both of its pages and checks an
//     update against the rules of the pages it contains. Rules naming a
//     page that is absent from the update are ignored.
//   - Reorder produces a rule-respecting order for an update using a
//     depth-first topological sort over the rules among its pages.
//
// Complexity:
//
//   - Verify:  O(P·R·P) worst case, P = pages in update, R = rules per page.
//   - Reorder: O(P + E), E = rules among the update's pages.
//
// Errors:
//
//   - ErrMalformedRule, ErrMalformedUpdate, ErrMissingSection: bad input.
//   - ErrNoMiddlePage:   a valid update has an even number of pages.
//   - ErrCycleDetected:  the rules among an update's pages form a cycle.
//   - ErrDuplicatePage:  an update lists the same page twice.
package pageorder
