// Package matchbook implements the AFLUX filter-expression builder.
//
// A matchbook is the compact textual filter accepted by the AFLUX search
// endpoint, e.g.:
//
//	Egap(1.0*),Egap_type('insulator')
//
// The package models each searchable keyword as a stateful Keyword node.
// Callers narrow a node with comparison operations (AtLeast, AtMost,
// Contains, Equals), combine nodes with And/Or, optionally negate with Not,
// and finally render the node into the wire string.
//
// BUFFER MODEL:
//
// Each node holds two string buffers:
//
//   - cache: pending single comparisons, e.g. "Egap(1.0*)", not yet merged
//     into a composite. Length 0, 1 or (transiently, mid-combination) 2.
//   - state: settled composite fragments, fully parenthesized and ready for
//     emission. Length 0, 1 or (transiently) 2; exactly 1 after any
//     combination completes.
//
// Combining a node with ITSELF merges its own buffers (narrowing one field
// with two bounds). Combining two DIFFERENT nodes produces a brand-new
// composite node and leaves both operands untouched. The distinction is by
// pointer identity, not structural equality.
//
// ERROR MODEL:
//
// Builder methods are thin and chainable; the first failure is recorded on
// the node and subsequent methods become no-ops. Render surfaces the
// recorded error so a malformed expression can never silently reach the
// transport layer. Buffers are left exactly as they were before the failing
// operation.
//
// Nodes are not safe for concurrent use; a query is built on a single
// goroutine. Independent sessions (see internal/session) own independent
// node instances and never interfere.
package matchbook
