// Package queryfile loads declarative YAML query documents and compiles
// them into AFLUX requests.
//
// A document names the properties to select, an optional where-tree of
// nested all/any groups with comparison leaves, and optional paging and
// format directives:
//
//	description: small-gap insulators
//	select: [species, Egap]
//	where:
//	  all:
//	    - {keyword: Egap, op: at_least, value: 1.0}
//	    - {keyword: Egap, op: at_most, value: 3.0}
//	    - {keyword: Egap_type, op: equals, value: insulator}
//	paging: {page: 1, limit: 64}
//	format: json
//
// Compilation runs against a fresh session so that leaves narrowing the
// same keyword chain on the same node, exactly as a caller of the builder
// API would. Because nodes are stateful, all leaves for one keyword must be
// adjacent within a single group; a keyword that reappears elsewhere in the
// tree is rejected rather than silently producing a malformed expression.
package queryfile
