// Package query assembles complete AFLUX request strings.
//
// A matchbook filter expression only narrows the search; a full request
// also names the properties to return and carries $-prefixed directives
// such as paging. Query joins the three groups with the conjunction token,
// filter first, then selected properties, then directives:
//
//	Egap(1.0*),Egap_type('insulator'),species,$paging(1,64)
//
// Rendering is the package's entire job. Nothing here talks to the remote
// endpoint or interprets what comes back.
package query
