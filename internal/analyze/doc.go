// Package analyze provides the annotated-source front end: it loads Go
// packages with golang.org/x/tools/go/packages and extracts union schemas
// from sealed-interface declarations carrying //variants: directives.
//
// A schema root is an interface whose doc comment contains
// //variants:generate; its variants are the package-level named types that
// implement it, in declaration order.
package analyze
