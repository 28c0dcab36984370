// Package schema holds the tagged-union schema model consumed by the engine:
// unions, variants, and customization directives, plus the directive merge
// rules and the YAML schema-file loader.
//
// Two front ends produce UnionSchema values: annotated Go source (package
// analyze) and YAML description files (LoadFile here). Both feed the same
// directive resolution.
package schema
