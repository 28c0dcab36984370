// Package plan lays out the generated record for one union: resolved record
// name and type-parameter bound, the ordered slot list, the constructor
// parameter list (direct slots only), and the imports the schema forces on
// the emitted file.
package plan
