// Package gen emits the record type, constructor, accessors, and derived
// methods for each planned union.
//
// Generation uses text/template + go/format for readable, deterministic Go
// code. Emitted per union:
//   - the generic record struct (one slot per variant)
//   - a constructor taking the direct slots only
//   - GetUnchecked / GetMutUnchecked (panic on absent keyed values)
//   - Get / GetMut (comma-ok)
//   - Set, and any derived methods (Clone, String, JSON)
//
// Check compares regenerated output against disk for CI drift detection.
package gen
