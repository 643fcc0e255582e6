// Package kernel provides core domain primitives shared by every aggregate in
// the workshop domain model.
//
// The package currently contains a single primitive:
//   - UUID: a value object for entity identifiers with validation and
//     comparison capabilities
//
// Primitives in this package are immutable and thread-safe. Their zero values
// are invalid by design; construction goes through the provided factory
// functions so that identifiers loaded from persistence or external input are
// always validated.
package kernel
