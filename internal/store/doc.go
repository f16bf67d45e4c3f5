// Package store provides the in-memory Record Store for the element database.
//
// The store is loaded once from a delimited text file with a header row:
//   - Header: the first non-blank line names the fields
//   - Records: every following line becomes one Record, aligned positionally
//   - Values: kept as text, no type coercion
//
// # Invariants
//
//   - Records keep source order and are never mutated after Load
//   - Every record carries exactly the header's field set, in header order
//   - No uniqueness is enforced on any field
//
// Load failures are reported as *IOError (file missing or unreadable) or
// *FormatError (no header, empty, invalid or duplicate header names,
// inconsistent column count). Header names must be valid XML element names
// (see ValidFieldName) because every exporter uses them verbatim.
package store
