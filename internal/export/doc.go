// Package export serializes the full Record Store into alternate text
// formats.
//
// Four exporters are registered, in menu order:
//   - html: a table, one header row and one row per record, unescaped
//   - json: an indented array of objects with keys in field order
//   - xml: one <Element> container per record, one leaf per field
//   - markdown: a heading and one bullet per record (Element, Symbol,
//     AtomicNumber only)
//
// html, json and xml are field-agnostic. markdown reads three named fields
// and renders absent ones as empty text. Only json and xml round-trip.
//
// Exporters never mutate their input and fail only when writing fails.
package export
