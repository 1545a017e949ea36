// Package exalge provides the key model of an exchange algebra, used to
// describe economic and accounting transactions.
//
// In an exchange algebra every value is tagged by a base: a key made of five
// slots, name, hat, unit, time and subject. Operations redistribute,
// reclassify or match values by working on these keys.
//
// The core functionalities include:
//   - Keys: KeyTuple is the immutable five slot tuple with its canonical key
//     ("Sales-NO_HAT-JPY-2020-Dept1"). Base is a concrete key, Pattern is a
//     key whose slots may be the Wildcard.
//   - Selection: Pattern.Matches and PatternSet select bases, Pattern.Translate
//     retargets them. PatternSet supports non-destructive set algebra.
//   - Distribution: RatioTable splits a value across destination patterns, either
//     proportionally to the ratios (normalized) or by plain multiplication,
//     with exact decimal arithmetic. Results are collected in an Algebra.
//   - Persistence: human-readable CSV files for pattern sets, ratio tables and
//     algebra elements, and XML for pattern sets. Malformed input is reported
//     as a *FormatError with a line and a column.
//
// Values are not safe for concurrent mutation. Patterns and bases are
// immutable, the set algebra methods and RatioTable.Clone return copies.
//
// This package serves as the foundational logic for the `exalge` command-line tool.
package exalge
