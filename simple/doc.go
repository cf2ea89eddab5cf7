// Package simple reduces a tokenized Sieve script to the simplified
// filter model the editing UI works with.
//
// A script is representable when it consists of Require commands covering
// the extensions this module depends on, at most one annotation comment,
// and exactly one If command whose tests and actions stay inside a closed
// vocabulary. FromTree walks the tokenized tree once and either returns a
// complete Filter or fails; there are no partial results.
//
// # Annotation comments
//
// The tree alone cannot always recover the comparator the user picked:
// "begins with" and "matches" both lower to a Sieve :matches test. The
// tokenizer therefore keeps a doc comment ahead of the If command that
// records the original intent:
//
//	/**
//	 * @type and
//	 * @comparator contains
//	 * @comparator !starts
//	 */
//
// One @comparator line per condition, positionally aligned with the tests
// of the If command. A leading "!" declares negation. @type declares the
// boolean operator joining the tests ("and" or "or"). The comment is an
// independent witness of the tree: whenever the two disagree, on an
// operator, a comparator, or a negation, conversion fails rather than
// guessing.
//
// # Errors
//
// Failures are one of two kinds. UnsupportedRepresentationError means the
// script is plausible Sieve but outside the supported subset; callers
// should fall back to a raw script view. InvalidInputError means the tree
// violates the structural contract or names vocabulary this package does
// not know. Both are terminal for the whole conversion.
package simple
