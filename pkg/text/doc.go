// Package text implements the character-level string katas.
//
// The central shape is a context-free substitution: every rune of the input
// is looked up in a fixed table and either replaced by its mapping or passed
// through unchanged. [EscapeHTML] and [ComplementDNA] are both built on
// [MapRunes]. The remaining katas (vowel removal, camelCase splitting,
// word reversal, name abbreviation, phone number formatting, ...) share the
// same single-pass, builder-based style.
//
// # Guarantees
//
//   - Every function processes its input exactly once and preserves order.
//   - [EscapeHTML] never shrinks its input; [ComplementDNA] preserves length
//     and is its own inverse on strings over {A, T, C, G}.
//   - Functions that need at least one element return an EMPTY_INPUT error
//     from pkg/errors rather than a default value.
//
// All functions are stateless and safe for concurrent use.
package text
