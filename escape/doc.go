// Package escape implements percent-encoding and percent-decoding of URI components.
//
// [Quote] and [QuotePlus] encode every byte outside the always safe set (ASCII letters,
// digits and "_.-~") and outside a caller supplied safe set. Text is converted to bytes
// with a character encoding first, UTF-8 unless [Options.Encoding] names another one:
//
//	s, err := escape.Quote("abc def?", "", nil)
//	// s == "abc%20def%3F"
//
// [Unquote] and [UnquotePlus] reverse the process, decoding the unescaped bytes with a
// character encoding. Malformed escapes are never an error, they are kept verbatim.
// [UnquoteToBytes] stops at the bytes.
//
// Quoting uses per safe set lookup tables held in a bounded [Registry]. Package level
// functions share [DefaultRegistry], which [ClearCache] empties.
package escape

//go:generate go tool errtrace -w .
