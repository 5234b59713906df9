// Package strval defines the string value carried through the matrix
// engine: a tagged container holding either a raw byte sequence or a
// tokenized sequence of 64-bit word ids, plus the label, source tag,
// and original-collection index a downstream writer needs to recover
// identity.
//
// A Value starts life as Bytes (produced by an external reader) and
// may be symbolized exactly once into Tokens via a DelimTable. That
// transformation is irreversible: it discards the byte buffer.
package strval
