package strval

import (
	"fmt"
)

// Kind tags which representation a Value currently holds.
type Kind int

const (
	// Bytes marks a Value whose Raw holds a raw byte sequence.
	Bytes Kind = iota
	// Tokens marks a Value whose Toks holds a sequence of 64-bit token ids.
	Tokens
)

// String implements fmt.Stringer for Kind, for debug output and logs.
func (k Kind) String() string {
	switch k {
	case Bytes:
		return "bytes"
	case Tokens:
		return "tokens"
	default:
		return fmt.Sprintf("strval.Kind(%d)", int(k))
	}
}

// Value is the uniform string abstraction fed into every measure.
//
// Exactly one of Raw/Toks is populated, selected by Kind; Len always
// equals the populated slice's length. Src is nil when absent, and
// otherwise an owned copy independent of the caller's buffer.
type Value struct {
	Kind  Kind
	Raw   []byte   // populated iff Kind == Bytes
	Toks  []uint64 // populated iff Kind == Tokens
	Len   int
	Label float64
	Src   *string
	Idx   int
}

// NewBytes constructs a Value in the Bytes representation.
//
// data is copied so the Value owns its storage independent of the
// caller's buffer; src, if non-empty, is copied the same way. An empty
// src means "no source": the Value stores a nil Src.
func NewBytes(data []byte, label float64, src string, idx int) *Value {
	raw := make([]byte, len(data))
	copy(raw, data)

	v := &Value{
		Kind:  Bytes,
		Raw:   raw,
		Len:   len(raw),
		Label: label,
		Idx:   idx,
	}
	if src != "" {
		s := src
		v.Src = &s
	}

	return v
}

// Symbolize converts v from Bytes to Tokens in place using tbl.
//
// Calling Symbolize on a value already in Tokens form is a no-op:
// symbolization is idempotent in kind. Calling it with an
// uninitialized delimiter table is also a no-op: an uninitialized
// table means "treat as byte sequences".
func (v *Value) Symbolize(tbl *DelimTable) {
	if v.Kind == Tokens {
		return
	}
	if tbl == nil || !tbl.initialized {
		return
	}

	toks := tbl.Tokenize(v.Raw)
	v.Toks = toks
	v.Len = len(toks)
	v.Raw = nil
	v.Kind = Tokens
}

// String renders a short one-line debug form,
// Value{field=... field=...}.
func (v *Value) String() string {
	src := "-"
	if v.Src != nil {
		src = *v.Src
	}
	switch v.Kind {
	case Bytes:
		return fmt.Sprintf("Value{idx=%d label=%g src=%s bytes=%q}", v.Idx, v.Label, src, v.Raw)
	default:
		return fmt.Sprintf("Value{idx=%d label=%g src=%s toks=%v}", v.Idx, v.Label, src, v.Toks)
	}
}
