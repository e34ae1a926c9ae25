package codec

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates the two shapes a decrypted value can take.
type Kind int

const (
	// KindText is a plain string.
	KindText Kind = iota
	// KindStructured is a tree of maps, slices and scalars, serialized
	// as compact JSON inside the token.
	KindStructured
)

// Value is the tagged plaintext type the codec accepts and returns.
// Callers switch on Kind rather than reflecting on an interface value.
type Value struct {
	kind Kind
	text string
	tree any
}

// Text wraps a plain string.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Structured wraps a JSON-serializable tree of maps/slices/scalars.
func Structured(tree any) Value {
	return Value{kind: KindStructured, tree: tree}
}

// Kind reports which shape the value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsStructured reports whether the value holds a structured tree.
func (v Value) IsStructured() bool {
	return v.kind == KindStructured
}

// Text returns the plain string, or "" for structured values.
func (v Value) Text() string {
	return v.text
}

// Tree returns the structured tree, or nil for text values.
func (v Value) Tree() any {
	return v.tree
}

// String renders the value for display: the text itself, or compact
// JSON for structured values.
func (v Value) String() string {
	if v.kind == KindText {
		return v.text
	}
	b, err := json.Marshal(v.tree)
	if err != nil {
		return fmt.Sprintf("<unserializable: %v>", err)
	}
	return string(b)
}

// serialize produces the UTF-8 bytes sealed inside a token. Structured
// values use compact JSON; plain strings are used as-is.
func (v Value) serialize() ([]byte, error) {
	if v.kind == KindText {
		return []byte(v.text), nil
	}
	return json.Marshal(v.tree)
}
