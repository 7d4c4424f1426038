package models

import "strings"

// ValueKind tags a frontmatter value.
type ValueKind int

const (
	ScalarValue ValueKind = iota
	SequenceValue
)

// Value is either a scalar string or an ordered list of strings.
// Nested structures are not representable.
type Value struct {
	Kind   ValueKind
	Scalar string
	Items  []string
}

func Scalar(s string) Value {
	return Value{Kind: ScalarValue, Scalar: s}
}

func Sequence(items ...string) Value {
	return Value{Kind: SequenceValue, Items: append([]string{}, items...)}
}

func (v Value) IsSequence() bool {
	return v.Kind == SequenceValue
}

// Empty reports whether the value carries nothing: an empty scalar or an
// empty sequence.
func (v Value) Empty() bool {
	if v.IsSequence() {
		return len(v.Items) == 0
	}
	return v.Scalar == ""
}

// List returns the value as a list. A non-empty scalar becomes a one
// element list.
func (v Value) List() []string {
	if v.IsSequence() {
		return v.Items
	}
	if v.Scalar == "" {
		return nil
	}
	return []string{v.Scalar}
}

// String renders the value for console output.
func (v Value) String() string {
	if v.IsSequence() {
		return strings.Join(v.Items, ", ")
	}
	return v.Scalar
}

// Record is an insertion-ordered set of frontmatter fields. A repeated key
// keeps its first position and takes the last value.
type Record struct {
	keys   []string
	values map[string]Value
}

func NewRecord() *Record {
	return &Record{values: map[string]Value{}}
}

func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Present reports whether key exists with a non-empty value.
func (r *Record) Present(key string) bool {
	v, ok := r.values[key]
	return ok && !v.Empty()
}

func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}
