package schema

import "strconv"

// Kind tags the variant held by a RawValue. Each kind has its own
// resolution semantics, so resolvers dispatch on it exactly once per key
// instead of sniffing dynamic types.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindNumber
	KindList
	KindDict
)

// String returns the lowercase variant name, mainly for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// RawValue is a tagged union over the value shapes a schema may declare.
// Exactly one payload field is meaningful for a given Kind: Str holds
// string scalars and the literal text of numbers, Bool holds booleans,
// List holds ordered choice elements, Dict holds nested objects.
type RawValue struct {
	Kind Kind
	Str  string
	Bool bool
	List []RawValue
	Dict *Dict
}

// String constructs a string-scalar raw value.
func String(s string) RawValue { return RawValue{Kind: KindString, Str: s} }

// Boolean constructs a boolean raw value.
func Boolean(b bool) RawValue { return RawValue{Kind: KindBool, Bool: b} }

// Number constructs a numeric raw value from its literal text.
func Number(literal string) RawValue { return RawValue{Kind: KindNumber, Str: literal} }

// Interface converts the raw value into plain Go data, the form used when
// a value is copied through verbatim (private keys, no-input nested
// defaults, condition targets). Numbers come back as int when the literal
// is integral, float64 otherwise.
func (v RawValue) Interface() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindString:
		return v.Str
	case KindBool:
		return v.Bool
	case KindNumber:
		if n, err := strconv.Atoi(v.Str); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(v.Str, 64); err == nil {
			return f
		}
		return v.Str
	case KindList:
		out := make([]any, len(v.List))
		for i, elem := range v.List {
			out[i] = elem.Interface()
		}
		return out
	case KindDict:
		return v.Dict.Interface()
	default:
		return nil
	}
}

// Field is a single named entry inside a Dict, in declaration order.
type Field struct {
	Name  string
	Value RawValue
}

// Dict is an order-preserving object value. Declaration order matters:
// nested configs are resolved field by field in the order the schema
// author wrote them.
type Dict struct {
	Fields []Field
}

// NewDict builds a Dict from ordered fields.
func NewDict(fields ...Field) *Dict {
	return &Dict{Fields: fields}
}

// Get returns the value stored under name.
func (d *Dict) Get(name string) (RawValue, bool) {
	if d == nil {
		return RawValue{}, false
	}
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return RawValue{}, false
}

// Has reports whether name is declared in the dict.
func (d *Dict) Has(name string) bool {
	_, ok := d.Get(name)
	return ok
}

// Len reports the number of declared fields.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Fields)
}

// Interface converts the dict into a plain map. Field order is lost; only
// the top-level resolution context carries an ordering contract.
func (d *Dict) Interface() map[string]any {
	if d == nil {
		return nil
	}
	out := make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		out[f.Name] = f.Value.Interface()
	}
	return out
}
