package domain

import (
	"bytes"
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueKind discriminates the scalar variants a record field may hold.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// Value is one scalar field of a record: a string, a number, a bool, or null.
// Records carry no schema, so this tagged union is the only typing fields get.
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
	Bool bool
}

func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts JSON scalars only. Objects and arrays are rejected
// with ErrNonScalarField so malformed payloads fail before any store access.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Value{Kind: KindNull}
	case string:
		*v = Value{Kind: KindString, Str: x}
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return err
		}
		*v = Value{Kind: KindNumber, Num: f}
	case bool:
		*v = Value{Kind: KindBool, Bool: x}
	default:
		return ErrNonScalarField
	}
	return nil
}

// MarshalBSONValue stores the scalar as its native BSON type.
func (v Value) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch v.Kind {
	case KindString:
		return bson.MarshalValue(v.Str)
	case KindNumber:
		return bson.MarshalValue(v.Num)
	case KindBool:
		return bson.MarshalValue(v.Bool)
	default:
		return bson.MarshalValue(primitive.Null{})
	}
}

// UnmarshalBSONValue decodes scalar BSON types. Anything else (documents
// written before the scalar-only rule) is rendered as its extended-JSON text
// rather than dropped.
func (v *Value) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		*v = Value{Kind: KindString, Str: raw.StringValue()}
	case bsontype.Double:
		*v = Value{Kind: KindNumber, Num: raw.Double()}
	case bsontype.Int32:
		*v = Value{Kind: KindNumber, Num: float64(raw.Int32())}
	case bsontype.Int64:
		*v = Value{Kind: KindNumber, Num: float64(raw.Int64())}
	case bsontype.Boolean:
		*v = Value{Kind: KindBool, Bool: raw.Boolean()}
	case bsontype.Null, bsontype.Undefined:
		*v = Value{Kind: KindNull}
	default:
		*v = Value{Kind: KindString, Str: raw.String()}
	}
	return nil
}

// Fields is the open, caller-defined payload of a record. No field names are
// reserved except "id", which the API layer overwrites with the store id.
type Fields map[string]Value

// Record is one document from the invoices or transactions collection.
type Record struct {
	ID     string
	Fields Fields
}

// MarshalJSON flattens the fields to the top level with the store id mixed in,
// matching the wire shape clients already depend on.
func (r Record) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Fields)+1)
	for k, val := range r.Fields {
		out[k] = val
	}
	out["id"] = r.ID
	return json.Marshal(out)
}
