package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// MaxDepth is the deepest nesting accepted when decoding a payload.
// Anything deeper is rejected before the sanitizer or redactor see it.
const MaxDepth = 16

var ErrTooDeep = errors.New("payload nesting exceeds maximum depth")

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

// Member is a single key/value pair of an object. Objects are kept as
// slices so member order survives a decode/encode round trip.
type Member struct {
	Key   string
	Value Value
}

// Value is a closed representation of an arbitrary JSON value. Every
// payload field the service touches is one of these six kinds, which keeps
// the recursive sanitize/redact walks total.
type Value struct {
	Kind Kind
	Str  string // KindString
	Num  string // KindNumber, raw literal as received
	Bool bool   // KindBool
	Arr  []Value
	Obj  []Member
}

func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

func ObjectValue(members ...Member) Value {
	return Value{Kind: KindObject, Obj: members}
}

// Get returns the value of the first member with the given key.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for _, m := range v.Obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Display renders a scalar for human-readable output. Containers and
// nulls render as an empty string.
func (v Value) Display() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	parsed, err := decodeValue(dec, 0)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func decodeValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return Value{}, ErrTooDeep
	}

	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var members []Member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := decodeValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				members = append(members, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // closing brace
				return Value{}, err
			}
			return Value{Kind: KindObject, Obj: members}, nil
		case '[':
			var elems []Value
			for dec.More() {
				val, err := decodeValue(dec, depth+1)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, val)
			}
			if _, err := dec.Token(); err != nil { // closing bracket
				return Value{}, err
			}
			return Value{Kind: KindArray, Arr: elems}, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Num: t.String()}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		if v.Num == "" {
			return []byte("0"), nil
		}
		return []byte(v.Num), nil
	case KindBool:
		return json.Marshal(v.Bool)
	case KindArray:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, elem := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := elem.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case KindObject:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, m := range v.Obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			b, err := m.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.Kind)
}
