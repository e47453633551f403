// Package codec maps values, identifiers, and attribute definitions
// to and from JSON.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	. "github.com/dball/constructive/internal/types"
)

// decode unmarshals a JSON document, keeping numbers as json.Number
// so the integral, floating, and lossless-text cases stay distinct.
func decode(data []byte) (raw any, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if decodeErr := dec.Decode(&raw); decodeErr != nil {
		err = NewError("codec.invalidJSON", "err", decodeErr)
	}
	return
}

// DecodeValue decodes a JSON document into a runtime value.
func DecodeValue(data []byte) (Value, error) {
	raw, err := decode(data)
	if err != nil {
		return nil, err
	}
	return ImportValue(raw), nil
}

// ImportValue converts a decoded JSON tree into a runtime value. The
// conversion is total. Objects import as lists of [key, value] pairs
// in key order, never as maps; the fact model has no map values.
func ImportValue(v any) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case bool:
		return Bool(v)
	case json.Number:
		return importNumber(v)
	case float64:
		// decoded without UseNumber
		return importNumber(json.Number(strconv.FormatFloat(v, 'g', -1, 64)))
	case string:
		return String(v)
	case []any:
		list := make(List, len(v))
		for i, elem := range v {
			list[i] = ImportValue(elem)
		}
		return list
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		list := make(List, len(keys))
		for i, k := range keys {
			list[i] = List{String(k), ImportValue(v[k])}
		}
		return list
	}
	// json decoding yields no other types
	return Null{}
}

// importNumber keeps an integral number an Int and a fractional
// number a Float. A number representable as neither keeps its text.
func importNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return Int(i)
	}
	if f, err := n.Float64(); err == nil {
		return Float(f)
	}
	return String(n.String())
}

// ExportValue converts a value into a JSON-marshalable tree. The
// descending wrapper is transparent; Bottom exports as null.
func ExportValue(v DataValue) any {
	switch v := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(v)
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case String:
		return string(v)
	case UUID:
		return uuid.UUID(v).String()
	case Bytes:
		return base64.StdEncoding.EncodeToString(v)
	case List:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = ExportValue(elem)
		}
		return out
	case Desc:
		return ExportValue(v.V)
	case Bottom:
		return nil
	case EntityID:
		return uint64(v)
	case Keyword:
		return v.String()
	case Timestamp:
		return int64(v)
	}
	return nil
}

// EncodeValue renders a value as a JSON document.
func EncodeValue(v DataValue) ([]byte, error) {
	data, err := json.Marshal(ExportValue(v))
	if err != nil {
		return nil, NewError("codec.encode", "err", err)
	}
	return data, nil
}
