package codec

import (
	"encoding/json"

	"github.com/dball/constructive/internal/attrs"
	"github.com/dball/constructive/internal/typing"

	. "github.com/dball/constructive/internal/types"
)

// DecodeAttribute decodes and validates a JSON attribute definition.
func DecodeAttribute(data []byte) (attrs.Attribute, error) {
	raw, err := decode(data)
	if err != nil {
		return attrs.Attribute{}, err
	}
	return ImportAttribute(raw)
}

// ImportAttribute validates a decoded JSON attribute definition.
// Every missing-required-field and wrong-field-shape error names both
// the field and the full received definition.
func ImportAttribute(v any) (attr attrs.Attribute, err error) {
	def, ok := v.(map[string]any)
	if !ok {
		err = NewError("codec.invalidAttribute", "expected", "object", "value", v)
		return
	}
	if raw, ok := def["id"]; ok {
		attr.ID, err = ImportAttrID(raw)
		if err != nil {
			return
		}
	}
	raw, ok := def["keyword"]
	if !ok {
		err = NewError("codec.missingField", "field", "keyword", "definition", def)
		return
	}
	s, ok := raw.(string)
	if !ok {
		err = NewError("codec.invalidField", "field", "keyword", "expected", "string", "definition", def)
		return
	}
	attr.Keyword = ParseKeyword(s)
	if attr.Keyword.IsReserved() {
		err = NewError("codec.reservedKeyword", "keyword", attr.Keyword, "definition", def)
		return
	}
	raw, ok = def["cardinality"]
	if !ok {
		err = NewError("codec.missingField", "field", "cardinality", "definition", def)
		return
	}
	s, ok = raw.(string)
	if !ok {
		err = NewError("codec.invalidField", "field", "cardinality", "expected", "string", "definition", def)
		return
	}
	attr.Cardinality, err = attrs.ParseCardinality(s)
	if err != nil {
		return
	}
	raw, ok = def["type"]
	if !ok {
		err = NewError("codec.missingField", "field", "type", "definition", def)
		return
	}
	s, ok = raw.(string)
	if !ok {
		err = NewError("codec.invalidField", "field", "type", "expected", "string", "definition", def)
		return
	}
	attr.Type, err = typing.Parse(s)
	if err != nil {
		return
	}
	if raw, ok := def["index"]; ok {
		switch raw := raw.(type) {
		case bool:
			if raw {
				attr.Index = attrs.IndexIndexed
			}
		case string:
			attr.Index, err = attrs.ParseIndex(raw)
			if err != nil {
				return
			}
		default:
			err = NewError("codec.invalidField", "field", "index", "expected", "boolean or string", "definition", def)
			return
		}
	}
	attr.History = true
	if raw, ok := def["history"]; ok {
		b, ok := raw.(bool)
		if !ok {
			err = NewError("codec.invalidField", "field", "history", "expected", "boolean", "definition", def)
			return
		}
		attr.History = b
	}
	return
}

// ExportAttribute renders an attribute definition. All six keys are
// always present.
func ExportAttribute(attr attrs.Attribute) map[string]any {
	return map[string]any{
		"id":          uint64(attr.ID),
		"keyword":     attr.Keyword.String(),
		"cardinality": attr.Cardinality.String(),
		"type":        attr.Type.String(),
		"index":       attr.Index.String(),
		"history":     attr.History,
	}
}

// EncodeAttribute renders an attribute definition as a JSON document.
func EncodeAttribute(attr attrs.Attribute) ([]byte, error) {
	data, err := json.Marshal(ExportAttribute(attr))
	if err != nil {
		return nil, NewError("codec.encode", "err", err)
	}
	return data, nil
}
