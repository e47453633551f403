package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dball/constructive/internal/attrs"
	"github.com/dball/constructive/internal/typing"

	. "github.com/dball/constructive/internal/types"
)

func TestImportIDs(t *testing.T) {
	attrID, err := ImportAttrID(json.Number("42"))
	assert.NoError(t, err)
	assert.Equal(t, AttrID(42), attrID)

	entityID, err := ImportEntityID(json.Number("18446744073709551615"))
	assert.NoError(t, err)
	assert.Equal(t, EntityID(1<<64-1), entityID)

	txID, err := ImportTxID(json.Number("7"))
	assert.NoError(t, err)
	assert.Equal(t, TxID(7), txID)

	for _, bad := range []any{"42", json.Number("-1"), json.Number("1.5"), true, nil} {
		_, err = ImportAttrID(bad)
		assert.Equal(t, "codec.invalidID", err.(Error).Code, bad)
		assert.Equal(t, "attr", err.(Error).Context["kind"])
		_, err = ImportEntityID(bad)
		assert.Equal(t, "codec.invalidID", err.(Error).Code, bad)
		assert.Equal(t, "entity", err.(Error).Context["kind"])
		_, err = ImportTxID(bad)
		assert.Equal(t, "codec.invalidID", err.(Error).Code, bad)
		assert.Equal(t, "tx", err.(Error).Context["kind"])
	}
}

func TestDecodeAttribute(t *testing.T) {
	attr, err := DecodeAttribute([]byte(`{
		"id": 1,
		"keyword": ":person/name",
		"cardinality": "one",
		"type": "Text",
		"index": "unique",
		"history": false
	}`))
	assert.NoError(t, err)
	assert.Equal(t, attrs.Attribute{
		ID:          AttrID(1),
		Keyword:     Keyword("person/name"),
		Cardinality: attrs.CardinalityOne,
		Type:        typing.Text,
		Index:       attrs.IndexUnique,
		History:     false,
	}, attr)
}

func TestDecodeAttributeDefaults(t *testing.T) {
	attr, err := DecodeAttribute([]byte(`{"keyword":"person/age","cardinality":"many","type":"?[Int]"}`))
	assert.NoError(t, err)
	assert.Equal(t, attrs.Attribute{
		ID:          AttrID(0),
		Keyword:     Keyword("person/age"),
		Cardinality: attrs.CardinalityMany,
		Type:        typing.Nullable{Elem: typing.Homogeneous{Elem: typing.Int}},
		Index:       attrs.IndexNone,
		History:     true,
	}, attr)
}

func TestDecodeAttributeIndexShorthand(t *testing.T) {
	attr, err := DecodeAttribute([]byte(`{"keyword":"a/b","cardinality":"one","type":"Int","index":true}`))
	assert.NoError(t, err)
	assert.Equal(t, attrs.IndexIndexed, attr.Index)

	attr, err = DecodeAttribute([]byte(`{"keyword":"a/b","cardinality":"one","type":"Int","index":false}`))
	assert.NoError(t, err)
	assert.Equal(t, attrs.IndexNone, attr.Index)
}

func TestDecodeAttributeErrors(t *testing.T) {
	cases := []struct {
		data string
		code string
	}{
		{`[]`, "codec.invalidAttribute"},
		{`{"cardinality":"one","type":"Int"}`, "codec.missingField"},
		{`{"keyword":5,"cardinality":"one","type":"Int"}`, "codec.invalidField"},
		{`{"keyword":"sys/db/ident","cardinality":"one","type":"Int"}`, "codec.reservedKeyword"},
		{`{"keyword":"a/b","type":"Int"}`, "codec.missingField"},
		{`{"keyword":"a/b","cardinality":"several","type":"Int"}`, "attrs.invalidCardinality"},
		{`{"keyword":"a/b","cardinality":"one"}`, "codec.missingField"},
		{`{"keyword":"a/b","cardinality":"one","type":"Strin"}`, "typing.undefinedType"},
		{`{"keyword":"a/b","cardinality":"one","type":"Int","index":"sometimes"}`, "attrs.invalidIndex"},
		{`{"keyword":"a/b","cardinality":"one","type":"Int","index":5}`, "codec.invalidField"},
		{`{"keyword":"a/b","cardinality":"one","type":"Int","history":"yes"}`, "codec.invalidField"},
		{`{"id":"1","keyword":"a/b","cardinality":"one","type":"Int"}`, "codec.invalidID"},
	}
	for _, c := range cases {
		_, err := DecodeAttribute([]byte(c.data))
		assert.Equal(t, c.code, err.(Error).Code, c.data)
	}
}

func TestDecodeAttributeErrorNamesField(t *testing.T) {
	_, err := DecodeAttribute([]byte(`{"cardinality":"one","type":"Int"}`))
	terr := err.(Error)
	assert.Equal(t, "keyword", terr.Context["field"])
	// the full received definition rides along for diagnosis
	assert.Contains(t, terr.Context, "definition")
}

func TestEncodeAttribute(t *testing.T) {
	attr := attrs.Attribute{
		ID:          AttrID(9),
		Keyword:     Keyword("person/name"),
		Cardinality: attrs.CardinalityOne,
		Type:        typing.Nullable{Elem: typing.Text},
		Index:       attrs.IndexIdentity,
		History:     true,
	}
	data, err := EncodeAttribute(attr)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 9,
		"keyword": "person/name",
		"cardinality": "one",
		"type": "?Text",
		"index": "identity",
		"history": true
	}`, string(data))
}

func TestAttributeRoundTrip(t *testing.T) {
	data := []byte(`{"id":3,"keyword":"doc/tags","cardinality":"many","type":"[Text]","index":"indexed","history":true}`)
	attr, err := DecodeAttribute(data)
	assert.NoError(t, err)
	out, err := EncodeAttribute(attr)
	assert.NoError(t, err)
	assert.JSONEq(t, string(data), string(out))
}
