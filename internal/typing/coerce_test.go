package typing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dball/constructive/internal/types"
)

func TestCoerceAny(t *testing.T) {
	values := []types.Value{
		types.Null{},
		types.Bool(true),
		types.Int(5),
		types.Float(2.5),
		types.String("a"),
		types.List{types.Int(1), types.String("x")},
	}
	for _, v := range values {
		coerced, err := Coerce(Any, v)
		assert.NoError(t, err)
		assert.Equal(t, v, coerced)
	}
}

func TestCoerceScalars(t *testing.T) {
	u := types.UUID(uuid.MustParse("f0a0e6a4-0b1a-4c9e-9f7a-3d2b6c1d0e9f"))
	matches := []struct {
		typ Typing
		v   types.Value
	}{
		{Bool, types.Bool(false)},
		{Int, types.Int(5)},
		{Float, types.Float(2.5)},
		{Text, types.String("a")},
		{Uuid, u},
	}
	for _, c := range matches {
		coerced, err := Coerce(c.typ, c.v)
		assert.NoError(t, err)
		assert.Equal(t, c.v, coerced)
	}
	mismatches := []struct {
		typ Typing
		v   types.Value
	}{
		{Bool, types.Int(1)},
		{Int, types.Float(5)},
		{Float, types.Int(5)},
		{Text, types.Bool(true)},
		{Uuid, types.String("f0a0e6a4-0b1a-4c9e-9f7a-3d2b6c1d0e9f")},
	}
	for _, c := range mismatches {
		coerced, err := Coerce(c.typ, c.v)
		assert.Nil(t, coerced)
		assert.Equal(t, types.NewError("typing.typeMismatch", "type", c.typ, "value", c.v), err)
	}
}

func TestCoerceNull(t *testing.T) {
	for _, typ := range []Typing{Bool, Int, Float, Text, Uuid, Homogeneous{Elem: Int}} {
		coerced, err := Coerce(typ, types.Null{})
		assert.Nil(t, coerced)
		assert.Equal(t, types.NewError("typing.notNullViolated", "type", typ), err)
	}
	coerced, err := Coerce(Nullable{Elem: Int}, types.Null{})
	assert.NoError(t, err)
	assert.Equal(t, types.Null{}, coerced)
}

func TestCoerceNullable(t *testing.T) {
	coerced, err := Coerce(Nullable{Elem: Int}, types.Int(5))
	assert.NoError(t, err)
	assert.Equal(t, types.Int(5), coerced)

	// the error cites the unwrapped inner type, not the wrapper
	coerced, err = Coerce(Nullable{Elem: Int}, types.String("a"))
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.typeMismatch", "type", Int, "value", types.String("a")), err)
}

func TestCoerceHomogeneous(t *testing.T) {
	typ := Homogeneous{Elem: Int}
	coerced, err := Coerce(typ, types.List{types.Int(1), types.Int(2)})
	assert.NoError(t, err)
	assert.Equal(t, types.List{types.Int(1), types.Int(2)}, coerced)

	coerced, err = Coerce(typ, types.List{})
	assert.NoError(t, err)
	assert.Equal(t, types.List{}, coerced)

	// the first failing element's error propagates unmodified
	coerced, err = Coerce(typ, types.List{types.Int(1), types.String("x")})
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.typeMismatch", "type", Int, "value", types.String("x")), err)

	coerced, err = Coerce(typ, types.Int(1))
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.typeMismatch", "type", typ, "value", types.Int(1)), err)
}

func TestCoerceUnnamedTuple(t *testing.T) {
	typ := UnnamedTuple{Fields: []Typing{Int, Nullable{Elem: Text}}}
	coerced, err := Coerce(typ, types.List{types.Int(1), types.Null{}})
	assert.NoError(t, err)
	assert.Equal(t, types.List{types.Int(1), types.Null{}}, coerced)

	short := types.List{types.Int(1)}
	coerced, err = Coerce(typ, short)
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.arityMismatch", "type", typ, "value", short, "want", 2, "got", 1), err)

	coerced, err = Coerce(typ, types.List{types.Int(1), types.Int(2)})
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.typeMismatch", "type", Text, "value", types.Int(2)), err)

	coerced, err = Coerce(typ, types.String("nope"))
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.typeMismatch", "type", typ, "value", types.String("nope")), err)
}

func TestCoerceNamedTuple(t *testing.T) {
	typ := NamedTuple{Fields: []NamedField{{Name: "x", Type: Int}, {Name: "y", Type: Float}}}

	pairs := types.List{
		types.List{types.String("y"), types.Float(2.5)},
		types.List{types.String("x"), types.Int(1)},
	}
	coerced, err := Coerce(typ, pairs)
	assert.NoError(t, err)
	// keys arrive in any order; the result is in declaration order
	assert.Equal(t, types.List{
		types.List{types.String("x"), types.Int(1)},
		types.List{types.String("y"), types.Float(2.5)},
	}, coerced)

	missing := types.List{types.List{types.String("x"), types.Int(1)}}
	coerced, err = Coerce(typ, missing)
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.missingField", "type", typ, "name", "y"), err)

	extra := types.List{
		types.List{types.String("x"), types.Int(1)},
		types.List{types.String("y"), types.Float(2.5)},
		types.List{types.String("z"), types.Int(9)},
	}
	coerced, err = Coerce(typ, extra)
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.unexpectedField", "type", typ, "name", "z"), err)

	dup := types.List{
		types.List{types.String("x"), types.Int(1)},
		types.List{types.String("x"), types.Int(2)},
	}
	coerced, err = Coerce(typ, dup)
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.duplicateField", "type", typ, "name", "x"), err)

	coerced, err = Coerce(typ, types.List{types.Int(1)})
	assert.Nil(t, coerced)
	assert.Equal(t, types.NewError("typing.typeMismatch", "type", typ, "value", types.List{types.Int(1)}), err)
}
