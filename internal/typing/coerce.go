package typing

import (
	"github.com/dball/constructive/internal/types"
)

// Coerce validates v against the declared type t, returning the
// value, normalized where the type calls for it. Coercion is exact:
// an Int value is never accepted where Float is declared, nor the
// reverse. It is a pure function with no shared state.
func Coerce(t Typing, v types.Value) (types.Value, error) {
	if t == Typing(Any) {
		return v, nil
	}
	if _, isNull := v.(types.Null); isNull {
		if _, ok := t.(Nullable); ok {
			return types.Null{}, nil
		}
		return nil, types.NewError("typing.notNullViolated", "type", t)
	}
	// The value is known non-null here, so nullability unwraps
	// exactly once, not per recursion level.
	if nt, ok := t.(Nullable); ok {
		return Coerce(nt.Elem, v)
	}
	switch t := t.(type) {
	case Scalar:
		return coerceScalar(t, v)
	case Homogeneous:
		list, ok := v.(types.List)
		if !ok {
			return nil, mismatch(t, v)
		}
		out := make(types.List, len(list))
		for i, elem := range list {
			coerced, err := Coerce(t.Elem, elem)
			if err != nil {
				return nil, err
			}
			out[i] = coerced
		}
		return out, nil
	case UnnamedTuple:
		return coerceUnnamedTuple(t, v)
	case NamedTuple:
		return coerceNamedTuple(t, v)
	}
	return nil, mismatch(t, v)
}

func mismatch(t Typing, v types.Value) error {
	return types.NewError("typing.typeMismatch", "type", t, "value", v)
}

func coerceScalar(t Scalar, v types.Value) (types.Value, error) {
	ok := false
	switch t {
	case Bool:
		_, ok = v.(types.Bool)
	case Int:
		_, ok = v.(types.Int)
	case Float:
		_, ok = v.(types.Float)
	case Text:
		_, ok = v.(types.String)
	case Uuid:
		_, ok = v.(types.UUID)
	}
	if !ok {
		return nil, mismatch(t, v)
	}
	return v, nil
}

// coerceUnnamedTuple coerces a list positionally. The arity must
// match the declared fields exactly.
func coerceUnnamedTuple(t UnnamedTuple, v types.Value) (types.Value, error) {
	list, ok := v.(types.List)
	if !ok {
		return nil, mismatch(t, v)
	}
	if len(list) != len(t.Fields) {
		return nil, types.NewError("typing.arityMismatch", "type", t, "value", v,
			"want", len(t.Fields), "got", len(list))
	}
	out := make(types.List, len(list))
	for i, ft := range t.Fields {
		coerced, err := Coerce(ft, list[i])
		if err != nil {
			return nil, err
		}
		out[i] = coerced
	}
	return out, nil
}

// coerceNamedTuple coerces a list of [name, value] pairs, the shape
// JSON objects import as. The keys must be exactly the declared field
// names, in any order; the result is normalized to declaration order.
func coerceNamedTuple(t NamedTuple, v types.Value) (types.Value, error) {
	list, ok := v.(types.List)
	if !ok {
		return nil, mismatch(t, v)
	}
	byName := make(map[string]types.Value, len(list))
	for _, entry := range list {
		pair, ok := entry.(types.List)
		if !ok || len(pair) != 2 {
			return nil, mismatch(t, v)
		}
		name, ok := pair[0].(types.String)
		if !ok {
			return nil, mismatch(t, v)
		}
		if _, dup := byName[string(name)]; dup {
			return nil, types.NewError("typing.duplicateField", "type", t, "name", string(name))
		}
		byName[string(name)] = pair[1]
	}
	out := make(types.List, 0, len(t.Fields))
	for _, f := range t.Fields {
		fv, ok := byName[f.Name]
		if !ok {
			return nil, types.NewError("typing.missingField", "type", t, "name", f.Name)
		}
		coerced, err := Coerce(f.Type, fv)
		if err != nil {
			return nil, err
		}
		out = append(out, types.List{types.String(f.Name), coerced})
		delete(byName, f.Name)
	}
	for name := range byName {
		return nil, types.NewError("typing.unexpectedField", "type", t, "name", name)
	}
	return out, nil
}
