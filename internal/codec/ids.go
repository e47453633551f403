package codec

import (
	"encoding/json"
	"strconv"

	. "github.com/dball/constructive/internal/types"
)

// importID requires a number losslessly convertible to a uint64. Any
// other shape fails, naming the received value and the id kind.
func importID(v any, kind string) (uint64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, NewError("codec.invalidID", "kind", kind, "value", v)
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, NewError("codec.invalidID", "kind", kind, "value", v)
	}
	return u, nil
}

// ImportAttrID converts a decoded JSON value into an attribute id.
func ImportAttrID(v any) (AttrID, error) {
	u, err := importID(v, "attr")
	return AttrID(u), err
}

// ImportEntityID converts a decoded JSON value into an entity id.
func ImportEntityID(v any) (EntityID, error) {
	u, err := importID(v, "entity")
	return EntityID(u), err
}

// ImportTxID converts a decoded JSON value into a transaction id.
func ImportTxID(v any) (TxID, error) {
	u, err := importID(v, "tx")
	return TxID(u), err
}

// Ids serialize as plain numbers.

func ExportAttrID(id AttrID) any     { return uint64(id) }
func ExportEntityID(id EntityID) any { return uint64(id) }
func ExportTxID(id TxID) any         { return uint64(id) }
