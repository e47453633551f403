// Package attrs defines the attribute schema model.
package attrs

import (
	"github.com/dball/constructive/internal/typing"

	. "github.com/dball/constructive/internal/types"
)

// Cardinality specifies the number of values an attribute may have on
// a given entity.
type Cardinality uint8

const (
	// CardinalityOne admits one value per entity.
	CardinalityOne Cardinality = iota
	// CardinalityMany admits many values per entity.
	CardinalityMany
)

func (c Cardinality) String() (s string) {
	switch c {
	case CardinalityOne:
		s = "one"
	case CardinalityMany:
		s = "many"
	}
	return
}

// ParseCardinality parses a cardinality spelling. The set is closed;
// unrecognized spellings are errors, never defaults.
func ParseCardinality(s string) (c Cardinality, err error) {
	switch s {
	case "one":
		c = CardinalityOne
	case "many":
		c = CardinalityMany
	default:
		err = NewError("attrs.invalidCardinality", "cardinality", s)
	}
	return
}

// Index specifies how the storage engine indexes an attribute's
// values.
type Index uint8

const (
	// IndexNone leaves the attribute's values unindexed.
	IndexNone Index = iota
	// IndexIndexed indexes the attribute's values.
	IndexIndexed
	// IndexUnique indexes the attribute's values and requires them to
	// be unique.
	IndexUnique
	// IndexIdentity indexes the attribute's values, requires them to
	// be unique, and upserts entities on collision.
	IndexIdentity
)

func (i Index) String() (s string) {
	switch i {
	case IndexNone:
		s = "none"
	case IndexIndexed:
		s = "indexed"
	case IndexUnique:
		s = "unique"
	case IndexIdentity:
		s = "identity"
	}
	return
}

// ParseIndex parses an indexing mode spelling. The set is closed;
// unrecognized spellings are errors, never defaults.
func ParseIndex(s string) (i Index, err error) {
	switch s {
	case "none":
		i = IndexNone
	case "indexed":
		i = IndexIndexed
	case "unique":
		i = IndexUnique
	case "identity":
		i = IndexIdentity
	default:
		err = NewError("attrs.invalidIndex", "index", s)
	}
	return
}

// Attribute declares one named, typed slot an entity may hold values
// for. An attribute is immutable once built; replacing one is the
// registry's business, not ours.
type Attribute struct {
	// ID is the internal identifier of the attribute, 0 until the
	// registry assigns one.
	ID AttrID
	// Keyword is the public identifier of the attribute. It is never
	// reserved.
	Keyword Keyword
	// Cardinality specifies the number of values per entity.
	Cardinality Cardinality
	// Type constrains the attribute's values.
	Type typing.Typing
	// Index specifies the storage engine's indexing of the values.
	Index Index
	// History specifies whether the storage engine retains retracted
	// values.
	History bool
}

// New builds an attribute programmatically, enforcing the keyword
// reservation invariant. The id stays 0 until the registry assigns
// one.
func New(keyword Keyword, cardinality Cardinality, t typing.Typing) (attr Attribute, err error) {
	if keyword.IsReserved() {
		err = NewError("attrs.reservedKeyword", "keyword", keyword)
		return
	}
	attr = Attribute{
		Keyword:     keyword,
		Cardinality: cardinality,
		Type:        t,
		History:     true,
	}
	return
}
