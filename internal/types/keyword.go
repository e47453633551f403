package types

import (
	"strings"

	"github.com/dball/constructive/internal/sys"
)

// Keyword is a normalized name token identifying attributes and
// reserved system names. The leading colon of the external spelling
// is not stored.
type Keyword string

// ParseKeyword normalizes an external keyword spelling.
func ParseKeyword(s string) Keyword {
	return Keyword(strings.TrimPrefix(s, ":"))
}

func (k Keyword) String() string { return string(k) }

// IsReserved reports whether the keyword lies in the system
// namespace. Reserved keywords may not name user attributes.
func (k Keyword) IsReserved() bool {
	return strings.HasPrefix(string(k), sys.NamespacePrefix)
}

func (Keyword) isDataValue() {}
