// Package sys defines the system keyword namespace and the id ranges
// reserved for system use.
package sys

// NamespacePrefix prefixes the keywords reserved for system
// attributes. User attribute keywords may not use it.
const NamespacePrefix = "sys/"

// The registry assigns ids below these to system entities.
const (
	FirstUserAttrID   uint64 = 0x100
	FirstUserEntityID uint64 = 0x100000
	FirstUserTxID     uint64 = 0x100000
)
