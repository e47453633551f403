package types

import "fmt"

// The three id kinds are structurally identical but never
// interchangeable: an attribute id is not an entity id is not a
// transaction id.

// AttrID identifies an attribute. 0 means the registry has not yet
// assigned one.
type AttrID uint64

func (id AttrID) String() string {
	return fmt.Sprintf("#attr(%d)", uint64(id))
}

// EntityID identifies an entity.
type EntityID uint64

func (id EntityID) String() string {
	return fmt.Sprintf("#en(%d)", uint64(id))
}

// TxID identifies a transaction.
type TxID uint64

func (id TxID) String() string {
	return fmt.Sprintf("#tx(%d)", uint64(id))
}

// Entity ids are storage values; the other id kinds are not.
func (EntityID) isDataValue() {}
