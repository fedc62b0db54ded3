package models

import "strings"

// AdditionalItemData holds frontend-only state for an item.
// It is never persisted.
type AdditionalItemData struct {
	Edit     bool   `json:"edit"`
	EditName string `json:"editName"`
	Focused  bool   `json:"focused"`
}

// ShoppingListItem is a single entry on a shopping list.
type ShoppingListItem struct {
	// ID is the unique identifier for the item (UUID format).
	// It never changes after the item is created.
	ID string `json:"id"`

	// Name is the display name of the item (e.g., "Milk").
	Name string `json:"name"`

	// Additional is transient UI state.
	Additional AdditionalItemData `json:"additional"`
}

// NewShoppingListItem creates an item without adding it to any list.
// The name is trimmed; the UI edit buffer starts with the name as given.
func NewShoppingListItem(name, id string) *ShoppingListItem {
	return &ShoppingListItem{
		ID:   id,
		Name: strings.TrimSpace(name),
		Additional: AdditionalItemData{
			EditName: name,
		},
	}
}

// Record returns the persisted shape of the item.
func (i *ShoppingListItem) Record() ItemRecord {
	return ItemRecord{ID: i.ID, Name: i.Name}
}

// EntryList names one of the two item sequences of a ShoppingList.
type EntryList string

const (
	Entries        EntryList = "entries"
	CheckedEntries EntryList = "checkedEntries"
)

// ItemWithIndex is an item paired with its position in the sequence it was
// found in. Index is relative to List, not to GlobalEntries.
type ItemWithIndex struct {
	Item  *ShoppingListItem
	Index int
	List  EntryList
}

// LegacyShoppingListItem is the storage shape used before done items were
// kept in their own sequence.
type LegacyShoppingListItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}
