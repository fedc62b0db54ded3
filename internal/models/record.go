package models

import "fmt"

// ItemRecord is the persisted shape of a ShoppingListItem.
type ItemRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecordAdditional carries UI flags sent alongside a record.
type RecordAdditional struct {
	Loading bool `json:"loading"`
}

// ShoppingListRecord is the flat, storage-ready shape of a ShoppingList.
type ShoppingListRecord struct {
	// ID is the numeric database id assigned by the store.
	ID int64 `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	// ListID is the public list identifier (UUID format).
	ListID string `json:"listid"`

	Owner string `json:"owner"`

	Entries        []ItemRecord `json:"entries"`
	CheckedEntries []ItemRecord `json:"checkedEntries"`

	Additional RecordAdditional `json:"additional"`

	// CreatedAt is the Unix timestamp when the list was first stored.
	CreatedAt int64 `json:"-"`
}

// ValidateRecords checks that no item id appears twice within or across
// entries and checkedEntries. Empty ids are skipped; they are generated later.
func ValidateRecords(entries, checkedEntries []ItemRecord) error {
	seen := make(map[string]struct{}, len(entries)+len(checkedEntries))
	for _, seq := range [][]ItemRecord{entries, checkedEntries} {
		for _, r := range seq {
			if r.ID == "" {
				continue
			}
			if _, dup := seen[r.ID]; dup {
				return fmt.Errorf("%w: %s", ErrDuplicateItemID, r.ID)
			}
			seen[r.ID] = struct{}{}
		}
	}
	return nil
}
