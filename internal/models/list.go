package models

import "slices"

// ShoppingList is the aggregate that owns a list's items.
type ShoppingList struct {
	// ListID identifies the list (UUID format, not validated).
	ListID string

	// Name is the display name of the list (e.g., "Weekly groceries").
	Name string

	// Description is free text shown under the name.
	Description string

	// Owner is the user ID of the list owner. Empty when unknown.
	Owner string

	// Entries are the items not yet done, in display order.
	// Newly created items are inserted at the front.
	Entries []*ShoppingListItem

	// CheckedEntries are the items marked done, in the order they were checked.
	CheckedEntries []*ShoppingListItem

	ids IDGenerator
}

// Option configures a ShoppingList at construction.
type Option func(*ShoppingList)

// WithIDGenerator sets the generator used for new item ids.
func WithIDGenerator(g IDGenerator) Option {
	return func(l *ShoppingList) {
		l.ids = g
	}
}

// New creates a list from already persisted data.
// entries and checkedEntries may be nil; their order is preserved.
// Records without an ID get a freshly generated one.
func New(listID, name, description, owner string, entries, checkedEntries []ItemRecord, opts ...Option) *ShoppingList {
	l := &ShoppingList{
		ListID:         listID,
		Name:           name,
		Description:    description,
		Owner:          owner,
		Entries:        make([]*ShoppingListItem, 0, len(entries)),
		CheckedEntries: make([]*ShoppingListItem, 0, len(checkedEntries)),
		ids:            UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(l)
	}

	for _, r := range entries {
		l.Entries = append(l.Entries, l.itemFromRecord(r))
	}
	for _, r := range checkedEntries {
		l.CheckedEntries = append(l.CheckedEntries, l.itemFromRecord(r))
	}

	return l
}

// FromRecord creates a list from its persisted record.
func FromRecord(rec ShoppingListRecord, opts ...Option) *ShoppingList {
	return New(rec.ListID, rec.Name, rec.Description, rec.Owner, rec.Entries, rec.CheckedEntries, opts...)
}

// FromLegacyItems creates a list from items that still carry a done flag.
// Done items become checked entries; relative order is kept in both sequences.
func FromLegacyItems(listID, name, description, owner string, items []LegacyShoppingListItem, opts ...Option) *ShoppingList {
	var entries, checked []ItemRecord
	for _, it := range items {
		r := ItemRecord{ID: it.ID, Name: it.Name}
		if it.Done {
			checked = append(checked, r)
		} else {
			entries = append(entries, r)
		}
	}
	return New(listID, name, description, owner, entries, checked, opts...)
}

func (l *ShoppingList) itemFromRecord(r ItemRecord) *ShoppingListItem {
	id := r.ID
	if id == "" {
		id = l.newID()
	}
	return NewShoppingListItem(r.Name, id)
}

// GlobalEntries returns a new slice holding Entries followed by CheckedEntries.
func (l *ShoppingList) GlobalEntries() []*ShoppingListItem {
	all := make([]*ShoppingListItem, 0, len(l.Entries)+len(l.CheckedEntries))
	all = append(all, l.Entries...)
	return append(all, l.CheckedEntries...)
}

// FindEntryGlobal returns the first item matching predicate, searching
// Entries before CheckedEntries. The predicate receives the item, its
// index and the sequence being searched.
func (l *ShoppingList) FindEntryGlobal(predicate func(item *ShoppingListItem, index int, seq []*ShoppingListItem) bool) (ItemWithIndex, bool) {
	for _, name := range []EntryList{Entries, CheckedEntries} {
		seq := l.sequence(name)
		for i, item := range seq {
			if predicate(item, i, seq) {
				return ItemWithIndex{Item: item, Index: i, List: name}, true
			}
		}
	}
	return ItemWithIndex{}, false
}

// CheckItem marks the item as done (check == true) or as todo (check == false).
//
// A done item is appended to CheckedEntries; a reopened item is appended to
// Entries. If the item already sits in the sequence the flag points to,
// nothing changes: a splice there would use an index from the other
// sequence and could drop or duplicate items.
func (l *ShoppingList) CheckItem(id string, check bool) error {
	found, ok := l.findByID(id)
	if !ok {
		return itemNotFound(id)
	}

	switch {
	case check && found.List == Entries:
		l.CheckedEntries = append(l.CheckedEntries, found.Item)
		l.Entries = slices.Delete(l.Entries, found.Index, found.Index+1)
	case !check && found.List == CheckedEntries:
		l.CheckedEntries = slices.Delete(l.CheckedEntries, found.Index, found.Index+1)
		l.Entries = append(l.Entries, found.Item)
	}
	return nil
}

// CreateItem adds a new item with a fresh id to the front of Entries and
// returns it.
func (l *ShoppingList) CreateItem(name string) (*ShoppingListItem, error) {
	id := l.newID()
	l.Entries = slices.Insert(l.Entries, 0, NewShoppingListItem(name, id))

	i := indexOf(l.Entries, id)
	if i < 0 {
		return nil, itemNotFound(id)
	}
	return l.Entries[i], nil
}

// RenameItem sets the name of an item in Entries. The name is used as given.
// Checked entries cannot be renamed; an unknown id is ignored.
// It reports whether an item was renamed.
func (l *ShoppingList) RenameItem(id, name string) bool {
	i := indexOf(l.Entries, id)
	if i < 0 {
		return false
	}
	l.Entries[i].Name = name
	return true
}

// ClearDone removes every checked entry and returns them.
func (l *ShoppingList) ClearDone() []*ShoppingListItem {
	done := l.CheckedEntries
	l.CheckedEntries = []*ShoppingListItem{}
	return done
}

// MoveResult describes an item's new position after MoveItem.
type MoveResult struct {
	Item *ShoppingListItem
	// AboveEntry and BelowEntry are the ids of the new neighbours,
	// empty at either end of the list.
	AboveEntry string
	BelowEntry string
}

// MoveItem moves the entry at oldIndex to newIndex within Entries.
func (l *ShoppingList) MoveItem(oldIndex, newIndex int) (MoveResult, error) {
	n := len(l.Entries)
	if oldIndex < 0 || oldIndex >= n || newIndex < 0 || newIndex >= n {
		return MoveResult{}, ErrIndexOutOfRange
	}

	item := l.Entries[oldIndex]
	l.Entries = slices.Delete(l.Entries, oldIndex, oldIndex+1)
	l.Entries = slices.Insert(l.Entries, newIndex, item)

	res := MoveResult{Item: item}
	if newIndex > 0 {
		res.AboveEntry = l.Entries[newIndex-1].ID
	}
	if newIndex < n-1 {
		res.BelowEntry = l.Entries[newIndex+1].ID
	}
	return res, nil
}

// DeleteItem removes the item from whichever sequence holds it and returns
// it with its former position.
func (l *ShoppingList) DeleteItem(id string) (ItemWithIndex, error) {
	found, ok := l.findByID(id)
	if !ok {
		return ItemWithIndex{}, itemNotFound(id)
	}

	if found.List == Entries {
		l.Entries = slices.Delete(l.Entries, found.Index, found.Index+1)
	} else {
		l.CheckedEntries = slices.Delete(l.CheckedEntries, found.Index, found.Index+1)
	}
	return found, nil
}

// ToRecord converts the list to its persisted shape under the given
// database id.
func (l *ShoppingList) ToRecord(id int64) ShoppingListRecord {
	return ShoppingListRecord{
		ID:             id,
		Name:           l.Name,
		Description:    l.Description,
		ListID:         l.ListID,
		Owner:          l.Owner,
		Entries:        toRecords(l.Entries),
		CheckedEntries: toRecords(l.CheckedEntries),
		Additional:     RecordAdditional{Loading: false},
	}
}

func (l *ShoppingList) findByID(id string) (ItemWithIndex, bool) {
	return l.FindEntryGlobal(func(item *ShoppingListItem, _ int, _ []*ShoppingListItem) bool {
		return item.ID == id
	})
}

func (l *ShoppingList) sequence(name EntryList) []*ShoppingListItem {
	if name == CheckedEntries {
		return l.CheckedEntries
	}
	return l.Entries
}

func indexOf(seq []*ShoppingListItem, id string) int {
	return slices.IndexFunc(seq, func(item *ShoppingListItem) bool {
		return item.ID == id
	})
}

func toRecords(items []*ShoppingListItem) []ItemRecord {
	out := make([]ItemRecord, len(items))
	for i, item := range items {
		out[i] = item.Record()
	}
	return out
}

func (l *ShoppingList) newID() string {
	if l.ids == nil {
		return UUIDGenerator{}.NewID()
	}
	return l.ids.NewID()
}
