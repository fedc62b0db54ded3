// Package models defines the core domain model for shopping lists.
//
// # Aggregate
//
// A ShoppingList owns two ordered sequences of items:
//   - Entries: items that still need to be bought
//   - CheckedEntries: items that were marked done, in completion order
//
// An item id appears in at most one of the two sequences. Every mutation goes
// through a ShoppingList method; the sequences are exported for reading and
// for mapping to records, not for direct editing.
//
// # Records
//
// ShoppingListRecord is the flat shape the storage layer reads and writes.
// FromRecord and ToRecord map between the two without side effects.
//
// # Concurrency
//
// A ShoppingList has no internal locking. Callers that share one across
// goroutines must serialize access themselves.
package models
