package api

import "github.com/shopping-busket/shoppinglist/internal/events"

// Item is a shopping list item on the wire.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ShoppingList is a full list on the wire.
type ShoppingList struct {
	ID             int64  `json:"id"`
	ListID         string `json:"listid"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Owner          string `json:"owner"`
	Entries        []Item `json:"entries"`
	CheckedEntries []Item `json:"checkedEntries"`
}

type CreateListRequest struct {
	// ListID is optional; one is generated when empty.
	ListID      string `json:"listid,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Owner is ignored for authenticated callers.
	Owner          string `json:"owner,omitempty"`
	Entries        []Item `json:"entries,omitempty"`
	CheckedEntries []Item `json:"checkedEntries,omitempty"`
}

type CreateListResponse struct {
	List *ShoppingList `json:"list"`
}

type GetListRequest struct {
	ListID string `json:"listid"`
}

type GetListResponse struct {
	List *ShoppingList `json:"list"`
}

type ListListsRequest struct {
	// Owner defaults to the authenticated caller.
	Owner string `json:"owner,omitempty"`
}

type ListListsResponse struct {
	Lists []*ShoppingList `json:"lists"`
}

type DeleteListRequest struct {
	ListID string `json:"listid"`
}

type DeleteListResponse struct{}

type CreateItemRequest struct {
	ListID string `json:"listid"`
	Name   string `json:"name"`
}

type CreateItemResponse struct {
	Item *Item `json:"item"`
}

type RenameItemRequest struct {
	ListID  string `json:"listid"`
	EntryID string `json:"entryId"`
	Name    string `json:"name"`
}

type RenameItemResponse struct {
	// Renamed is false when no open entry had the id.
	Renamed bool `json:"renamed"`
}

type CheckItemRequest struct {
	ListID  string `json:"listid"`
	EntryID string `json:"entryId"`
	Check   bool   `json:"check"`
}

type CheckItemResponse struct {
	List *ShoppingList `json:"list"`
}

type MoveItemRequest struct {
	ListID   string `json:"listid"`
	OldIndex int    `json:"oldIndex"`
	NewIndex int    `json:"newIndex"`
}

type MoveItemResponse struct {
	List *ShoppingList `json:"list"`
}

type DeleteItemRequest struct {
	ListID  string `json:"listid"`
	EntryID string `json:"entryId"`
}

type DeleteItemResponse struct {
	Item *Item `json:"item"`
}

type ClearDoneRequest struct {
	ListID string `json:"listid"`
}

type ClearDoneResponse struct {
	Cleared []Item `json:"cleared"`
}

type ListEventsRequest struct {
	ListID string `json:"listid"`
}

type ListEventsResponse struct {
	Events []events.LogEvent `json:"events"`
}
