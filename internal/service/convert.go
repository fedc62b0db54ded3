package service

import (
	"github.com/shopping-busket/shoppinglist/internal/models"
	"github.com/shopping-busket/shoppinglist/pkg/api"
)

func toAPIItem(r models.ItemRecord) *api.Item {
	return &api.Item{ID: r.ID, Name: r.Name}
}

func toAPIItems(records []models.ItemRecord) []api.Item {
	items := make([]api.Item, len(records))
	for i, r := range records {
		items[i] = *toAPIItem(r)
	}
	return items
}

func fromAPIItems(items []api.Item) []models.ItemRecord {
	records := make([]models.ItemRecord, len(items))
	for i, it := range items {
		records[i] = models.ItemRecord{ID: it.ID, Name: it.Name}
	}
	return records
}

func toAPIList(rec *models.ShoppingListRecord) *api.ShoppingList {
	return &api.ShoppingList{
		ID:             rec.ID,
		ListID:         rec.ListID,
		Name:           rec.Name,
		Description:    rec.Description,
		Owner:          rec.Owner,
		Entries:        toAPIItems(rec.Entries),
		CheckedEntries: toAPIItems(rec.CheckedEntries),
	}
}
