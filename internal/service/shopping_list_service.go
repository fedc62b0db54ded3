package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopping-busket/shoppinglist/internal/events"
	"github.com/shopping-busket/shoppinglist/internal/metrics"
	"github.com/shopping-busket/shoppinglist/internal/middleware"
	"github.com/shopping-busket/shoppinglist/internal/models"
	"github.com/shopping-busket/shoppinglist/internal/storage"
	"github.com/shopping-busket/shoppinglist/pkg/api"
	"github.com/shopping-busket/shoppinglist/pkg/api/apiconnect"
)

// ShoppingListService implements the Connect ShoppingListService.
//
// Every mutating RPC loads the list record, applies one aggregate operation
// and writes the record back together with the log events it produced.
// Mutations of the same list are serialized.
type ShoppingListService struct {
	apiconnect.UnimplementedShoppingListServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
	ids     models.IDGenerator
	now     func() time.Time

	// authEnabled makes owned lists private to their owner.
	authEnabled bool

	mu    sync.Mutex
	locks map[string]*listLock
}

type listLock struct {
	mu   sync.Mutex
	refs int
}

// Option configures a ShoppingListService.
type Option func(*ShoppingListService)

// WithMetrics sets the collectors updated by the service.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *ShoppingListService) { s.metrics = m }
}

// WithIDGenerator sets the generator for new list and item ids.
func WithIDGenerator(g models.IDGenerator) Option {
	return func(s *ShoppingListService) { s.ids = g }
}

// WithClock sets the time source for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *ShoppingListService) { s.now = now }
}

// WithAuthentication marks that callers are identified by bearer tokens.
// Anonymous callers then cannot see or change lists that have an owner.
func WithAuthentication(enabled bool) Option {
	return func(s *ShoppingListService) { s.authEnabled = enabled }
}

// NewShoppingListService creates a new ShoppingListService with the given storage backend.
func NewShoppingListService(store storage.Store, opts ...Option) *ShoppingListService {
	s := &ShoppingListService{
		store: store,
		ids:   models.UUIDGenerator{},
		now:   time.Now,
		locks: make(map[string]*listLock),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(prometheus.NewRegistry())
	}
	return s
}

// CreateList creates a new list. Authenticated callers always own the lists
// they create. Anonymous callers may name an owner unless authentication is
// enabled, in which case their lists have no owner.
func (s *ShoppingListService) CreateList(ctx context.Context, req *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error) {
	slog.Info("CreateList request received",
		"name", req.Msg.Name,
		"entries_count", len(req.Msg.Entries),
	)

	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name required"))
	}

	entries, checked := fromAPIItems(req.Msg.Entries), fromAPIItems(req.Msg.CheckedEntries)
	if err := models.ValidateRecords(entries, checked); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	owner := req.Msg.Owner
	if userID := middleware.GetUserID(ctx); userID != "" {
		owner = userID
	} else if s.authEnabled {
		owner = ""
	}
	listID := req.Msg.ListID
	if listID == "" {
		listID = s.ids.NewID()
	}

	list := models.New(listID, req.Msg.Name, req.Msg.Description, owner, entries, checked,
		models.WithIDGenerator(s.ids),
	)
	rec := list.ToRecord(0)

	// Save to storage (assigns the numeric ID)
	if err := s.store.CreateList(ctx, &rec); err != nil {
		slog.Error("CreateList failed", "listid", listID, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.IncrementListsCreated()

	slog.Info("List created", "listid", rec.ListID, "id", rec.ID)

	return connect.NewResponse(&api.CreateListResponse{List: toAPIList(&rec)}), nil
}

// GetList retrieves a list by its list id.
func (s *ShoppingListService) GetList(ctx context.Context, req *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error) {
	rec, err := s.load(ctx, req.Msg.ListID)
	if err != nil {
		slog.Error("GetList failed", "listid", req.Msg.ListID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&api.GetListResponse{List: toAPIList(rec)}), nil
}

// ListLists retrieves the lists of the authenticated caller, or of the
// requested owner for anonymous callers when authentication is disabled.
func (s *ShoppingListService) ListLists(ctx context.Context, req *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error) {
	owner := req.Msg.Owner
	if userID := middleware.GetUserID(ctx); userID != "" {
		owner = userID
	} else if s.authEnabled {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("listing lists requires a token"))
	}
	if owner == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("owner required"))
	}

	recs, err := s.store.ListListsByOwner(ctx, owner)
	if err != nil {
		slog.Error("ListLists failed", "owner", owner, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	lists := make([]*api.ShoppingList, len(recs))
	for i, rec := range recs {
		lists[i] = toAPIList(rec)
	}

	slog.Info("ListLists successful", "owner", owner, "count", len(lists))

	return connect.NewResponse(&api.ListListsResponse{Lists: lists}), nil
}

// DeleteList removes a list with its items and history.
func (s *ShoppingListService) DeleteList(ctx context.Context, req *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error) {
	listID := req.Msg.ListID
	slog.Info("DeleteList request received", "listid", listID)

	unlock := s.lock(listID)
	defer unlock()

	if _, err := s.load(ctx, listID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteList(ctx, listID); err != nil {
		slog.Error("DeleteList failed", "listid", listID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("List deleted", "listid", listID)

	return connect.NewResponse(&api.DeleteListResponse{}), nil
}

// CreateItem adds a new item to the front of the list.
func (s *ShoppingListService) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	slog.Info("CreateItem request received", "listid", req.Msg.ListID, "name", req.Msg.Name)

	var created *models.ShoppingListItem
	_, err := s.mutate(ctx, req.Msg.ListID, func(list *models.ShoppingList) ([]events.LogEvent, error) {
		item, err := list.CreateItem(req.Msg.Name)
		if err != nil {
			return nil, err
		}
		created = item
		return []events.LogEvent{events.New(events.CreateEntry, item.ID, item.Name, s.now())}, nil
	})
	if err != nil {
		slog.Error("CreateItem failed", "listid", req.Msg.ListID, "error", err)
		return nil, err
	}
	s.metrics.IncrementItemsCreated()

	slog.Info("Item created", "listid", req.Msg.ListID, "entry_id", created.ID)

	return connect.NewResponse(&api.CreateItemResponse{Item: toAPIItem(created.Record())}), nil
}

// RenameItem renames an open entry. Unknown ids and checked entries are
// ignored; the response reports whether anything was renamed.
func (s *ShoppingListService) RenameItem(ctx context.Context, req *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error) {
	slog.Info("RenameItem request received", "listid", req.Msg.ListID, "entry_id", req.Msg.EntryID)

	renamed := false
	_, err := s.mutate(ctx, req.Msg.ListID, func(list *models.ShoppingList) ([]events.LogEvent, error) {
		if !list.RenameItem(req.Msg.EntryID, req.Msg.Name) {
			return nil, nil
		}
		renamed = true
		return []events.LogEvent{events.New(events.ChangedEntryName, req.Msg.EntryID, req.Msg.Name, s.now())}, nil
	})
	if err != nil {
		slog.Error("RenameItem failed", "listid", req.Msg.ListID, "error", err)
		return nil, err
	}
	if !renamed {
		slog.Debug("RenameItem ignored unknown entry", "listid", req.Msg.ListID, "entry_id", req.Msg.EntryID)
	}

	return connect.NewResponse(&api.RenameItemResponse{Renamed: renamed}), nil
}

// CheckItem marks an item as done or as todo.
func (s *ShoppingListService) CheckItem(ctx context.Context, req *connect.Request[api.CheckItemRequest]) (*connect.Response[api.CheckItemResponse], error) {
	slog.Info("CheckItem request received",
		"listid", req.Msg.ListID,
		"entry_id", req.Msg.EntryID,
		"check", req.Msg.Check,
	)

	moved := false
	rec, err := s.mutate(ctx, req.Msg.ListID, func(list *models.ShoppingList) ([]events.LogEvent, error) {
		found, _ := list.FindEntryGlobal(func(item *models.ShoppingListItem, _ int, _ []*models.ShoppingListItem) bool {
			return item.ID == req.Msg.EntryID
		})
		if err := list.CheckItem(req.Msg.EntryID, req.Msg.Check); err != nil {
			return nil, err
		}

		target := models.Entries
		if req.Msg.Check {
			target = models.CheckedEntries
		}
		if found.List == target {
			return nil, nil
		}
		moved = true
		return []events.LogEvent{events.New(events.MarkEvent(req.Msg.Check), found.Item.ID, found.Item.Name, s.now())}, nil
	})
	if err != nil {
		slog.Error("CheckItem failed", "listid", req.Msg.ListID, "entry_id", req.Msg.EntryID, "error", err)
		return nil, err
	}
	if moved {
		s.metrics.IncrementItemsChecked(req.Msg.Check)
	}

	return connect.NewResponse(&api.CheckItemResponse{List: toAPIList(rec)}), nil
}

// MoveItem reorders an open entry.
func (s *ShoppingListService) MoveItem(ctx context.Context, req *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	slog.Info("MoveItem request received",
		"listid", req.Msg.ListID,
		"old_index", req.Msg.OldIndex,
		"new_index", req.Msg.NewIndex,
	)

	rec, err := s.mutate(ctx, req.Msg.ListID, func(list *models.ShoppingList) ([]events.LogEvent, error) {
		res, err := list.MoveItem(req.Msg.OldIndex, req.Msg.NewIndex)
		if err != nil {
			return nil, err
		}
		return []events.LogEvent{events.NewMove(res.Item.ID, res.Item.Name, res.AboveEntry, res.BelowEntry,
			req.Msg.OldIndex, req.Msg.NewIndex, s.now())}, nil
	})
	if err != nil {
		slog.Error("MoveItem failed", "listid", req.Msg.ListID, "error", err)
		return nil, err
	}

	return connect.NewResponse(&api.MoveItemResponse{List: toAPIList(rec)}), nil
}

// DeleteItem removes an item from the list.
func (s *ShoppingListService) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	slog.Info("DeleteItem request received", "listid", req.Msg.ListID, "entry_id", req.Msg.EntryID)

	var deleted *models.ShoppingListItem
	_, err := s.mutate(ctx, req.Msg.ListID, func(list *models.ShoppingList) ([]events.LogEvent, error) {
		found, err := list.DeleteItem(req.Msg.EntryID)
		if err != nil {
			return nil, err
		}
		deleted = found.Item
		return []events.LogEvent{events.New(events.DeleteEntry, found.Item.ID, found.Item.Name, s.now())}, nil
	})
	if err != nil {
		slog.Error("DeleteItem failed", "listid", req.Msg.ListID, "entry_id", req.Msg.EntryID, "error", err)
		return nil, err
	}
	s.metrics.AddItemsDeleted(1)

	return connect.NewResponse(&api.DeleteItemResponse{Item: toAPIItem(deleted.Record())}), nil
}

// ClearDone removes all checked entries and returns them.
func (s *ShoppingListService) ClearDone(ctx context.Context, req *connect.Request[api.ClearDoneRequest]) (*connect.Response[api.ClearDoneResponse], error) {
	slog.Info("ClearDone request received", "listid", req.Msg.ListID)

	var cleared []*models.ShoppingListItem
	_, err := s.mutate(ctx, req.Msg.ListID, func(list *models.ShoppingList) ([]events.LogEvent, error) {
		cleared = list.ClearDone()
		at := s.now()
		evts := make([]events.LogEvent, len(cleared))
		for i, item := range cleared {
			evts[i] = events.New(events.DeleteEntry, item.ID, item.Name, at)
		}
		return evts, nil
	})
	if err != nil {
		slog.Error("ClearDone failed", "listid", req.Msg.ListID, "error", err)
		return nil, err
	}
	s.metrics.AddItemsDeleted(len(cleared))

	items := make([]api.Item, len(cleared))
	for i, item := range cleared {
		items[i] = *toAPIItem(item.Record())
	}

	slog.Info("ClearDone successful", "listid", req.Msg.ListID, "cleared_count", len(items))

	return connect.NewResponse(&api.ClearDoneResponse{Cleared: items}), nil
}

// ListEvents returns the recorded history of a list.
func (s *ShoppingListService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	if _, err := s.load(ctx, req.Msg.ListID); err != nil {
		return nil, err
	}

	evts, err := s.store.ListEvents(ctx, req.Msg.ListID)
	if err != nil {
		slog.Error("ListEvents failed", "listid", req.Msg.ListID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ListEventsResponse{Events: evts}), nil
}

// mutate applies fn to the aggregate of listID and persists the result with
// the returned events. When fn returns no events nothing is written.
func (s *ShoppingListService) mutate(ctx context.Context, listID string, fn func(*models.ShoppingList) ([]events.LogEvent, error)) (*models.ShoppingListRecord, error) {
	unlock := s.lock(listID)
	defer unlock()

	rec, err := s.load(ctx, listID)
	if err != nil {
		return nil, err
	}

	list := models.FromRecord(*rec, models.WithIDGenerator(s.ids))
	evts, err := fn(list)
	if err != nil {
		return nil, toConnectError(err)
	}

	updated := list.ToRecord(rec.ID)
	updated.CreatedAt = rec.CreatedAt
	if len(evts) == 0 {
		return &updated, nil
	}

	if err := s.store.UpdateList(ctx, &updated, evts...); err != nil {
		return nil, toConnectError(err)
	}
	return &updated, nil
}

// load fetches a list record and checks that the caller may access it.
func (s *ShoppingListService) load(ctx context.Context, listID string) (*models.ShoppingListRecord, error) {
	if listID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("listid required"))
	}

	rec, err := s.store.GetList(ctx, listID)
	if err != nil {
		return nil, toConnectError(err)
	}

	userID := middleware.GetUserID(ctx)
	switch {
	case rec.Owner == "":
	case userID == "" && s.authEnabled:
		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("list %s requires a token", listID))
	case userID != "" && rec.Owner != userID:
		return nil, connect.NewError(connect.CodePermissionDenied, fmt.Errorf("list %s belongs to another user", listID))
	}

	return rec, nil
}

// lock serializes mutations of one list and returns the unlock function.
// A lock is dropped from the map once nobody holds or waits for it.
func (s *ShoppingListService) lock(listID string) func() {
	s.mu.Lock()
	l, ok := s.locks[listID]
	if !ok {
		l = &listLock{}
		s.locks[listID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, listID)
		}
		s.mu.Unlock()
	}
}

// toConnectError maps domain and storage errors to Connect codes.
func toConnectError(err error) error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return err
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, models.ErrItemNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, models.ErrIndexOutOfRange), errors.Is(err, models.ErrDuplicateItemID):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
