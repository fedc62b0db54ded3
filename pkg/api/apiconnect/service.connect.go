// Package apiconnect provides the Connect handler and client for the
// shopping list service. It mirrors the layout of protoc-gen-connect-go
// output, but for the JSON messages in package api.
package apiconnect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/shopping-busket/shoppinglist/pkg/api"
)

// ShoppingListServiceName is the fully-qualified name of the ShoppingListService service.
const ShoppingListServiceName = "shoppinglist.v1.ShoppingListService"

// These constants are the fully-qualified names of the RPCs defined in this
// package. They're exposed at runtime as Spec.Procedure and as the final two
// segments of the HTTP route.
const (
	ShoppingListServiceCreateListProcedure = "/shoppinglist.v1.ShoppingListService/CreateList"
	ShoppingListServiceGetListProcedure    = "/shoppinglist.v1.ShoppingListService/GetList"
	ShoppingListServiceListListsProcedure  = "/shoppinglist.v1.ShoppingListService/ListLists"
	ShoppingListServiceDeleteListProcedure = "/shoppinglist.v1.ShoppingListService/DeleteList"
	ShoppingListServiceCreateItemProcedure = "/shoppinglist.v1.ShoppingListService/CreateItem"
	ShoppingListServiceRenameItemProcedure = "/shoppinglist.v1.ShoppingListService/RenameItem"
	ShoppingListServiceCheckItemProcedure  = "/shoppinglist.v1.ShoppingListService/CheckItem"
	ShoppingListServiceMoveItemProcedure   = "/shoppinglist.v1.ShoppingListService/MoveItem"
	ShoppingListServiceDeleteItemProcedure = "/shoppinglist.v1.ShoppingListService/DeleteItem"
	ShoppingListServiceClearDoneProcedure  = "/shoppinglist.v1.ShoppingListService/ClearDone"
	ShoppingListServiceListEventsProcedure = "/shoppinglist.v1.ShoppingListService/ListEvents"
)

// ShoppingListServiceHandler is an implementation of the shoppinglist.v1.ShoppingListService service.
type ShoppingListServiceHandler interface {
	CreateList(context.Context, *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error)
	GetList(context.Context, *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error)
	ListLists(context.Context, *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error)
	DeleteList(context.Context, *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error)
	CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error)
	RenameItem(context.Context, *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error)
	CheckItem(context.Context, *connect.Request[api.CheckItemRequest]) (*connect.Response[api.CheckItemResponse], error)
	MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ClearDone(context.Context, *connect.Request[api.ClearDoneRequest]) (*connect.Response[api.ClearDoneResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
}

// NewShoppingListServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself. The JSON codec is always registered.
func NewShoppingListServiceHandler(svc ShoppingListServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.JSONCodec{})}, opts...)

	createListHandler := connect.NewUnaryHandler(
		ShoppingListServiceCreateListProcedure,
		svc.CreateList,
		opts...,
	)
	getListHandler := connect.NewUnaryHandler(
		ShoppingListServiceGetListProcedure,
		svc.GetList,
		opts...,
	)
	listListsHandler := connect.NewUnaryHandler(
		ShoppingListServiceListListsProcedure,
		svc.ListLists,
		opts...,
	)
	deleteListHandler := connect.NewUnaryHandler(
		ShoppingListServiceDeleteListProcedure,
		svc.DeleteList,
		opts...,
	)
	createItemHandler := connect.NewUnaryHandler(
		ShoppingListServiceCreateItemProcedure,
		svc.CreateItem,
		opts...,
	)
	renameItemHandler := connect.NewUnaryHandler(
		ShoppingListServiceRenameItemProcedure,
		svc.RenameItem,
		opts...,
	)
	checkItemHandler := connect.NewUnaryHandler(
		ShoppingListServiceCheckItemProcedure,
		svc.CheckItem,
		opts...,
	)
	moveItemHandler := connect.NewUnaryHandler(
		ShoppingListServiceMoveItemProcedure,
		svc.MoveItem,
		opts...,
	)
	deleteItemHandler := connect.NewUnaryHandler(
		ShoppingListServiceDeleteItemProcedure,
		svc.DeleteItem,
		opts...,
	)
	clearDoneHandler := connect.NewUnaryHandler(
		ShoppingListServiceClearDoneProcedure,
		svc.ClearDone,
		opts...,
	)
	listEventsHandler := connect.NewUnaryHandler(
		ShoppingListServiceListEventsProcedure,
		svc.ListEvents,
		opts...,
	)

	return "/shoppinglist.v1.ShoppingListService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ShoppingListServiceCreateListProcedure:
			createListHandler.ServeHTTP(w, r)
		case ShoppingListServiceGetListProcedure:
			getListHandler.ServeHTTP(w, r)
		case ShoppingListServiceListListsProcedure:
			listListsHandler.ServeHTTP(w, r)
		case ShoppingListServiceDeleteListProcedure:
			deleteListHandler.ServeHTTP(w, r)
		case ShoppingListServiceCreateItemProcedure:
			createItemHandler.ServeHTTP(w, r)
		case ShoppingListServiceRenameItemProcedure:
			renameItemHandler.ServeHTTP(w, r)
		case ShoppingListServiceCheckItemProcedure:
			checkItemHandler.ServeHTTP(w, r)
		case ShoppingListServiceMoveItemProcedure:
			moveItemHandler.ServeHTTP(w, r)
		case ShoppingListServiceDeleteItemProcedure:
			deleteItemHandler.ServeHTTP(w, r)
		case ShoppingListServiceClearDoneProcedure:
			clearDoneHandler.ServeHTTP(w, r)
		case ShoppingListServiceListEventsProcedure:
			listEventsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedShoppingListServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedShoppingListServiceHandler struct{}

func (UnimplementedShoppingListServiceHandler) CreateList(context.Context, *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.CreateList is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) GetList(context.Context, *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.GetList is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) ListLists(context.Context, *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.ListLists is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) DeleteList(context.Context, *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.DeleteList is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.CreateItem is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) RenameItem(context.Context, *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.RenameItem is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) CheckItem(context.Context, *connect.Request[api.CheckItemRequest]) (*connect.Response[api.CheckItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.CheckItem is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.MoveItem is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.DeleteItem is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) ClearDone(context.Context, *connect.Request[api.ClearDoneRequest]) (*connect.Response[api.ClearDoneResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.ClearDone is not implemented"))
}

func (UnimplementedShoppingListServiceHandler) ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("shoppinglist.v1.ShoppingListService.ListEvents is not implemented"))
}

// ShoppingListServiceClient is a client for the shoppinglist.v1.ShoppingListService service.
type ShoppingListServiceClient interface {
	CreateList(context.Context, *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error)
	GetList(context.Context, *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error)
	ListLists(context.Context, *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error)
	DeleteList(context.Context, *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error)
	CreateItem(context.Context, *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error)
	RenameItem(context.Context, *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error)
	CheckItem(context.Context, *connect.Request[api.CheckItemRequest]) (*connect.Response[api.CheckItemResponse], error)
	MoveItem(context.Context, *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error)
	DeleteItem(context.Context, *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error)
	ClearDone(context.Context, *connect.Request[api.ClearDoneRequest]) (*connect.Response[api.ClearDoneResponse], error)
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
}

// NewShoppingListServiceClient constructs a client for the
// shoppinglist.v1.ShoppingListService service. The JSON codec is used unless
// opts override it.
//
// The URL supplied here should be the base URL for the Connect server
// (for example, http://api.acme.com or https://acme.com/grpc).
func NewShoppingListServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ShoppingListServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(api.JSONCodec{})}, opts...)
	return &shoppingListServiceClient{
		createList: connect.NewClient[api.CreateListRequest, api.CreateListResponse](
			httpClient,
			baseURL+ShoppingListServiceCreateListProcedure,
			opts...,
		),
		getList: connect.NewClient[api.GetListRequest, api.GetListResponse](
			httpClient,
			baseURL+ShoppingListServiceGetListProcedure,
			opts...,
		),
		listLists: connect.NewClient[api.ListListsRequest, api.ListListsResponse](
			httpClient,
			baseURL+ShoppingListServiceListListsProcedure,
			opts...,
		),
		deleteList: connect.NewClient[api.DeleteListRequest, api.DeleteListResponse](
			httpClient,
			baseURL+ShoppingListServiceDeleteListProcedure,
			opts...,
		),
		createItem: connect.NewClient[api.CreateItemRequest, api.CreateItemResponse](
			httpClient,
			baseURL+ShoppingListServiceCreateItemProcedure,
			opts...,
		),
		renameItem: connect.NewClient[api.RenameItemRequest, api.RenameItemResponse](
			httpClient,
			baseURL+ShoppingListServiceRenameItemProcedure,
			opts...,
		),
		checkItem: connect.NewClient[api.CheckItemRequest, api.CheckItemResponse](
			httpClient,
			baseURL+ShoppingListServiceCheckItemProcedure,
			opts...,
		),
		moveItem: connect.NewClient[api.MoveItemRequest, api.MoveItemResponse](
			httpClient,
			baseURL+ShoppingListServiceMoveItemProcedure,
			opts...,
		),
		deleteItem: connect.NewClient[api.DeleteItemRequest, api.DeleteItemResponse](
			httpClient,
			baseURL+ShoppingListServiceDeleteItemProcedure,
			opts...,
		),
		clearDone: connect.NewClient[api.ClearDoneRequest, api.ClearDoneResponse](
			httpClient,
			baseURL+ShoppingListServiceClearDoneProcedure,
			opts...,
		),
		listEvents: connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](
			httpClient,
			baseURL+ShoppingListServiceListEventsProcedure,
			opts...,
		),
	}
}

// shoppingListServiceClient implements ShoppingListServiceClient.
type shoppingListServiceClient struct {
	createList *connect.Client[api.CreateListRequest, api.CreateListResponse]
	getList    *connect.Client[api.GetListRequest, api.GetListResponse]
	listLists  *connect.Client[api.ListListsRequest, api.ListListsResponse]
	deleteList *connect.Client[api.DeleteListRequest, api.DeleteListResponse]
	createItem *connect.Client[api.CreateItemRequest, api.CreateItemResponse]
	renameItem *connect.Client[api.RenameItemRequest, api.RenameItemResponse]
	checkItem  *connect.Client[api.CheckItemRequest, api.CheckItemResponse]
	moveItem   *connect.Client[api.MoveItemRequest, api.MoveItemResponse]
	deleteItem *connect.Client[api.DeleteItemRequest, api.DeleteItemResponse]
	clearDone  *connect.Client[api.ClearDoneRequest, api.ClearDoneResponse]
	listEvents *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
}

// CreateList calls shoppinglist.v1.ShoppingListService.CreateList.
func (c *shoppingListServiceClient) CreateList(ctx context.Context, req *connect.Request[api.CreateListRequest]) (*connect.Response[api.CreateListResponse], error) {
	return c.createList.CallUnary(ctx, req)
}

// GetList calls shoppinglist.v1.ShoppingListService.GetList.
func (c *shoppingListServiceClient) GetList(ctx context.Context, req *connect.Request[api.GetListRequest]) (*connect.Response[api.GetListResponse], error) {
	return c.getList.CallUnary(ctx, req)
}

// ListLists calls shoppinglist.v1.ShoppingListService.ListLists.
func (c *shoppingListServiceClient) ListLists(ctx context.Context, req *connect.Request[api.ListListsRequest]) (*connect.Response[api.ListListsResponse], error) {
	return c.listLists.CallUnary(ctx, req)
}

// DeleteList calls shoppinglist.v1.ShoppingListService.DeleteList.
func (c *shoppingListServiceClient) DeleteList(ctx context.Context, req *connect.Request[api.DeleteListRequest]) (*connect.Response[api.DeleteListResponse], error) {
	return c.deleteList.CallUnary(ctx, req)
}

// CreateItem calls shoppinglist.v1.ShoppingListService.CreateItem.
func (c *shoppingListServiceClient) CreateItem(ctx context.Context, req *connect.Request[api.CreateItemRequest]) (*connect.Response[api.CreateItemResponse], error) {
	return c.createItem.CallUnary(ctx, req)
}

// RenameItem calls shoppinglist.v1.ShoppingListService.RenameItem.
func (c *shoppingListServiceClient) RenameItem(ctx context.Context, req *connect.Request[api.RenameItemRequest]) (*connect.Response[api.RenameItemResponse], error) {
	return c.renameItem.CallUnary(ctx, req)
}

// CheckItem calls shoppinglist.v1.ShoppingListService.CheckItem.
func (c *shoppingListServiceClient) CheckItem(ctx context.Context, req *connect.Request[api.CheckItemRequest]) (*connect.Response[api.CheckItemResponse], error) {
	return c.checkItem.CallUnary(ctx, req)
}

// MoveItem calls shoppinglist.v1.ShoppingListService.MoveItem.
func (c *shoppingListServiceClient) MoveItem(ctx context.Context, req *connect.Request[api.MoveItemRequest]) (*connect.Response[api.MoveItemResponse], error) {
	return c.moveItem.CallUnary(ctx, req)
}

// DeleteItem calls shoppinglist.v1.ShoppingListService.DeleteItem.
func (c *shoppingListServiceClient) DeleteItem(ctx context.Context, req *connect.Request[api.DeleteItemRequest]) (*connect.Response[api.DeleteItemResponse], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

// ClearDone calls shoppinglist.v1.ShoppingListService.ClearDone.
func (c *shoppingListServiceClient) ClearDone(ctx context.Context, req *connect.Request[api.ClearDoneRequest]) (*connect.Response[api.ClearDoneResponse], error) {
	return c.clearDone.CallUnary(ctx, req)
}

// ListEvents calls shoppinglist.v1.ShoppingListService.ListEvents.
func (c *shoppingListServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}
