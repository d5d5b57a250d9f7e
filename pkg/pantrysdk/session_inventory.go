package pantrysdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListInventory lists the family's inventory. A non-empty locationID limits
// it to one location.
func (s *Session) ListInventory(ctx context.Context, locationID string) ([]InventoryEntry, error) {
	path := "/v1/inventory"
	if locationID != "" {
		path += "?location_id=" + url.QueryEscape(locationID)
	}

	var out ListInventoryResponse
	if err := s.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Inventory, nil
}

func (s *Session) CreateInventory(ctx context.Context, req CreateInventoryRequest) (*InventoryEntry, error) {
	var out InventoryEntry
	if err := s.do(ctx, http.MethodPost, "/v1/inventory", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateInventory(ctx context.Context, id string, quantity float64) (*InventoryEntry, error) {
	var out InventoryEntry
	req := UpdateInventoryRequest{Quantity: quantity}
	if err := s.do(ctx, http.MethodPatch, "/v1/inventory/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Restock(ctx context.Context, req RestockRequest) (*InventoryEntry, error) {
	var out InventoryEntry
	if err := s.do(ctx, http.MethodPost, "/v1/inventory/restock", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteInventory(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/inventory/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) ListShoppingList(ctx context.Context) ([]ShoppingListEntry, error) {
	var out ListShoppingListResponse
	if err := s.do(ctx, http.MethodGet, "/v1/shopping-list", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// AddToShoppingList returns the existing entry when the item is already on
// the list.
func (s *Session) AddToShoppingList(ctx context.Context, itemID string, quantity float64) (*ShoppingListEntry, error) {
	var out ShoppingListEntry
	req := AddShoppingListRequest{ItemID: itemID, Quantity: quantity}

	// 201 for a new entry, 200 when it was already listed.
	if err := s.do(ctx, http.MethodPost, "/v1/shopping-list", req, &out, http.StatusCreated, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CountUnchecked(ctx context.Context) (int, error) {
	var out ShoppingListCountResponse
	if err := s.do(ctx, http.MethodGet, "/v1/shopping-list/count", nil, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.Unchecked, nil
}

func (s *Session) ToggleShoppingListEntry(ctx context.Context, id string) (*ShoppingListEntry, error) {
	var out ShoppingListEntry
	path := "/v1/shopping-list/" + url.PathEscape(id) + "/toggle"
	if err := s.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteShoppingListEntry(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/shopping-list/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) ClearChecked(ctx context.Context) (int64, error) {
	var out ClearCheckedResponse
	if err := s.do(ctx, http.MethodDelete, "/v1/shopping-list/checked", nil, &out, http.StatusOK); err != nil {
		return 0, err
	}
	return out.Removed, nil
}
