package pantrysdk

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) ListLocations(ctx context.Context) ([]Location, error) {
	var out ListLocationsResponse
	if err := s.do(ctx, http.MethodGet, "/v1/locations", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Locations, nil
}

func (s *Session) CreateLocation(ctx context.Context, name string) (*Location, error) {
	var out Location
	if err := s.do(ctx, http.MethodPost, "/v1/locations", NameRequest{Name: name}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RenameLocation(ctx context.Context, id, name string) (*Location, error) {
	var out Location
	if err := s.do(ctx, http.MethodPatch, "/v1/locations/"+url.PathEscape(id), NameRequest{Name: name}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteLocation(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/locations/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) ListStores(ctx context.Context) ([]Store, error) {
	var out ListStoresResponse
	if err := s.do(ctx, http.MethodGet, "/v1/stores", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Stores, nil
}

func (s *Session) CreateStore(ctx context.Context, name string) (*Store, error) {
	var out Store
	if err := s.do(ctx, http.MethodPost, "/v1/stores", NameRequest{Name: name}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) RenameStore(ctx context.Context, id, name string) (*Store, error) {
	var out Store
	if err := s.do(ctx, http.MethodPatch, "/v1/stores/"+url.PathEscape(id), NameRequest{Name: name}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteStore(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/stores/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) ListAisles(ctx context.Context) ([]Aisle, error) {
	var out ListAislesResponse
	if err := s.do(ctx, http.MethodGet, "/v1/aisles", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Aisles, nil
}

func (s *Session) CreateAisle(ctx context.Context, req CreateAisleRequest) (*Aisle, error) {
	var out Aisle
	if err := s.do(ctx, http.MethodPost, "/v1/aisles", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateAisle(ctx context.Context, id string, req UpdateAisleRequest) (*Aisle, error) {
	var out Aisle
	if err := s.do(ctx, http.MethodPatch, "/v1/aisles/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteAisle(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/aisles/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

func (s *Session) ListItems(ctx context.Context) ([]Item, error) {
	var out ListItemsResponse
	if err := s.do(ctx, http.MethodGet, "/v1/items", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *Session) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	var out Item
	if err := s.do(ctx, http.MethodPost, "/v1/items", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	var out Item
	if err := s.do(ctx, http.MethodPatch, "/v1/items/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteItem(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/v1/items/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}
