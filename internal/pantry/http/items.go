package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type ItemsHandler struct {
	ItemService *service.ItemService
}

// HandleList handles GET /v1/items
//
//	@Summary	List items
//	@Tags		Items
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pantrysdk.ListItemsResponse
//	@Router		/v1/items [get].
func (h *ItemsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListItemsResponse{Items: mapSlice(items, toItem)})
}

// HandleCreate handles POST /v1/items
//
//	@Summary	Create item
//	@Tags		Items
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		pantrysdk.CreateItemRequest	true	"Item"
//	@Success	201		{object}	pantrysdk.Item
//	@Failure	400		{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure	404		{object}	pantrysdk.ErrorResponse	"aisle or store not found"
//	@Failure	409		{object}	pantrysdk.ErrorResponse	"conflict"
//	@Router		/v1/items [post].
func (h *ItemsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.CreateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	it, err := h.ItemService.Create(r.Context(), actorID(r), service.ItemInput{
		Name:        req.Name,
		Category:    req.Category,
		DefaultUnit: req.DefaultUnit,
		Notes:       req.Notes,
		AisleID:     req.AisleID,
		StoreID:     req.StoreID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toItem(it))
}

// HandleUpdate handles PATCH /v1/items/{id}
//
//	@Summary		Update item
//	@Description	Omitted fields are unchanged.
//	@Tags			Items
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Item ID"
//	@Param			request	body		pantrysdk.UpdateItemRequest	true	"Changes"
//	@Success		200		{object}	pantrysdk.Item
//	@Failure		404		{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	pantrysdk.ErrorResponse	"conflict"
//	@Router			/v1/items/{id} [patch].
func (h *ItemsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.UpdateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	it, err := h.ItemService.Update(r.Context(), actorID(r), r.PathValue("id"), service.ItemPatch{
		Name:        req.Name,
		Category:    req.Category,
		DefaultUnit: req.DefaultUnit,
		Notes:       req.Notes,
		AisleID:     req.AisleID,
		StoreID:     req.StoreID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toItem(it))
}

// HandleDelete handles DELETE /v1/items/{id}
//
//	@Summary		Delete item
//	@Description	Also removes the item's inventory and shopping list entries.
//	@Tags			Items
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Item ID"
//	@Success		204	"Item deleted"
//	@Failure		404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Router			/v1/items/{id} [delete].
func (h *ItemsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ItemService.Delete(r.Context(), actorID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
