package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type ShoppingListHandler struct {
	ShoppingListService *service.ShoppingListService
}

// HandleList handles GET /v1/shopping-list
//
//	@Summary	Shopping list
//	@Tags		Shopping list
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pantrysdk.ListShoppingListResponse
//	@Router		/v1/shopping-list [get].
func (h *ShoppingListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ShoppingListService.List(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListShoppingListResponse{Entries: mapSlice(entries, toShoppingListEntry)})
}

// HandleAdd handles POST /v1/shopping-list
//
//	@Summary		Add to shopping list
//	@Description	Adding an item that is already listed returns the existing entry with 200.
//	@Tags			Shopping list
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pantrysdk.AddShoppingListRequest	true	"Item"
//	@Success		201		{object}	pantrysdk.ShoppingListEntry	"added"
//	@Success		200		{object}	pantrysdk.ShoppingListEntry	"already listed"
//	@Failure		404		{object}	pantrysdk.ErrorResponse		"item not found"
//	@Router			/v1/shopping-list [post].
func (h *ShoppingListHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.AddShoppingListRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	e, created, err := h.ShoppingListService.Add(r.Context(), actorID(r), req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpx.WriteJSON(w, status, toShoppingListEntry(e))
}

// HandleCount handles GET /v1/shopping-list/count
//
//	@Summary	Unchecked entries
//	@Tags		Shopping list
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pantrysdk.ShoppingListCountResponse
//	@Router		/v1/shopping-list/count [get].
func (h *ShoppingListHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.ShoppingListService.CountUnchecked(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ShoppingListCountResponse{Unchecked: n})
}

// HandleToggle handles POST /v1/shopping-list/{id}/toggle
//
//	@Summary	Toggle checked
//	@Tags		Shopping list
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Entry ID"
//	@Success	200	{object}	pantrysdk.ShoppingListEntry
//	@Failure	404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Router		/v1/shopping-list/{id}/toggle [post].
func (h *ShoppingListHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	e, err := h.ShoppingListService.Toggle(r.Context(), actorID(r), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toShoppingListEntry(e))
}

// HandleDelete handles DELETE /v1/shopping-list/{id}
//
//	@Summary	Remove entry
//	@Tags		Shopping list
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Entry ID"
//	@Success	204	"Entry removed"
//	@Failure	404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Router		/v1/shopping-list/{id} [delete].
func (h *ShoppingListHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ShoppingListService.Delete(r.Context(), actorID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleClearChecked handles DELETE /v1/shopping-list/checked
//
//	@Summary	Clear checked entries
//	@Tags		Shopping list
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pantrysdk.ClearCheckedResponse
//	@Router		/v1/shopping-list/checked [delete].
func (h *ShoppingListHandler) HandleClearChecked(w http.ResponseWriter, r *http.Request) {
	n, err := h.ShoppingListService.ClearChecked(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ClearCheckedResponse{Removed: n})
}
