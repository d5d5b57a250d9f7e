package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type InventoryHandler struct {
	InventoryService *service.InventoryService
}

// HandleList handles GET /v1/inventory
//
//	@Summary	List inventory
//	@Tags		Inventory
//	@Produce	json
//	@Security	BearerAuth
//	@Param		location_id	query		string	false	"Only entries at this location"
//	@Success	200			{object}	pantrysdk.ListInventoryResponse
//	@Router		/v1/inventory [get].
func (h *InventoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.InventoryService.List(r.Context(), actorID(r), r.URL.Query().Get("location_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListInventoryResponse{Inventory: mapSlice(entries, toInventoryEntry)})
}

// HandleCreate handles POST /v1/inventory
//
//	@Summary		Stock item
//	@Description	Each item appears at most once per location.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pantrysdk.CreateInventoryRequest	true	"Entry"
//	@Success		201		{object}	pantrysdk.InventoryEntry
//	@Failure		400		{object}	pantrysdk.ErrorResponse	"negative quantity"
//	@Failure		404		{object}	pantrysdk.ErrorResponse	"location or item not found"
//	@Failure		409		{object}	pantrysdk.ErrorResponse	"already stocked at the location"
//	@Router			/v1/inventory [post].
func (h *InventoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.CreateInventoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	e, err := h.InventoryService.Create(r.Context(), actorID(r), req.LocationID, req.ItemID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInventoryEntry(e))
}

// HandleUpdate handles PATCH /v1/inventory/{id}
//
//	@Summary	Set quantity
//	@Tags		Inventory
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string							true	"Inventory entry ID"
//	@Param		request	body		pantrysdk.UpdateInventoryRequest	true	"Quantity"
//	@Success	200		{object}	pantrysdk.InventoryEntry
//	@Failure	400		{object}	pantrysdk.ErrorResponse	"negative quantity"
//	@Failure	404		{object}	pantrysdk.ErrorResponse	"not_found"
//	@Router		/v1/inventory/{id} [patch].
func (h *InventoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.UpdateInventoryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	e, err := h.InventoryService.UpdateQuantity(r.Context(), actorID(r), r.PathValue("id"), req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInventoryEntry(e))
}

// HandleRestock handles POST /v1/inventory/restock
//
//	@Summary		Restock item
//	@Description	Adds amount to the item's quantity at the location, creating the entry if needed.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pantrysdk.RestockRequest	true	"Restock"
//	@Success		200		{object}	pantrysdk.InventoryEntry
//	@Failure		400		{object}	pantrysdk.ErrorResponse	"negative amount"
//	@Failure		404		{object}	pantrysdk.ErrorResponse	"location or item not found"
//	@Router			/v1/inventory/restock [post].
func (h *InventoryHandler) HandleRestock(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.RestockRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	e, err := h.InventoryService.Restock(r.Context(), actorID(r), req.LocationID, req.ItemID, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInventoryEntry(e))
}

// HandleDelete handles DELETE /v1/inventory/{id}
//
//	@Summary	Remove inventory entry
//	@Tags		Inventory
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Inventory entry ID"
//	@Success	204	"Entry removed"
//	@Failure	404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Router		/v1/inventory/{id} [delete].
func (h *InventoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.InventoryService.Delete(r.Context(), actorID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
