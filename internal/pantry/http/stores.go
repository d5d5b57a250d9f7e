package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type StoresHandler struct {
	StoreService *service.StoreService
}

// HandleList handles GET /v1/stores
//
//	@Summary	List stores
//	@Tags		Stores
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pantrysdk.ListStoresResponse
//	@Router		/v1/stores [get].
func (h *StoresHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	stores, err := h.StoreService.List(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListStoresResponse{Stores: mapSlice(stores, toStore)})
}

// HandleCreate handles POST /v1/stores
//
//	@Summary	Create store
//	@Tags		Stores
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		pantrysdk.NameRequest	true	"Store name"
//	@Success	201		{object}	pantrysdk.Store
//	@Failure	400		{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure	409		{object}	pantrysdk.ErrorResponse	"conflict or family_required"
//	@Router		/v1/stores [post].
func (h *StoresHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.NameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	st, err := h.StoreService.Create(r.Context(), actorID(r), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toStore(st))
}

// HandleRename handles PATCH /v1/stores/{id}
//
//	@Summary	Rename store
//	@Tags		Stores
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Store ID"
//	@Param		request	body		pantrysdk.NameRequest	true	"New name"
//	@Success	200		{object}	pantrysdk.Store
//	@Failure	404		{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure	409		{object}	pantrysdk.ErrorResponse	"conflict"
//	@Router		/v1/stores/{id} [patch].
func (h *StoresHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.NameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	st, err := h.StoreService.Rename(r.Context(), actorID(r), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStore(st))
}

// HandleDelete handles DELETE /v1/stores/{id}
//
//	@Summary		Delete store
//	@Description	Refused while items or aisles still reference the store.
//	@Tags			Stores
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Store ID"
//	@Success		204	"Store deleted"
//	@Failure		404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure		409	{object}	pantrysdk.ErrorResponse	"in_use"
//	@Router			/v1/stores/{id} [delete].
func (h *StoresHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.StoreService.Delete(r.Context(), actorID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
