package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type AislesHandler struct {
	AisleService *service.AisleService
}

// HandleList handles GET /v1/aisles
//
//	@Summary	List aisles
//	@Tags		Aisles
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	pantrysdk.ListAislesResponse
//	@Router		/v1/aisles [get].
func (h *AislesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	aisles, err := h.AisleService.List(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListAislesResponse{Aisles: mapSlice(aisles, toAisle)})
}

// HandleCreate handles POST /v1/aisles
//
//	@Summary	Create aisle
//	@Tags		Aisles
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		pantrysdk.CreateAisleRequest	true	"Aisle"
//	@Success	201		{object}	pantrysdk.Aisle
//	@Failure	400		{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure	404		{object}	pantrysdk.ErrorResponse	"store not found"
//	@Failure	409		{object}	pantrysdk.ErrorResponse	"conflict"
//	@Router		/v1/aisles [post].
func (h *AislesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.CreateAisleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.AisleService.Create(r.Context(), actorID(r), service.AisleInput{Name: req.Name, StoreID: req.StoreID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAisle(a))
}

// HandleUpdate handles PATCH /v1/aisles/{id}
//
//	@Summary		Update aisle
//	@Description	Omitted fields are unchanged. An empty store_id detaches the aisle from its store.
//	@Tags			Aisles
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Aisle ID"
//	@Param			request	body		pantrysdk.UpdateAisleRequest	true	"Changes"
//	@Success		200		{object}	pantrysdk.Aisle
//	@Failure		404		{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	pantrysdk.ErrorResponse	"conflict"
//	@Router			/v1/aisles/{id} [patch].
func (h *AislesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.UpdateAisleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.AisleService.Update(r.Context(), actorID(r), r.PathValue("id"), service.AislePatch{
		Name:    req.Name,
		StoreID: req.StoreID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAisle(a))
}

// HandleDelete handles DELETE /v1/aisles/{id}
//
//	@Summary		Delete aisle
//	@Description	Items that used the aisle keep existing without one.
//	@Tags			Aisles
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Aisle ID"
//	@Success		204	"Aisle deleted"
//	@Failure		404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Router			/v1/aisles/{id} [delete].
func (h *AislesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AisleService.Delete(r.Context(), actorID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
