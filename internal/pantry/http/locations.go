package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type LocationsHandler struct {
	LocationService *service.LocationService
}

// HandleList handles GET /v1/locations
//
//	@Summary		List locations
//	@Description	Storage places of the caller's family ordered by name, each with the number of inventory entries it holds.
//	@Tags			Locations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	pantrysdk.ListLocationsResponse
//	@Failure		401	{object}	pantrysdk.ErrorResponse	"invalid_token"
//	@Router			/v1/locations [get].
func (h *LocationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	locs, err := h.LocationService.List(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListLocationsResponse{Locations: mapSlice(locs, toLocation)})
}

// HandleCreate handles POST /v1/locations
//
//	@Summary		Create location
//	@Description	Names are trimmed, whitespace collapsed and title-cased, and unique within the family.
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pantrysdk.NameRequest	true	"Location name"
//	@Success		201		{object}	pantrysdk.Location
//	@Failure		400		{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure		409		{object}	pantrysdk.ErrorResponse	"conflict or family_required"
//	@Router			/v1/locations [post].
func (h *LocationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.NameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	loc, err := h.LocationService.Create(r.Context(), actorID(r), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toLocation(loc))
}

// HandleRename handles PATCH /v1/locations/{id}
//
//	@Summary		Rename location
//	@Tags			Locations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Location ID"
//	@Param			request	body		pantrysdk.NameRequest	true	"New name"
//	@Success		200		{object}	pantrysdk.Location
//	@Failure		400		{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure		404		{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	pantrysdk.ErrorResponse	"conflict"
//	@Router			/v1/locations/{id} [patch].
func (h *LocationsHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.NameRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	loc, err := h.LocationService.Rename(r.Context(), actorID(r), r.PathValue("id"), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLocation(loc))
}

// HandleDelete handles DELETE /v1/locations/{id}
//
//	@Summary		Delete location
//	@Description	Refused while the location still holds inventory.
//	@Tags			Locations
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Location ID"
//	@Success		204	"Location deleted"
//	@Failure		404	{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure		409	{object}	pantrysdk.ErrorResponse	"in_use"
//	@Router			/v1/locations/{id} [delete].
func (h *LocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.LocationService.Delete(r.Context(), actorID(r), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
