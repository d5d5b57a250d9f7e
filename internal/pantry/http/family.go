package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type FamilyHandler struct {
	MembershipService *service.MembershipService
}

// HandleGet handles GET /v1/family
//
//	@Summary		Current family
//	@Description	Returns the caller's family, their role and every member.
//	@Tags			Family
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	pantrysdk.FamilyResponse
//	@Failure		401	{object}	pantrysdk.ErrorResponse	"invalid_token"
//	@Failure		409	{object}	pantrysdk.ErrorResponse	"family_required"
//	@Router			/v1/family [get].
func (h *FamilyHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ov, err := h.MembershipService.Overview(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	members := make([]pantrysdk.FamilyMember, len(ov.Members))
	for i, m := range ov.Members {
		members[i] = pantrysdk.FamilyMember{
			UserID:   m.UserID,
			Email:    m.Email,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.FamilyResponse{
		ID:      ov.Family.ID,
		Name:    ov.Family.Name,
		Role:    string(ov.Role),
		Members: members,
	})
}

// HandleChangeRole handles PUT /v1/families/{familyID}/members/{userID}/role
//
//	@Summary		Change member role
//	@Description	Sets a member's role to "admin" or "member". Only admins of the family may do this, and the family always keeps at least one admin.
//	@Tags			Family
//	@Accept			json
//	@Security		BearerAuth
//	@Param			familyID	path	string						true	"Family ID"
//	@Param			userID		path	string						true	"Member user ID"
//	@Param			request		body	pantrysdk.ChangeRoleRequest	true	"New role"
//	@Success		204			"Role updated"
//	@Failure		400			{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure		403			{object}	pantrysdk.ErrorResponse	"forbidden"
//	@Failure		404			{object}	pantrysdk.ErrorResponse	"not_found"
//	@Failure		422			{object}	pantrysdk.ErrorResponse	"last_admin"
//	@Router			/v1/families/{familyID}/members/{userID}/role [put].
func (h *FamilyHandler) HandleChangeRole(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.ChangeRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	err := h.MembershipService.ChangeRole(r.Context(),
		actorID(r),
		r.PathValue("userID"),
		r.PathValue("familyID"),
		req.Role,
	)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
