package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type InvitationsHandler struct {
	InviteService *service.InviteService
}

// HandleCreate handles POST /v1/invitations
//
//	@Summary		Invite to family
//	@Description	Issues a single-use invitation valid for 24 hours. The token is returned once and only its fingerprint is stored.
//	@Tags			Family
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		pantrysdk.CreateInvitationRequest	true	"Invitee"
//	@Success		201		{object}	pantrysdk.InvitationResponse		"id, token, expires_at"
//	@Failure		400		{object}	pantrysdk.ErrorResponse				"invalid_request"
//	@Failure		401		{object}	pantrysdk.ErrorResponse				"invalid_token"
//	@Failure		403		{object}	pantrysdk.ErrorResponse				"caller is not an admin of the family"
//	@Failure		409		{object}	pantrysdk.ErrorResponse				"email already registered or caller has no family"
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.CreateInvitationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	inv, err := h.InviteService.Issue(r.Context(), actorID(r), req.Email, req.FamilyID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pantrysdk.InvitationResponse{
		ID:        inv.Invitation.ID,
		Email:     inv.Invitation.Email,
		FamilyID:  inv.Invitation.FamilyID,
		Token:     inv.Token,
		ExpiresAt: inv.Invitation.ExpiresAt,
	})
}

// HandleList handles GET /v1/invitations
//
//	@Summary		List pending invitations
//	@Tags			Family
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	pantrysdk.ListInvitationsResponse
//	@Failure		401	{object}	pantrysdk.ErrorResponse	"invalid_token"
//	@Failure		403	{object}	pantrysdk.ErrorResponse	"caller is not an admin"
//	@Router			/v1/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	pending, err := h.InviteService.ListPending(r.Context(), actorID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]pantrysdk.InvitationInfo, len(pending))
	for i, inv := range pending {
		out[i] = pantrysdk.InvitationInfo{
			ID:        inv.ID,
			Email:     inv.Email,
			InvitedBy: inv.InvitedBy,
			ExpiresAt: inv.ExpiresAt,
			CreatedAt: inv.CreatedAt,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, pantrysdk.ListInvitationsResponse{Invitations: out})
}

// HandlePreview handles GET /v1/invitations/preview
//
//	@Summary		Preview invitation
//	@Description	Shows the family an invitation grants without consuming it.
//	@Tags			Family
//	@Produce		json
//	@Param			token	query		string								true	"Invitation token"
//	@Success		200		{object}	pantrysdk.InvitationPreviewResponse	"email, family_name, expires_at"
//	@Failure		400		{object}	pantrysdk.ErrorResponse				"invalid_invitation"
//	@Router			/v1/invitations/preview [get].
func (h *InvitationsHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	p, err := h.InviteService.Preview(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pantrysdk.InvitationPreviewResponse{
		Email:      p.Email,
		FamilyID:   p.FamilyID,
		FamilyName: p.FamilyName,
		ExpiresAt:  p.ExpiresAt,
	})
}
