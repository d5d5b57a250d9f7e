package http

import (
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type SignupHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Sign up
//	@Description	Creates an account. With invite_token the user joins the inviting family as a member and family_name is ignored.
//	@Description	Without one a new family is created with the user as its admin, named family_name or "<local part>'s Family".
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pantrysdk.SignupRequest		true	"Signup request"
//	@Success		201		{object}	pantrysdk.SignupResponse	"user_id, family_id, role"
//	@Failure		400		{object}	pantrysdk.ErrorResponse		"invalid_request or invalid_invitation"
//	@Failure		409		{object}	pantrysdk.ErrorResponse		"email already registered"
//	@Failure		500		{object}	pantrysdk.ErrorResponse		"server_error"
//	@Router			/v1/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.SignupService.Signup(r.Context(), service.SignupRequest{
		Email:       req.Email,
		Password:    req.Password,
		FamilyName:  req.FamilyName,
		InviteToken: req.InviteToken,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pantrysdk.SignupResponse{
		UserID:     res.User.ID,
		Email:      res.User.Email,
		FamilyID:   res.Family.ID,
		FamilyName: res.Family.Name,
		Role:       string(res.Membership.Role),
	})
}
