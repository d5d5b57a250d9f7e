package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/service"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
)

type SessionHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a bearer access token.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pantrysdk.LoginRequest	true	"Credentials"
//	@Success		201		{object}	pantrysdk.TokenResponse	"access_token, expires_in"
//	@Failure		400		{object}	pantrysdk.ErrorResponse	"invalid_request"
//	@Failure		401		{object}	pantrysdk.ErrorResponse	"invalid_grant"
//	@Failure		429		{object}	pantrysdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/v1/sessions [post].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req pantrysdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tok, err := h.SessionService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pantrysdk.TokenResponse{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Until(tok.ExpiresAt).Seconds()),
		UserID:      tok.UserID,
	})
}
