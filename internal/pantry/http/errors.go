package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
	"github.com/aussiebroadwan/pantry/pkg/slogx"
)

// apiError maps a service error onto its response. Order matters: the more
// specific kinds are checked before the kinds they wrap.
func apiError(err error) *pantrysdk.APIError {
	var (
		status int
		code   string
	)
	switch {
	case errors.Is(err, domain.ErrLastAdmin):
		status, code = http.StatusUnprocessableEntity, pantrysdk.ErrorCodeLastAdmin
	case errors.Is(err, domain.ErrInvalidInvitation):
		status, code = http.StatusBadRequest, pantrysdk.ErrorCodeInvalidInvitation
	case errors.Is(err, domain.ErrValidation), errors.Is(err, httpx.ErrBadBody):
		status, code = http.StatusBadRequest, pantrysdk.ErrorCodeInvalidRequest
	case errors.Is(err, domain.ErrInUse):
		status, code = http.StatusConflict, pantrysdk.ErrorCodeInUse
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusConflict, pantrysdk.ErrorCodeConflict
	case errors.Is(err, domain.ErrForbidden):
		status, code = http.StatusForbidden, pantrysdk.ErrorCodeForbidden
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, pantrysdk.ErrorCodeNotFound
	case errors.Is(err, domain.ErrNoMembership):
		status, code = http.StatusConflict, pantrysdk.ErrorCodeFamilyRequired
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, pantrysdk.ErrorCodeInvalidGrant
	default:
		return pantrysdk.ErrServerError
	}
	return pantrysdk.NewAPIError(status, code, err.Error())
}

// writeError responds with the mapped error. Unexpected errors are logged
// and never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apiError(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	apiErr.WriteError(w)
}

// actorID is the authenticated user. Routes that call it sit behind
// httpx.AuthnMiddleware.
func actorID(r *http.Request) string {
	id, _ := httpx.UserID(r.Context())
	return id
}
