package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/pantrysdk"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: name is required", domain.ErrValidation), http.StatusBadRequest, pantrysdk.ErrorCodeInvalidRequest},
		{domain.ErrInvitationEmailMismatch, http.StatusBadRequest, pantrysdk.ErrorCodeInvalidRequest},
		{fmt.Errorf("%w: eof", httpx.ErrBadBody), http.StatusBadRequest, pantrysdk.ErrorCodeInvalidRequest},
		{domain.ErrInvalidInvitation, http.StatusBadRequest, pantrysdk.ErrorCodeInvalidInvitation},
		{fmt.Errorf("%w: location %q already exists", domain.ErrConflict, "Fridge"), http.StatusConflict, pantrysdk.ErrorCodeConflict},
		{fmt.Errorf("%w: still holds 2 inventory entries", domain.ErrInUse), http.StatusConflict, pantrysdk.ErrorCodeInUse},
		{domain.ErrForbidden, http.StatusForbidden, pantrysdk.ErrorCodeForbidden},
		{fmt.Errorf("%w: item not found", domain.ErrNotFound), http.StatusNotFound, pantrysdk.ErrorCodeNotFound},
		{domain.ErrLastAdmin, http.StatusUnprocessableEntity, pantrysdk.ErrorCodeLastAdmin},
		{domain.ErrNoMembership, http.StatusConflict, pantrysdk.ErrorCodeFamilyRequired},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, pantrysdk.ErrorCodeInvalidGrant},
		{errors.New("disk on fire"), http.StatusInternalServerError, pantrysdk.ErrorCodeServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.err.Error(), func(t *testing.T) {
			got := apiError(tt.err)
			require.Equal(t, tt.status, got.StatusCode)
			require.Equal(t, tt.code, got.Code)
		})
	}

	require.NotContains(t, apiError(errors.New("disk on fire")).Description, "disk")
}
