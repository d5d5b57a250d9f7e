package pantrysdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated view of the caller's family. Tokens are not
// refreshed; log in again once the access token expires.
type Session struct {
	client      *Client
	accessToken string
}

// NewSession wraps an access token obtained elsewhere.
func (c *Client) NewSession(accessToken string) *Session {
	return &Session{client: c, accessToken: accessToken}
}

func (s *Session) AccessToken() string { return s.accessToken }

func (s *Session) do(ctx context.Context, method, path string, body, out any, expected ...int) error {
	return s.client.doJSON(ctx, method, path, s.accessToken, body, out, expected...)
}

func (s *Session) GetFamily(ctx context.Context) (*FamilyResponse, error) {
	var out FamilyResponse
	if err := s.do(ctx, http.MethodGet, "/v1/family", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangeRole sets the role of a member. Only family admins may call it.
func (s *Session) ChangeRole(ctx context.Context, familyID, userID, role string) error {
	path := "/v1/families/" + url.PathEscape(familyID) + "/members/" + url.PathEscape(userID) + "/role"
	return s.do(ctx, http.MethodPut, path, ChangeRoleRequest{Role: role}, nil, http.StatusNoContent)
}

func (s *Session) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*InvitationResponse, error) {
	var out InvitationResponse
	if err := s.do(ctx, http.MethodPost, "/v1/invitations", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ListInvitations(ctx context.Context) ([]InvitationInfo, error) {
	var out ListInvitationsResponse
	if err := s.do(ctx, http.MethodGet, "/v1/invitations", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Invitations, nil
}
