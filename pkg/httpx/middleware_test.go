package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/pantry/pkg/httpx"
	"github.com/aussiebroadwan/pantry/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(okHandler, mw("a"), mw("b"), mw("c"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"a", "b", "c"}, order)
}

func TestAuthnMiddleware(t *testing.T) {
	key := []byte(strings.Repeat("s", jwtx.MinKeySize))
	hs, err := jwtx.NewHS256(key, "pantry")
	require.NoError(t, err)

	var gotUser string
	h := httpx.AuthnMiddleware(hs)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = httpx.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	call := func(authz string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header", func(t *testing.T) {
		rec := call("")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("invite token is not an access token", func(t *testing.T) {
		tok, err := hs.Sign(jwtx.NewInviteClaims("bob@x.com", time.Hour, "pantry", time.Now()))
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, call("Bearer "+tok).Code)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := hs.Sign(jwtx.NewAccessClaims("u1", time.Minute, "pantry", time.Now().Add(-time.Hour)))
		require.NoError(t, err)
		rec := call("Bearer " + tok)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "token expired")
	})

	t.Run("valid", func(t *testing.T) {
		tok, err := hs.Sign(jwtx.NewAccessClaims("u1", time.Hour, "pantry", time.Now()))
		require.NoError(t, err)
		require.Equal(t, http.StatusNoContent, call("Bearer "+tok).Code)
		require.Equal(t, "u1", gotUser)
	})
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := httpx.NewMetrics(reg, "pantry")

	mux := http.NewServeMux()
	mux.Handle("GET /things/{id}", okHandler)
	h := m.Middleware(mux)

	for range 2 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, 2, testutil.CollectAndCount(reg, "pantry_http_requests_total"))

	expected := `
# HELP pantry_http_requests_total HTTP requests by route and status code.
# TYPE pantry_http_requests_total counter
pantry_http_requests_total{code="200",route="GET /things/{id}"} 2
pantry_http_requests_total{code="404",route="unmatched"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pantry_http_requests_total"))
}
