package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospors/gospors/internal/auth"
)

func fakeIssuer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"issuer":                                srv.URL,
			"authorization_endpoint":                srv.URL + "/authorize",
			"token_endpoint":                        srv.URL + "/token",
			"userinfo_endpoint":                     srv.URL + "/userinfo",
			"jwks_uri":                              srv.URL + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewOIDCProvider_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := auth.NewOIDCProvider(ctx, auth.OIDCConfig{ClientID: "id", RedirectURL: "http://x/cb"})
	assert.Error(t, err)

	_, err = auth.NewOIDCProvider(ctx, auth.OIDCConfig{IssuerURL: "http://x", RedirectURL: "http://x/cb"})
	assert.Error(t, err)

	_, err = auth.NewOIDCProvider(ctx, auth.OIDCConfig{IssuerURL: "http://x", ClientID: "id"})
	assert.Error(t, err)
}

func TestOIDCProvider_AuthCodeURL(t *testing.T) {
	srv := fakeIssuer(t)

	p, err := auth.NewOIDCProvider(context.Background(), auth.OIDCConfig{
		IssuerURL:    srv.URL + "/.well-known/openid-configuration",
		ClientID:     "gospors",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scopes:       []string{"email", "profile"},
		HTTPClient:   srv.Client(),
	})
	require.NoError(t, err)
	assert.Equal(t, "oidc", p.Name())

	u, err := url.Parse(p.AuthCodeURL("st", "nn"))
	require.NoError(t, err)
	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "st", u.Query().Get("state"))
	assert.Equal(t, "nn", u.Query().Get("nonce"))
	assert.Equal(t, "openid email profile", u.Query().Get("scope"))
}

func TestOIDCProvider_EndSessionURL(t *testing.T) {
	srv := fakeIssuer(t)

	p, err := auth.NewOIDCProvider(context.Background(), auth.OIDCConfig{
		IssuerURL:   srv.URL,
		ClientID:    "gospors",
		RedirectURL: "http://localhost:8080/auth/callback",
		LogoutURL:   srv.URL + "/logout",
		BaseURL:     "http://localhost:8080/",
		HTTPClient:  srv.Client(),
	})
	require.NoError(t, err)

	u, err := url.Parse(p.EndSessionURL("/"))
	require.NoError(t, err)
	assert.Equal(t, "/logout", u.Path)
	assert.Equal(t, "gospors", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:8080/", u.Query().Get("post_logout_redirect_uri"))
}

func TestOIDCProvider_NoEndSessionURL(t *testing.T) {
	srv := fakeIssuer(t)

	p, err := auth.NewOIDCProvider(context.Background(), auth.OIDCConfig{
		IssuerURL:   srv.URL,
		ClientID:    "gospors",
		RedirectURL: "http://localhost:8080/auth/callback",
		HTTPClient:  srv.Client(),
	})
	require.NoError(t, err)
	assert.Empty(t, p.EndSessionURL("/"))
}
