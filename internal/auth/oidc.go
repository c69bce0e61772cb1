package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/gospors/gospors/internal/domain"
)

// OIDCConfig holds configuration for the OIDC provider.
type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	// LogoutURL is the provider's end-session endpoint; optional.
	LogoutURL string
	// BaseURL makes post-logout destinations absolute.
	BaseURL    string
	HTTPClient *http.Client // Optional, defaults to a 30s-timeout client
}

// OIDCProvider logs visitors in against any OpenID Connect provider.
type OIDCProvider struct {
	config     *oauth2.Config
	provider   *gooidc.Provider
	verifier   *gooidc.IDTokenVerifier
	httpClient *http.Client
	logoutURL  string
	baseURL    string
}

var _ IdentityProvider = (*OIDCProvider)(nil)

// NewOIDCProvider performs discovery against the issuer and builds the provider.
func NewOIDCProvider(ctx context.Context, cfg OIDCConfig) (*OIDCProvider, error) {
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	ctx = gooidc.ClientContext(ctx, httpClient)
	issuer := strings.TrimSuffix(cfg.IssuerURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")

	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}

	scopes := cfg.Scopes
	if !slices.Contains(scopes, gooidc.ScopeOpenID) {
		scopes = append([]string{gooidc.ScopeOpenID}, scopes...)
	}

	return &OIDCProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     op.Endpoint(),
		},
		provider:   op,
		verifier:   op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
		httpClient: httpClient,
		logoutURL:  cfg.LogoutURL,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Name implements IdentityProvider.
func (p *OIDCProvider) Name() string { return "oidc" }

// AuthCodeURL implements IdentityProvider.
func (p *OIDCProvider) AuthCodeURL(state, nonce string) string {
	return p.config.AuthCodeURL(state, gooidc.Nonce(nonce))
}

// EndSessionURL implements IdentityProvider.
func (p *OIDCProvider) EndSessionURL(destination string) string {
	if p.logoutURL == "" {
		return ""
	}

	u, err := url.Parse(p.logoutURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("client_id", p.config.ClientID)
	q.Set("post_logout_redirect_uri", p.baseURL+destination)
	u.RawQuery = q.Encode()
	return u.String()
}

type oidcClaims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Nonce   string `json:"nonce"`
}

// Exchange trades the code for tokens, verifies the ID token and maps its claims.
func (p *OIDCProvider) Exchange(ctx context.Context, code, nonce string) (domain.Identity, error) {
	if code == "" {
		return domain.Identity{}, errors.New("authorization code is required")
	}

	ctx = gooidc.ClientContext(ctx, p.httpClient)

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("exchange code for token: %w", err)
	}

	rawID, ok := token.Extra("id_token").(string)
	if !ok || rawID == "" {
		return domain.Identity{}, errors.New("missing id_token in token response")
	}

	idToken, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("verify id_token: %w", err)
	}

	var claims oidcClaims
	if err := idToken.Claims(&claims); err != nil {
		return domain.Identity{}, fmt.Errorf("parse id_token claims: %w", err)
	}
	if nonce != "" && claims.Nonce != nonce {
		return domain.Identity{}, errors.New("invalid nonce")
	}

	// Fill missing fields from UserInfo
	if claims.Email == "" || claims.Name == "" {
		info, err := p.provider.UserInfo(ctx, oauth2.StaticTokenSource(token))
		if err != nil {
			return domain.Identity{}, fmt.Errorf("get user info: %w", err)
		}
		var extra oidcClaims
		if err := info.Claims(&extra); err != nil {
			return domain.Identity{}, fmt.Errorf("decode user info: %w", err)
		}
		claims.Email = firstNonEmpty(claims.Email, extra.Email, info.Email)
		claims.Name = firstNonEmpty(claims.Name, extra.Name)
		claims.Picture = firstNonEmpty(claims.Picture, extra.Picture)
	}

	return domain.Identity{
		Provider:  p.Name(),
		Subject:   firstNonEmpty(claims.Subject, idToken.Subject),
		Email:     claims.Email,
		FullName:  claims.Name,
		AvatarURL: claims.Picture,
	}, nil
}

// firstNonEmpty returns the first non-empty string from vals, or empty string if none.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
