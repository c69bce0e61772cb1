package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/gospors/gospors/internal/domain"
)

const githubAPIURL = "https://api.github.com"

// GitHubOAuth handles GitHub OAuth authentication.
type GitHubOAuth struct {
	config *oauth2.Config
	apiURL string
}

var _ IdentityProvider = (*GitHubOAuth)(nil)

// GitHubUser represents a GitHub user profile.
type GitHubUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

// NewGitHubOAuth creates a new GitHub OAuth client.
func NewGitHubOAuth(clientID, clientSecret, callbackURL string) *GitHubOAuth {
	return &GitHubOAuth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint:     github.Endpoint,
		},
		apiURL: githubAPIURL,
	}
}

// WithEndpoints points the client at other OAuth and API hosts (GitHub Enterprise, tests).
func (g *GitHubOAuth) WithEndpoints(endpoint oauth2.Endpoint, apiURL string) *GitHubOAuth {
	g.config.Endpoint = endpoint
	g.apiURL = apiURL
	return g
}

// Name implements IdentityProvider.
func (g *GitHubOAuth) Name() string { return "github" }

// AuthCodeURL returns the GitHub OAuth authorization URL. GitHub has no nonce.
func (g *GitHubOAuth) AuthCodeURL(state, _ string) string {
	return g.config.AuthCodeURL(state)
}

// EndSessionURL implements IdentityProvider. GitHub sessions are not ended by us.
func (g *GitHubOAuth) EndSessionURL(string) string { return "" }

// Exchange exchanges the authorization code and loads the GitHub profile.
func (g *GitHubOAuth) Exchange(ctx context.Context, code, _ string) (domain.Identity, error) {
	if code == "" {
		return domain.Identity{}, errors.New("authorization code is required")
	}

	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("exchange code for token: %w", err)
	}

	client := g.config.Client(ctx, token)

	user, err := g.getUser(ctx, client)
	if err != nil {
		return domain.Identity{}, err
	}

	// Fetch primary email if not public
	if user.Email == "" {
		if email, err := g.getPrimaryEmail(ctx, client); err == nil {
			user.Email = email
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return domain.Identity{
		Provider:  g.Name(),
		Subject:   strconv.FormatInt(user.ID, 10),
		Email:     user.Email,
		FullName:  name,
		AvatarURL: user.AvatarURL,
	}, nil
}

// getUser fetches the authenticated user's profile.
func (g *GitHubOAuth) getUser(ctx context.Context, client *http.Client) (*GitHubUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiURL+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github user request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("github api error: %s: %s", resp.Status, string(body))
	}

	var user GitHubUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode github user: %w", err)
	}

	return &user, nil
}

// getPrimaryEmail fetches the user's primary verified email.
func (g *GitHubOAuth) getPrimaryEmail(ctx context.Context, client *http.Client) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.apiURL+"/user/emails", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}

	return "", errors.New("no primary verified email found")
}
